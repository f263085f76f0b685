package provider

import (
	"context"
	"time"
)

// LLM is a generative-AI text provider. Both calls are blocking
// single-turn round-trips; implementations return domain.ErrEmptyResponse
// when the model produced no text.
type LLM interface {
	// GenerateText returns the free-form text reply to prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON asks the model to reply with JSON only and returns the raw reply.
	// The reply is not validated; callers parse it.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// WithTimeout bounds every call of l by d. A non-positive d returns l unchanged.
func WithTimeout(l LLM, d time.Duration) LLM {
	if d <= 0 {
		return l
	}
	return &timeoutLLM{next: l, timeout: d}
}

type timeoutLLM struct {
	next    LLM
	timeout time.Duration
}

func (t *timeoutLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.GenerateText(ctx, prompt)
}

func (t *timeoutLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.GenerateJSON(ctx, prompt)
}
