// Package enricher generates the video prompt and caption for each new word.
package enricher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// ErrVideoPromptTooLong is the prompt failure under the reject policy.
var ErrVideoPromptTooLong = errors.New("video prompt too long")

// shortenTarget is the length asked for when re-requesting an over-long prompt.
const shortenTarget = domain.MaxVideoPromptLength * 9 / 10

type llm interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Options selects the length and failure policies.
type Options struct {
	VideoPromptPolicy domain.VideoPromptPolicy
	FailurePolicy     domain.EnrichFailurePolicy
}

// Enrichment holds the generated fields of one word. A field whose
// generation failed is empty and has its error set.
type Enrichment struct {
	VideoPrompt  string
	VideoCaption string
	PromptErr    error
	CaptionErr   error
}

// Complete reports whether both fields were generated.
func (e Enrichment) Complete() bool {
	return e.PromptErr == nil && e.CaptionErr == nil
}

// Failures returns the number of failed fields.
func (e Enrichment) Failures() int {
	n := 0
	if e.PromptErr != nil {
		n++
	}
	if e.CaptionErr != nil {
		n++
	}
	return n
}

// Service enriches drafts one at a time.
type Service struct {
	log  *slog.Logger
	llm  llm
	opts Options
}

// NewService creates a new enricher service. Invalid policies fall back to
// retry_truncate and skip.
func NewService(log *slog.Logger, llm llm, opts Options) *Service {
	if !opts.VideoPromptPolicy.IsValid() {
		opts.VideoPromptPolicy = domain.VideoPromptRetryTruncate
	}
	if !opts.FailurePolicy.IsValid() {
		opts.FailurePolicy = domain.EnrichFailureSkip
	}
	return &Service{
		log:  log.With("service", "enricher"),
		llm:  llm,
		opts: opts,
	}
}

// Enrich generates the video prompt and the caption with two independent
// calls: a failure of one does not prevent the other. Field failures are
// reported in the Enrichment; the returned error is set only when ctx is done.
func (s *Service) Enrich(ctx context.Context, d domain.Draft) (Enrichment, error) {
	var e Enrichment

	e.VideoPrompt, e.PromptErr = s.videoPrompt(ctx, d)
	if err := ctx.Err(); err != nil {
		return e, fmt.Errorf("enricher: %s: %w", d.FinnishWord, err)
	}
	if e.PromptErr != nil {
		s.log.WarnContext(ctx, "video prompt failed",
			slog.String("word", d.FinnishWord),
			slog.String("error", e.PromptErr.Error()),
		)
	}

	e.VideoCaption, e.CaptionErr = s.caption(ctx, d)
	if err := ctx.Err(); err != nil {
		return e, fmt.Errorf("enricher: %s: %w", d.FinnishWord, err)
	}
	if e.CaptionErr != nil {
		s.log.WarnContext(ctx, "caption failed",
			slog.String("word", d.FinnishWord),
			slog.String("error", e.CaptionErr.Error()),
		)
	}

	return e, nil
}

// Complete turns a draft and its enrichment into a record dated date,
// applying the failure policy. It returns false when the word must not be written.
func (s *Service) Complete(ctx context.Context, d domain.Draft, e Enrichment, date time.Time) (domain.Record, bool) {
	if e.Complete() {
		return domain.NewRecord(d, e.VideoPrompt, e.VideoCaption, date), true
	}

	if s.opts.FailurePolicy == domain.EnrichFailureSkip {
		s.log.WarnContext(ctx, "skipping incomplete word",
			slog.String("word", d.FinnishWord),
			slog.Int("failed_fields", e.Failures()),
		)
		return domain.Record{}, false
	}

	prompt, caption := e.VideoPrompt, e.VideoCaption
	if e.PromptErr != nil {
		prompt = ""
		s.log.WarnContext(ctx, "writing empty video prompt", slog.String("word", d.FinnishWord))
	}
	if e.CaptionErr != nil {
		caption = ""
		s.log.WarnContext(ctx, "writing empty caption", slog.String("word", d.FinnishWord))
	}
	return domain.NewRecord(d, prompt, caption, date), true
}

func (s *Service) videoPrompt(ctx context.Context, d domain.Draft) (string, error) {
	text, err := s.llm.GenerateText(ctx, VideoPromptRequest(d))
	if err != nil {
		return "", fmt.Errorf("video prompt: %w", err)
	}

	n := utf8.RuneCountInString(text)
	if n <= domain.MaxVideoPromptLength {
		return text, nil
	}

	s.log.InfoContext(ctx, "video prompt over limit",
		slog.String("word", d.FinnishWord),
		slog.Int("length", n),
		slog.String("policy", string(s.opts.VideoPromptPolicy)),
	)

	switch s.opts.VideoPromptPolicy {
	case domain.VideoPromptReject:
		return "", fmt.Errorf("%w: %d characters", ErrVideoPromptTooLong, n)
	case domain.VideoPromptRetryTruncate:
		shorter, err := s.llm.GenerateText(ctx, ShortenVideoPromptRequest(d, shortenTarget))
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("video prompt retry: %w", err)
			}
			s.log.WarnContext(ctx, "video prompt retry failed, truncating first reply",
				slog.String("word", d.FinnishWord),
				slog.String("error", err.Error()),
			)
		} else {
			text = shorter
		}
	}

	return Truncate(text, domain.MaxVideoPromptLength), nil
}

func (s *Service) caption(ctx context.Context, d domain.Draft) (string, error) {
	text, err := s.llm.GenerateText(ctx, CaptionRequest(d))
	if err != nil {
		return "", fmt.Errorf("caption: %w", err)
	}
	return EnsureHashtags(text, d.FinnishWord), nil
}
