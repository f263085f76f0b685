package domain

import (
	"fmt"
	"strings"
)

// Level is the CEFR level of a vocabulary word. Only A1 through B1 are generated.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1:
		return true
	}
	return false
}

// ParseLevel accepts "a1", " B1 " etc. and returns the canonical Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", NewValidationError("level", fmt.Sprintf("%q is not one of A1, A2, B1", s))
	}
	return l, nil
}

// EnrichFailurePolicy decides what happens to a word whose video prompt
// or caption could not be generated.
type EnrichFailurePolicy string

const (
	// EnrichFailureSkip drops the word; nothing is written for it.
	EnrichFailureSkip EnrichFailurePolicy = "skip"
	// EnrichFailurePlaceholder writes the word with the failed field left empty.
	EnrichFailurePlaceholder EnrichFailurePolicy = "placeholder"
)

func (p EnrichFailurePolicy) String() string { return string(p) }

func (p EnrichFailurePolicy) IsValid() bool {
	switch p {
	case EnrichFailureSkip, EnrichFailurePlaceholder:
		return true
	}
	return false
}

// VideoPromptPolicy decides how an over-long video prompt is handled.
type VideoPromptPolicy string

const (
	// VideoPromptRetryTruncate asks once more for a shorter prompt, then truncates.
	VideoPromptRetryTruncate VideoPromptPolicy = "retry_truncate"
	// VideoPromptTruncate cuts the prompt at the limit without asking again.
	VideoPromptTruncate VideoPromptPolicy = "truncate"
	// VideoPromptReject treats an over-long prompt as a failed field.
	VideoPromptReject VideoPromptPolicy = "reject"
)

func (p VideoPromptPolicy) String() string { return string(p) }

func (p VideoPromptPolicy) IsValid() bool {
	switch p {
	case VideoPromptRetryTruncate, VideoPromptTruncate, VideoPromptReject:
		return true
	}
	return false
}

// AIProvider names the generative-AI backend.
type AIProvider string

const (
	AIProviderGemini    AIProvider = "gemini"
	AIProviderAnthropic AIProvider = "anthropic"
)

func (p AIProvider) String() string { return string(p) }

func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderAnthropic:
		return true
	}
	return false
}
