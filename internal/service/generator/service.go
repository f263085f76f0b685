// Package generator asks the AI provider for new vocabulary words.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

type llm interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Options tunes generation. Zero values fall back to one attempt and no exclude hint.
type Options struct {
	MaxAttempts      int
	ExcludeHintLimit int
}

// Result is the outcome of one Generate call.
type Result struct {
	Drafts         []domain.Draft
	Duplicates     []string // words dropped because they were already known
	ParseFailures  int      // malformed elements dropped
	FailedAttempts int      // attempts whose reply held no usable array
	Attempts       int
}

// Service generates vocabulary drafts.
type Service struct {
	log  *slog.Logger
	llm  llm
	opts Options
}

// NewService creates a new generator service.
func NewService(log *slog.Logger, llm llm, opts Options) *Service {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.ExcludeHintLimit < 0 {
		opts.ExcludeHintLimit = 0
	}
	return &Service{
		log:  log.With("service", "generator"),
		llm:  llm,
		opts: opts,
	}
}

// Generate returns up to count drafts whose words are not in known.
//
// Each accepted word is added to known, so repeated attempts and later
// callers also skip it. Attempts continue, asking only for the shortfall,
// until count drafts are collected or MaxAttempts is spent. count <= 0
// makes no provider call. Provider errors other than an empty reply are
// returned and end the run; unusable replies only consume an attempt.
func (s *Service) Generate(ctx context.Context, count int, known *domain.WordSet) (Result, error) {
	var res Result
	if count <= 0 {
		return res, nil
	}
	if known == nil {
		known = domain.NewWordSet()
	}

	for len(res.Drafts) < count && res.Attempts < s.opts.MaxAttempts {
		needed := count - len(res.Drafts)
		res.Attempts++

		s.log.InfoContext(ctx, "generating words",
			slog.Int("needed", needed),
			slog.Int("attempt", res.Attempts),
			slog.Int("max_attempts", s.opts.MaxAttempts),
		)

		text, err := s.llm.GenerateJSON(ctx, BuildPrompt(needed, known.Recent(s.opts.ExcludeHintLimit)))
		if err != nil {
			if errors.Is(err, domain.ErrEmptyResponse) {
				res.FailedAttempts++
				s.log.WarnContext(ctx, "empty generation reply", slog.Int("attempt", res.Attempts))
				continue
			}
			return res, fmt.Errorf("generator: attempt %d: %w", res.Attempts, err)
		}

		items, err := Parse(text)
		if err != nil {
			res.FailedAttempts++
			s.log.WarnContext(ctx, "unusable generation reply",
				slog.Int("attempt", res.Attempts),
				slog.String("error", err.Error()),
			)
			continue
		}

		s.accept(ctx, &res, items, count, known)
	}

	if len(res.Drafts) < count {
		s.log.WarnContext(ctx, "generated fewer words than requested",
			slog.Int("generated", len(res.Drafts)),
			slog.Int("requested", count),
			slog.Int("attempts", res.Attempts),
		)
	}
	return res, nil
}

func (s *Service) accept(ctx context.Context, res *Result, items []ParseResult, count int, known *domain.WordSet) {
	for _, it := range items {
		if it.Err != nil {
			res.ParseFailures++
			s.log.WarnContext(ctx, "dropping malformed word", slog.String("error", it.Err.Error()))
			continue
		}
		if len(res.Drafts) >= count {
			return
		}
		if err := known.Reserve(it.Draft.FinnishWord); err != nil {
			res.Duplicates = append(res.Duplicates, it.Draft.FinnishWord)
			s.log.InfoContext(ctx, "skipping duplicate word", slog.String("error", err.Error()))
			continue
		}
		res.Drafts = append(res.Drafts, it.Draft)
	}
}
