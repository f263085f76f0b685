// Package wordstore reads the words already recorded in the vocabulary sheet.
package wordstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

type sheet interface {
	EnsureHeader(ctx context.Context, header []string) (bool, error)
	ReadColumn(ctx context.Context, index int) ([]string, error)
}

// Service builds the dedup set from the sheet.
type Service struct {
	log   *slog.Logger
	sheet sheet
}

// NewService creates a new word store service.
func NewService(log *slog.Logger, sheet sheet) *Service {
	return &Service{
		log:   log.With("service", "wordstore"),
		sheet: sheet,
	}
}

// FetchExistingWords makes sure the header row is in place and returns every
// Finnish word below it. Blank cells are skipped. Storage errors are returned as is
// (wrapped) and are fatal for the run.
func (s *Service) FetchExistingWords(ctx context.Context) (*domain.WordSet, error) {
	repaired, err := s.sheet.EnsureHeader(ctx, domain.Header)
	if err != nil {
		return nil, fmt.Errorf("wordstore: ensure header: %w", err)
	}
	if repaired {
		s.log.InfoContext(ctx, "header row repaired")
	}

	values, err := s.sheet.ReadColumn(ctx, domain.ColumnFinnishWord)
	if err != nil {
		return nil, fmt.Errorf("wordstore: read words: %w", err)
	}
	if len(values) > 0 {
		values = values[1:]
	}

	words := domain.NewWordSet(values...)
	if dup := nonBlank(values) - words.Len(); dup > 0 {
		s.log.WarnContext(ctx, "sheet already holds duplicate words", slog.Int("count", dup))
	}

	s.log.InfoContext(ctx, "existing words loaded", slog.Int("count", words.Len()))
	return words, nil
}

func nonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if domain.NormalizeWord(v) != "" {
			n++
		}
	}
	return n
}
