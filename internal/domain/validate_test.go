package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateDraft_Valid(t *testing.T) {
	t.Parallel()

	if err := ValidateDraft(sampleDraft()); err != nil {
		t.Errorf("ValidateDraft() unexpected error: %v", err)
	}
}

func TestValidateDraft_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(d *Draft)
		wantField string
	}{
		{"missing word", func(d *Draft) { d.FinnishWord = "" }, "finnish_word"},
		{"missing translation", func(d *Draft) { d.EnglishTranslation = "" }, "english_translation"},
		{"missing category", func(d *Draft) { d.Category = "" }, "category"},
		{"level B2", func(d *Draft) { d.Level = "B2" }, "level"},
		{"missing level", func(d *Draft) { d.Level = "" }, "level"},
		{"missing example", func(d *Draft) { d.ExampleFinnish = "" }, "example_finnish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := sampleDraft()
			tt.mutate(&d)

			err := ValidateDraft(d)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err is %T, want *ValidationError", err)
			}
			if verr.Errors[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidateRecord_VideoPromptCeiling(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	// 3000 multi-byte runes is still within the limit.
	ok := NewRecord(sampleDraft(), strings.Repeat("ä", MaxVideoPromptLength), "c", date)
	if err := ValidateRecord(ok); err != nil {
		t.Errorf("3000-rune prompt should be valid: %v", err)
	}

	tooLong := NewRecord(sampleDraft(), strings.Repeat("a", MaxVideoPromptLength+1), "c", date)
	err := ValidateRecord(tooLong)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Errors[0].Field != "video_prompt" || verr.Errors[0].Message != "max=3000" {
		t.Errorf("field error = %+v", verr.Errors[0])
	}
}

func TestValidateRecord_RequiresDate(t *testing.T) {
	t.Parallel()

	err := ValidateRecord(Record{Draft: sampleDraft(), VideoPrompt: "p", VideoCaption: "c"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for zero date", err)
	}
}

func TestValidateRecord_EmptyEnrichmentAllowed(t *testing.T) {
	t.Parallel()

	// Placeholder policy writes records with empty enrichment fields.
	r := NewRecord(sampleDraft(), "", "", time.Now())
	if err := ValidateRecord(r); err != nil {
		t.Errorf("empty prompt/caption should pass record validation: %v", err)
	}
}
