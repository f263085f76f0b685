package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func sampleDraft() Draft {
	return Draft{
		FinnishWord:        "kirjasto",
		EnglishTranslation: "library",
		Category:           "noun",
		Level:              LevelA1,
		ExampleFinnish:     "Mennään tänään kirjastoon.",
		ExampleEnglish:     "Let's go to the library today.",
	}
}

func TestRecord_Row_HeaderOrder(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	r := NewRecord(sampleDraft(), "scene", "caption #LearnFinnish", date)

	row := r.Row()
	if len(row) != len(Header) {
		t.Fatalf("len(row) = %d, want %d", len(row), len(Header))
	}
	want := []string{
		"2026-10-15",
		"kirjasto",
		"library",
		"noun",
		"A1",
		"Mennään tänään kirjastoon. (Let's go to the library today.)",
		"scene",
		"caption #LearnFinnish",
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] (%s) = %q, want %q", i, Header[i], row[i], want[i])
		}
	}
}

func TestDraft_ExampleSentence_NoEnglish(t *testing.T) {
	t.Parallel()

	d := sampleDraft()
	d.ExampleEnglish = ""
	if got := d.ExampleSentence(); got != "Mennään tänään kirjastoon." {
		t.Errorf("ExampleSentence() = %q", got)
	}
}

func TestRecord_JSONKeys(t *testing.T) {
	t.Parallel()

	r := NewRecord(sampleDraft(), "p", "c", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"finnish_word", "english_translation", "category", "level",
		"example_finnish", "example_english", "video_prompt", "video_caption", "date_added",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing JSON key %q in %s", key, data)
		}
	}
}

func TestRecord_JSONOmitsZeroDate(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Record{Draft: sampleDraft()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["date_added"]; ok {
		t.Errorf("zero date should be omitted, got %s", data)
	}
}

func TestColumnLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{7, "H"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tt := range tests {
		if got := ColumnLetter(tt.index); got != tt.want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
	if got := ColumnLetter(ColumnFinnishWord); got != "B" {
		t.Errorf("Finnish Word column = %q, want B", got)
	}
}
