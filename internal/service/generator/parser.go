package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/quailyquaily/uniai"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// ParseResult is one element of a generation reply. Exactly one of Draft
// (when Err is nil) or Err is meaningful.
type ParseResult struct {
	Draft domain.Draft
	Err   error
}

type draftJSON struct {
	FinnishWord        string `json:"finnish_word"`
	EnglishTranslation string `json:"english_translation"`
	Category           string `json:"category"`
	Level              string `json:"level"`
	ExampleFinnish     string `json:"example_finnish"`
	ExampleEnglish     string `json:"example_english"`
}

var fencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")

// Parse decodes a generation reply into per-element results.
//
// Markdown code fences are stripped first. When the remainder is not a JSON
// array, candidates are salvaged from the surrounding text and repaired.
// A reply with no array at all returns an error wrapping domain.ErrParse.
// A malformed element only fails its own ParseResult.
func Parse(text string) ([]ParseResult, error) {
	items, err := findArray(stripFences(text))
	if err != nil {
		return nil, err
	}

	results := make([]ParseResult, 0, len(items))
	for i, raw := range items {
		d, err := parseItem(raw)
		if err != nil {
			err = fmt.Errorf("item %d: %w", i, err)
		}
		results = append(results, ParseResult{Draft: d, Err: err})
	}
	return results, nil
}

func stripFences(text string) string {
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// findArray returns the elements of the first JSON array found in text.
// An object whose only array value holds the elements ({"words": [...]}) is accepted too.
func findArray(text string) ([]json.RawMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("generator: empty reply: %w", domain.ErrParse)
	}

	for _, cand := range candidates(text) {
		if items, ok := decodeArray([]byte(cand)); ok {
			return items, nil
		}
	}
	return nil, fmt.Errorf("generator: reply is not a JSON array: %w", domain.ErrParse)
}

func decodeArray(data []byte) ([]json.RawMessage, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, false
	}

	var items []json.RawMessage
	if data[0] == '[' {
		if err := json.Unmarshal(data, &items); err == nil {
			return items, true
		}
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	for _, v := range obj {
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '[' && json.Unmarshal(v, &items) == nil {
			return items, true
		}
	}
	return nil, false
}

// candidates lists the raw text followed by JSON snippets found in it and
// their repaired variants, without duplicates.
func candidates(raw string) []string {
	out := make([]string, 0, 8)
	seen := make(map[string]bool, 8)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	add(raw)
	found := []string{raw}
	if cands, err := uniai.CollectJSONCandidates(raw); err == nil {
		found = append(found, cands...)
	}
	found = append(found, uniai.FindJSONSnippets(raw)...)

	for _, c := range found {
		add(c)
		stripped := uniai.StripNonJSONLines(c)
		add(stripped)
		add(uniai.AttemptJSONRepair(c))
		add(uniai.AttemptJSONRepair(stripped))
	}
	return out
}

func parseItem(raw json.RawMessage) (domain.Draft, error) {
	var in draftJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	d := domain.Draft{
		FinnishWord:        domain.NormalizeText(in.FinnishWord),
		EnglishTranslation: strings.TrimSpace(in.EnglishTranslation),
		Category:           strings.TrimSpace(in.Category),
		ExampleFinnish:     strings.TrimSpace(in.ExampleFinnish),
		ExampleEnglish:     strings.TrimSpace(in.ExampleEnglish),
	}

	level, err := domain.ParseLevel(in.Level)
	if err != nil {
		return d, err
	}
	d.Level = level

	if err := domain.ValidateDraft(d); err != nil {
		return d, err
	}
	return d, nil
}
