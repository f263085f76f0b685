package enricher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// defaultHashtags top up captions that came back with fewer than two hashtags.
	defaultHashtags = "#FinnishWordOfTheDay #LearnFinnish"
	maxHashtags     = 4
)

// Truncate shortens s to at most limit runes. The cut is moved back to the
// last whitespace when one exists in the second half of the kept text.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	cut := runes[:limit]
	if !unicode.IsSpace(runes[limit]) {
		for i := len(cut) - 1; i > limit/2; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace)
}

// EnsureHashtags keeps between 2 and maxHashtags hashtags on a caption.
// A caption with fewer than two gets the default tags and one for word,
// skipping tags it already has; hashtags past maxHashtags are removed.
func EnsureHashtags(caption, word string) string {
	tags := hashtags(caption)
	if len(tags) > maxHashtags {
		return dropHashtagsAfter(caption, maxHashtags)
	}
	if len(tags) >= 2 {
		return caption
	}

	candidates := strings.Fields(defaultHashtags)
	if tag := strings.Join(strings.Fields(word), ""); tag != "" {
		candidates = append(candidates, "#"+tag)
	}
	var extra []string
	for _, c := range candidates {
		if len(tags)+len(extra) == maxHashtags {
			break
		}
		if !containsFold(tags, c) {
			extra = append(extra, c)
		}
	}

	if len(extra) == 0 {
		return caption
	}
	if strings.TrimSpace(caption) == "" {
		return strings.Join(extra, " ")
	}
	return strings.TrimRightFunc(caption, unicode.IsSpace) + "\n\n" + strings.Join(extra, " ")
}

// hashtags returns the hashtag tokens of s in order.
func hashtags(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		if isHashtag(f) {
			out = append(out, f)
		}
	}
	return out
}

// dropHashtagsAfter removes every hashtag after the first n. Lines that
// lose a tag are re-joined with single spaces; other lines are untouched.
func dropHashtagsAfter(s string, n int) string {
	lines := strings.Split(s, "\n")
	seen := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		kept := make([]string, 0, len(fields))
		changed := false
		for _, f := range fields {
			if isHashtag(f) {
				seen++
				if seen > n {
					changed = true
					continue
				}
			}
			kept = append(kept, f)
		}
		if changed {
			lines[i] = strings.Join(kept, " ")
		}
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

func containsFold(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func isHashtag(f string) bool {
	if !strings.HasPrefix(f, "#") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(f[1:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
