package enricher

import (
	"strings"
	"testing"
)

func TestCaptionRequest_Hashtags(t *testing.T) {
	t.Parallel()

	got := CaptionRequest(testDraft)

	if !strings.Contains(got, "2 to 4 topical hashtags") {
		t.Error("caption request should ask for 2 to 4 hashtags")
	}
	if n := len(hashtags(got)); n < 2 || n > maxHashtags {
		t.Errorf("example caption carries %d hashtags, want 2..%d", n, maxHashtags)
	}
	if !strings.Contains(got, "**kirjasto**") {
		t.Error("caption request should name the word")
	}
}
