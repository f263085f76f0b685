package generator

import (
	"fmt"
	"strings"
)

// BuildPrompt asks for needed new words. exclude is quoted verbatim as the
// list of words the model must not return; an empty list omits the hint.
func BuildPrompt(needed int, exclude []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate %d random Finnish vocabulary words suitable for daily learning at levels A1 to B1.\n", needed)
	if len(exclude) > 0 {
		fmt.Fprintf(&sb, "Do NOT use any of these words: %s.\n", strings.Join(exclude, ", "))
	}
	sb.WriteString(`
For each word provide:
1. the Finnish word (dictionary form)
2. its English translation
3. a category (noun, verb, adjective, daily life, food, nature, ...)
4. its CEFR level: A1, A2 or B1
5. a simple example sentence in Finnish and its English translation

Reply with a JSON array only. Every element is an object with exactly these keys:
"finnish_word", "english_translation", "category", "level", "example_finnish", "example_english".
All values are strings. Every word must be different.

Make the words varied and useful for beginner to intermediate learners.`)

	return sb.String()
}
