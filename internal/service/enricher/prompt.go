package enricher

import (
	"fmt"

	"github.com/heartmarshall/daily-vocab/internal/domain"
)

// VideoPromptRequest builds the request for an 8-second scene illustrating the word.
func VideoPromptRequest(d domain.Draft) string {
	return fmt.Sprintf(`You are a creative TikTok scriptwriter. Write a video prompt for the Finnish word of the day.
Create a simple scene illustrating the word "%s", which means "%s".
Characters speak clear, grammatically correct Finnish.

The scene shows a common daily-life situation that is easy to illustrate.
The conversation sounds natural. The word is spoken exactly once; do not repeat it.
Speech starts within the first second to catch the viewer's attention.

Strictly no on-screen text or subtitles in the video.

Include these details in your reply:
Scene Duration: 8 seconds

Illustration style:
A warm, modern flat-vector illustration with soft pastel colours, clean lines and simple but expressive faces,
like an educational flashcard or language-learning app: playful yet clear about the action and the meaning.

Audio:
Characters say their lines exactly as in the scene description, matching their actions, in a Helsinki-region Finnish accent.`,
		d.FinnishWord, d.EnglishTranslation)
}

// ShortenVideoPromptRequest repeats the scene request with a hard length limit.
func ShortenVideoPromptRequest(d domain.Draft, limit int) string {
	return VideoPromptRequest(d) + fmt.Sprintf(`

Your previous answer was too long. Keep the whole reply under %d characters.`, limit)
}

// CaptionRequest builds the request for the social caption posted with the video.
func CaptionRequest(d domain.Draft) string {
	return fmt.Sprintf(`You are a TikTok content strategist.
Write a short, engaging TikTok caption for a video teaching the Finnish word **%s** (%s, meaning "%s").
The audience is A1-%s Finnish learners.

Reply with the raw caption text only, no JSON.
End with 2 to 4 topical hashtags, one of them the word itself.

Follow the layout of this example. Make the Quick Tip fresh each day: grammar endings, synonyms,
related words, cultural notes or fun facts.

✨ Finnish Word of the Day ✨

📖 **kirjasto** (noun) → library

💬 Example:
[fi]: "Mennään tänään kirjastoon."
[en]: "Let's go to the library today."

🔎 Quick Tip
Finnish place endings change the meaning:
- kirjastossa = in the library
- kirjastoon = to the library
- kirjastosta = from the library

🎭 What's the best thing you've borrowed from a library? 📚

📌 #FinnishWordOfTheDay #LearnFinnish #kirjasto`,
		d.FinnishWord, d.Category, d.EnglishTranslation, d.Level)
}
