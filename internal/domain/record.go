package domain

import "time"

// MaxVideoPromptLength is the ceiling, in characters (runes), for a stored video prompt.
const MaxVideoPromptLength = 3000

// DateLayout is the format of the Date Added column.
const DateLayout = "2006-01-02"

// Header is the fixed first row of the vocabulary sheet. Column order of
// every data row follows it.
var Header = []string{
	"Date Added",
	"Finnish Word",
	"English Translation",
	"Category",
	"Level",
	"Example Sentence",
	"Video Prompt",
	"Video Caption",
}

// Column indexes into Header (0-based).
const (
	ColumnDateAdded = iota
	ColumnFinnishWord
	ColumnEnglishTranslation
	ColumnCategory
	ColumnLevel
	ColumnExampleSentence
	ColumnVideoPrompt
	ColumnVideoCaption
)

// Draft is a generated word before enrichment: every record field except
// the video prompt and caption. JSON keys are the field tags the model is
// asked to produce.
type Draft struct {
	FinnishWord        string `json:"finnish_word"        validate:"required"`
	EnglishTranslation string `json:"english_translation" validate:"required"`
	Category           string `json:"category"            validate:"required"`
	Level              Level  `json:"level"               validate:"required,oneof=A1 A2 B1"`
	ExampleFinnish     string `json:"example_finnish"     validate:"required"`
	ExampleEnglish     string `json:"example_english"`
}

// ExampleSentence renders the bilingual example as "fi (en)".
func (d Draft) ExampleSentence() string {
	if d.ExampleEnglish == "" {
		return d.ExampleFinnish
	}
	return d.ExampleFinnish + " (" + d.ExampleEnglish + ")"
}

// Record is one complete vocabulary row.
type Record struct {
	Draft

	DateAdded    time.Time `json:"date_added,omitzero" validate:"required"`
	VideoPrompt  string    `json:"video_prompt"        validate:"max=3000"`
	VideoCaption string    `json:"video_caption"`
}

// NewRecord combines a draft and its enrichment into a row stamped with date.
func NewRecord(d Draft, videoPrompt, videoCaption string, date time.Time) Record {
	return Record{
		Draft:        d,
		DateAdded:    date,
		VideoPrompt:  videoPrompt,
		VideoCaption: videoCaption,
	}
}

// Row renders the record in Header order.
func (r Record) Row() []string {
	row := make([]string, len(Header))
	row[ColumnDateAdded] = r.DateAdded.Format(DateLayout)
	row[ColumnFinnishWord] = r.FinnishWord
	row[ColumnEnglishTranslation] = r.EnglishTranslation
	row[ColumnCategory] = r.Category
	row[ColumnLevel] = r.Level.String()
	row[ColumnExampleSentence] = r.ExampleSentence()
	row[ColumnVideoPrompt] = r.VideoPrompt
	row[ColumnVideoCaption] = r.VideoCaption
	return row
}

// ColumnLetter converts a 0-based column index to A1 notation ("A", "B", ... "AA").
func ColumnLetter(index int) string {
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
