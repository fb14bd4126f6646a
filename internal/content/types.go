// Package content fetches the daily Swedish practice material from an LLM
// provider and falls back to a built-in word list when that fails.
package content

import "errors"

var (
	// ErrNotConfigured is returned when no provider is available. It is a
	// configuration problem, not a transient one.
	ErrNotConfigured = errors.New("content provider not configured")

	// ErrDecode wraps responses that parse but do not meet the content rules.
	ErrDecode = errors.New("malformed content response")
)

// Word is one vocabulary entry with an example sentence.
type Word struct {
	Swedish         string `json:"swedish"`
	English         string `json:"english"`
	SwedishSentence string `json:"swedishSentence"`
	EnglishSentence string `json:"englishSentence"`
}

// Daily is the day's practice material.
type Daily struct {
	Date    string `json:"date"`
	Theme   string `json:"theme"`
	Words   []Word `json:"words"`
	FunFact string `json:"funFact"`

	// Fallback is set when the static set was substituted. Fallback content
	// is never cached.
	Fallback bool   `json:"-"`
	Warning  string `json:"-"`
}

// Sentence is a Swedish sentence with its translation, used by the
// scramble mode.
type Sentence struct {
	Swedish string `json:"swedishSentence"`
	English string `json:"englishSentence"`
}

// GrammarQuestion is a multiple-choice grammar item.
type GrammarQuestion struct {
	SwedishSentence string   `json:"swedishSentence"`
	EnglishSentence string   `json:"englishSentence"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correctAnswer"`
	Explanation     string   `json:"explanation"`
}
