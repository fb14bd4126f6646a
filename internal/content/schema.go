package content

import "github.com/abhisek/svenska/internal/llm"

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

// WordsSchema is the response shape for the daily word list.
var WordsSchema = &llm.Schema{
	Name:        "daily-words",
	Description: "Beginner Swedish vocabulary with example sentences",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"swedish":         stringProp("The Swedish word or short phrase"),
						"english":         stringProp("Its English translation"),
						"swedishSentence": stringProp("A simple Swedish example sentence using the word"),
						"englishSentence": stringProp("The English translation of the example sentence"),
					},
					"required":             []any{"swedish", "english", "swedishSentence", "englishSentence"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}

// SentencesSchema is the response shape for scramble sentences.
var SentencesSchema = &llm.Schema{
	Name:        "scramble-sentences",
	Description: "Short beginner Swedish sentences with translations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"swedishSentence": stringProp("A Swedish sentence of 3 to 7 words"),
						"englishSentence": stringProp("Its English translation"),
					},
					"required":             []any{"swedishSentence", "englishSentence"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}

// GrammarSchema is the response shape for grammar questions.
var GrammarSchema = &llm.Schema{
	Name:        "grammar-questions",
	Description: "Multiple-choice Swedish grammar questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"swedishSentence": stringProp("A simple Swedish sentence of 3 to 7 words"),
						"englishSentence": stringProp("Its English translation"),
						"question":        stringProp("A grammar question related to the sentence whose answer is not visible in it"),
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    3,
							"maxItems":    3,
							"description": "Three plausible options, exactly one correct",
						},
						"correctAnswer": stringProp("The correct option, copied exactly"),
						"explanation":   stringProp("Swedish: [rule]. English: [comparison]."),
					},
					"required":             []any{"swedishSentence", "englishSentence", "question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
