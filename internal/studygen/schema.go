package studygen

import "github.com/abhisek/testplus/internal/llm"

// StudySetSchema is the JSON schema for study-set responses. Every object
// lists all of its properties as required so it is accepted by strict
// structured-output modes; optional text comes back as "".
var StudySetSchema = &llm.Schema{
	Name:        "study-set",
	Description: "Multiple choice questions, flashcards and a study plan for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The main topic of the content",
			},
			"source": map[string]any{
				"type":        "string",
				"description": "General source or context of the knowledge",
			},
			"confidence": map[string]any{
				"type":        "string",
				"enum":        []any{"high", "medium", "low"},
				"description": "Confidence level of the generated content",
			},
			"mcqs": map[string]any{
				"type":  "array",
				"items": mcqSchema,
			},
			"punchcards": map[string]any{
				"type":  "array",
				"items": flashcardSchema,
			},
			"study_plan": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 actionable study steps",
			},
		},
		"required":             []any{"topic", "source", "confidence", "mcqs", "punchcards", "study_plan"},
		"additionalProperties": false,
	},
}

var mcqSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string"},
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 options",
		},
		"answer_index": map[string]any{
			"type":        "integer",
			"description": "0-based index of the correct option",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"timer_seconds": map[string]any{"type": "integer"},
		"hint":          map[string]any{"type": "string"},
		"explanation":   map[string]any{"type": "string"},
	},
	"required":             []any{"id", "question", "options", "answer_index", "difficulty", "tags", "timer_seconds", "hint", "explanation"},
	"additionalProperties": false,
}

var flashcardSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string"},
		"front":    map[string]any{"type": "string", "description": "Concept or term"},
		"back":     map[string]any{"type": "string", "description": "Definition or key fact"},
		"mnemonic": map[string]any{"type": "string", "description": "Memory aid if applicable"},
	},
	"required":             []any{"id", "front", "back", "mnemonic"},
	"additionalProperties": false,
}
