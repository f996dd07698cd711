package studygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/testplus/internal/llm"
)

// ErrEmptyTopic is returned for a blank topic before any request is made.
var ErrEmptyTopic = errors.New("topic is empty")

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// studySetOutput is the raw LLM response before validation.
type studySetOutput struct {
	Topic      string      `json:"topic"`
	Source     string      `json:"source"`
	Confidence Confidence  `json:"confidence"`
	MCQs       []MCQ       `json:"mcqs"`
	Flashcards []Flashcard `json:"punchcards"`
	StudyPlan  []string    `json:"study_plan"`
}

// Generate produces a validated study set for topic.
func (g *LLMGenerator) Generate(ctx context.Context, topic string, settings Settings) (*Content, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyTopic)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	ctx = llm.WithPurpose(ctx, "study-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, settings, g.config)},
		},
		Schema:      StudySetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: LLM generation failed: %w", ErrGeneration, err)
	}

	var raw studySetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse LLM response: %w", ErrGeneration, err)
	}

	c := &Content{
		Topic:       raw.Topic,
		GeneratedAt: g.now(),
		Source:      raw.Source,
		Confidence:  raw.Confidence,
		MCQs:        raw.MCQs,
		Flashcards:  raw.Flashcards,
		StudyPlan:   raw.StudyPlan,
	}
	if c.Topic == "" {
		c.Topic = topic
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(c, settings); verr != nil {
			return nil, fmt.Errorf("%w: %w", ErrGeneration, verr)
		}
	}

	return c, nil
}
