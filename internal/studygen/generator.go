package studygen

import (
	"context"
	"errors"
)

// ErrGeneration is wrapped by every failed Generate call. Its message is
// what the home screen shows.
var ErrGeneration = errors.New("failed to generate content, please try again")

// Generator produces study sets.
type Generator interface {
	// Generate produces a validated study set for topic. On failure the
	// error wraps ErrGeneration and no content is returned.
	Generate(ctx context.Context, topic string, settings Settings) (*Content, error)
}
