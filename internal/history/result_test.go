package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Accuracy(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func TestWeakTags(t *testing.T) {
	got := WeakTags([]string{"optics", "waves"}, []string{"waves", "lenses"}, nil, []string{"optics"})
	assert.Equal(t, []string{"optics", "waves", "lenses"}, got)
	assert.Equal(t, []string{}, WeakTags())
}

func TestNewResultID(t *testing.T) {
	a, b := NewResultID(), NewResultID()
	assert.NotEqual(t, a, b)

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Less(t, a, b, "ids sort by creation time")
}

func TestSessionResult_Perfect(t *testing.T) {
	assert.True(t, SessionResult{Accuracy: 100}.Perfect())
	assert.False(t, SessionResult{Accuracy: 99}.Perfect())
}
