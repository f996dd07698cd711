package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/testplus/internal/store"
)

func openTestRepo(t *testing.T) store.DocumentRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.OpenMemory(name)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.DocumentRepo()
}

func result(topic string, acc int, day int) SessionResult {
	return SessionResult{
		ID:             NewResultID(),
		Topic:          topic,
		Date:           time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		Score:          acc / 20,
		TotalQuestions: 5,
		Accuracy:       acc,
		WeakTags:       []string{"tag"},
		CorrectIDs:     []string{"q1"},
		IncorrectIDs:   []string{},
		CoinsEarned:    10,
	}
}

func TestStore_AppendPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	h := NewStore(repo, nil)
	require.NoError(t, h.Load(ctx))
	assert.Zero(t, h.Len())
	_, ok := h.Latest()
	assert.False(t, ok)

	first := result("Photosynthesis", 60, 1)
	second := result("Cell division", 100, 2)
	require.NoError(t, h.Append(ctx, first))
	require.NoError(t, h.Append(ctx, second))

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, second.ID, latest.ID)

	reloaded := NewStore(repo, nil)
	require.NoError(t, reloaded.Load(ctx))
	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.True(t, list[0].Date.Equal(second.Date))
	assert.Equal(t, []string{"tag"}, list[1].WeakTags)
}

func TestStore_MalformedDocumentLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	require.NoError(t, repo.Put(ctx, store.KeyHistory, []byte(`{"not":"a list"`)))

	h := NewStore(repo, nil)
	require.NoError(t, h.Load(ctx))
	assert.Zero(t, h.Len())

	require.NoError(t, h.Append(ctx, result("Optics", 80, 3)))
	assert.Equal(t, 1, h.Len())
}

func TestStore_JSONFieldNames(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	h := NewStore(repo, nil)
	require.NoError(t, h.Append(ctx, result("Optics", 80, 3)))

	body, err := repo.Get(ctx, store.KeyHistory)
	require.NoError(t, err)
	for _, key := range []string{`"totalQuestions"`, `"timeSpentSeconds"`, `"weakTags"`, `"correctIds"`, `"incorrectIds"`, `"coinsEarned"`} {
		assert.Contains(t, string(body), key)
	}
}

func TestStore_RecentAndTrend(t *testing.T) {
	ctx := context.Background()
	h := NewStore(openTestRepo(t), nil)
	for day, acc := range []int{20, 40, 60, 80} {
		require.NoError(t, h.Append(ctx, result("Topic", acc, day+1)))
	}

	recent := h.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 80, recent[0].Accuracy)
	assert.Equal(t, 60, recent[1].Accuracy)
	assert.Len(t, h.Recent(0), 4)
	assert.Len(t, h.Recent(10), 4)

	trend := h.AccuracyTrend(3)
	require.Len(t, trend, 3)
	assert.Equal(t, []int{40, 60, 80}, []int{trend[0].Accuracy, trend[1].Accuracy, trend[2].Accuracy})
	assert.True(t, trend[0].Date.Before(trend[2].Date))
}

func TestStore_ReturnedSlicesAreCopies(t *testing.T) {
	ctx := context.Background()
	h := NewStore(openTestRepo(t), nil)
	require.NoError(t, h.Append(ctx, result("Topic", 80, 1)))

	list := h.List()
	list[0].WeakTags[0] = "mutated"
	list[0].Topic = "mutated"

	latest, _ := h.Latest()
	assert.Equal(t, "Topic", latest.Topic)
	assert.Equal(t, []string{"tag"}, latest.WeakTags)
}

type failingRepo struct {
	getErr, putErr error
}

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f failingRepo) Put(context.Context, string, []byte) error   { return f.putErr }

func TestStore_RepoErrors(t *testing.T) {
	ctx := context.Background()

	h := NewStore(failingRepo{getErr: errors.New("locked")}, nil)
	assert.ErrorContains(t, h.Load(ctx), "history: load")

	h = NewStore(failingRepo{putErr: errors.New("disk full")}, nil)
	err := h.Append(ctx, result("Topic", 80, 1))
	assert.ErrorContains(t, err, "history: persist")
	assert.Equal(t, 1, h.Len(), "result stays in memory")
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	h := NewStore(repo, nil)
	require.NoError(t, h.Load(ctx))
	require.NoError(t, h.Append(ctx, result("Optics", 80, 3)))
	require.NoError(t, h.Clear(ctx))
	assert.Zero(t, h.Len())

	reloaded := NewStore(repo, nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Empty(t, reloaded.List())
}
