package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CI314X/wordle/internal/game"
)

func play(t *testing.T, secret string, attempts int, guesses ...string) *game.Game {
	t.Helper()
	g := game.New(secret, attempts, nil)
	for _, w := range guesses {
		_, _, err := g.ApplyGuess(w)
		require.NoError(t, err)
	}
	return g
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	a := play(t, "клише", 6, "логос", "клише")
	b := play(t, "загон", 6, "логос")
	require.NoError(t, st.Save(ctx, a))
	require.NoError(t, st.Save(ctx, b))
	require.NoError(t, st.Save(ctx, a))

	got, err := st.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*game.Game{a, b}, list)
}

func TestSaveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewMemoryStore().Save(ctx, game.New("клише", 6, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	games := []*game.Game{
		play(t, "клише", 6, "логос", "клише"),
		play(t, "загон", 6, "загон"),
		play(t, "логос", 2, "клише", "загон"),
		play(t, "метро", 6, "клише"),
	}

	s := Summarize(games)
	assert.Equal(t, 4, s.Played)
	assert.Equal(t, 2, s.Won)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, 1.5, s.AverageAttempts, 1e-9)
	assert.Equal(t, []Unsolved{
		{Secret: "логос", LastGuess: "загон"},
		{Secret: "метро", LastGuess: "клише"},
	}, s.Unsolved)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Played)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AverageAttempts)
	assert.Empty(t, s.Unsolved)
}
