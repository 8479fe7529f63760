package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CI314X/wordle/internal/words"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "2026-10-14", DateKey(time.Date(2026, 10, 15, 1, 0, 0, 0, loc)))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 200)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 200)
	assert.Equal(t, i, WordIndex(day.Add(3*time.Hour), "salt", 200), "same day, same index")
	assert.Zero(t, WordIndex(day, "salt", 0))
}

func TestSecret(t *testing.T) {
	d, err := words.Default(5, words.Russian)
	require.NoError(t, err)
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	w := Secret(d, day, "")
	assert.True(t, d.Contains(w))
	assert.Equal(t, w, Secret(d, day, DefaultSalt))
}
