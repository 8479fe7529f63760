package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/words"
)

func mustFeedback(t *testing.T, s string) game.Feedback {
	t.Helper()
	fb, err := game.ParseFeedback(s, len(s))
	require.NoError(t, err)
	return fb
}

func newEngine(t *testing.T, list ...string) *Engine {
	t.Helper()
	d, err := words.FromWords(list, 5, words.Russian)
	require.NoError(t, err)
	return New(d, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func defaultDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Default(5, words.Russian)
	require.NoError(t, err)
	return d
}

func TestIngestWorkedExample(t *testing.T) {
	e := newEngine(t, "ебкви", "обвес", "жбеву", "кбелм", "абвгд", "лбвкм", "тбрмв")

	require.NoError(t, e.Ingest("абвгд", mustFeedback(t, "-+*--")))

	assert.Equal(t, []rune{'б'}, e.Allowed(1))
	assert.NotContains(t, e.Allowed(2), 'в')
	for i := 0; i < 5; i++ {
		for _, l := range []rune{'а', 'г', 'д'} {
			assert.NotContains(t, e.Allowed(i), l, "position %d", i)
		}
	}
	assert.Contains(t, e.Allowed(0), 'в')
	assert.Len(t, e.Allowed(0), 29)
	assert.Equal(t, map[rune]int{'б': 1, 'в': 1}, e.Required())

	assert.ElementsMatch(t, []string{"ебкви", "жбеву", "тбрмв"}, e.Pool())
	require.Len(t, e.History(), 1)
	assert.Equal(t, "абвгд", e.History()[0].Guess)
	assert.Equal(t, "-+*--", e.History()[0].Feedback.String())
}

func TestIngestMissAfterRequiredInSameFeedback(t *testing.T) {
	e := newEngine(t, "кбкде", "кккде", "кекде")

	// The first к is confirmed, so the second miss only bans к at position 1.
	require.NoError(t, e.Ingest("ккабв", mustFeedback(t, "+----")))

	assert.Equal(t, []rune{'к'}, e.Allowed(0))
	assert.NotContains(t, e.Allowed(1), 'к')
	assert.Contains(t, e.Allowed(2), 'к')
	assert.Equal(t, map[rune]int{'к': 1}, e.Required())
	assert.Equal(t, []string{"кекде"}, e.Pool())
}

func TestIngestMissBeforeRequiredInSameFeedback(t *testing.T) {
	e := newEngine(t, "ккгде", "экгде")

	// A miss seen before the letter is confirmed bans it everywhere;
	// the later hit then fixes its own position.
	require.NoError(t, e.Ingest("ккабв", mustFeedback(t, "-+---")))

	assert.NotContains(t, e.Allowed(0), 'к')
	assert.Equal(t, []rune{'к'}, e.Allowed(1))
	assert.NotContains(t, e.Allowed(2), 'к')
	assert.Equal(t, []string{"экгде"}, e.Pool())
}

func TestIngestMissOfLetterRequiredEarlier(t *testing.T) {
	e := newEngine(t, "метро", "мотор", "оттер", "ферзь")

	require.NoError(t, e.Ingest("осина", mustFeedback(t, "*----")))
	// о is required since the first turn, so this miss only bans position 3.
	require.NoError(t, e.Ingest("булок", mustFeedback(t, "-----")))

	assert.NotContains(t, e.Allowed(0), 'о')
	assert.NotContains(t, e.Allowed(3), 'о')
	for _, i := range []int{1, 2, 4} {
		assert.Contains(t, e.Allowed(i), 'о', "position %d", i)
	}
	assert.Equal(t, map[rune]int{'о': 1}, e.Required())
	assert.Equal(t, []string{"метро"}, e.Pool())
	assert.Len(t, e.History(), 2)
}

func TestIngestInvalid(t *testing.T) {
	e := newEngine(t, "клише", "логос")

	cases := []struct {
		name  string
		guess string
		fb    game.Feedback
	}{
		{"short guess", "кот", mustFeedback(t, "-----")},
		{"short feedback", "клише", mustFeedback(t, "---")},
		{"foreign letter", "klish", mustFeedback(t, "-----")},
		{"bad mark", "клише", game.Feedback{'-', '-', '?', '-', '-'}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := e.Ingest(c.guess, c.fb)
			assert.ErrorIs(t, err, game.ErrInvalidFeedback)
			assert.Equal(t, 2, e.PoolSize())
			assert.Empty(t, e.History())
			assert.Empty(t, e.Required())
		})
	}
}

func TestIngestCanonicalizesVariants(t *testing.T) {
	e := newEngine(t, "полет", "пилот")
	require.NoError(t, e.Ingest("полёт", mustFeedback(t, "+++++")))
	assert.Equal(t, []string{"полет"}, e.Pool())
}

func TestPoolShrinksMonotonically(t *testing.T) {
	d := defaultDict(t)
	e := New(d, WithRand(rand.New(rand.NewPCG(7, 7))))
	rng := rand.New(rand.NewPCG(3, 4))

	for trial := 0; trial < 50; trial++ {
		e.Reset()
		secret := d.At(rng.IntN(d.Len()))
		for turn := 0; turn < 6; turn++ {
			before := e.Pool()
			guess, err := e.Next(Uniform)
			require.NoError(t, err)
			fb := game.Score(secret, guess)
			if fb.Solved() {
				break
			}
			require.NoError(t, e.Ingest(guess, fb))
			assert.Subset(t, before, e.Pool())
			assert.Less(t, e.PoolSize(), len(before), "guess %q must be pruned", guess)
		}
	}
}

func TestSecretStaysInPool(t *testing.T) {
	d := defaultDict(t)
	e := New(d, WithRand(rand.New(rand.NewPCG(11, 13))))

	for _, strategy := range []Strategy{Uniform, Weighted} {
		for _, secret := range d.Words() {
			e.Reset()
			for turn := 0; turn < 10; turn++ {
				guess, err := e.Next(strategy)
				require.NoError(t, err, "secret %q", secret)
				fb := game.Score(secret, guess)
				if fb.Solved() {
					assert.Equal(t, secret, guess)
					break
				}
				require.NoError(t, e.Ingest(guess, fb))
				assert.Contains(t, e.Pool(), secret, "secret %q after %q %s", secret, guess, fb)
			}
		}
	}
}

func TestReset(t *testing.T) {
	d := defaultDict(t)
	e := New(d)

	require.NoError(t, e.Ingest("логос", game.Score("клише", "логос")))
	require.NoError(t, e.Ingest("загон", game.Score("клише", "загон")))
	require.Less(t, e.PoolSize(), d.Len())

	e.Reset()
	assert.Equal(t, d.Words(), e.Pool())
	assert.Empty(t, e.History())
	assert.Empty(t, e.Required())
	for i := 0; i < e.Length(); i++ {
		assert.Len(t, e.Allowed(i), words.Russian.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	e := newEngine(t, "клише", "логос", "загон")
	fb := game.Score("клише", "клише")
	assert.Equal(t, "+++++", fb.String())

	require.NoError(t, e.Ingest("клише", fb))
	assert.Equal(t, []string{"клише"}, e.Pool())
}

func TestNextEmptyPool(t *testing.T) {
	e := newEngine(t, "клише", "логос")
	require.NoError(t, e.Ingest("загон", mustFeedback(t, "+++++")))
	require.Zero(t, e.PoolSize())

	for _, s := range []Strategy{Uniform, Weighted} {
		w, err := e.Next(s)
		assert.ErrorIs(t, err, ErrPoolExhausted)
		assert.Empty(t, w)
	}
}

func TestNextUniformReturnsPoolMember(t *testing.T) {
	e := New(defaultDict(t), WithRand(rand.New(rand.NewPCG(5, 6))))
	require.NoError(t, e.Ingest("логос", game.Score("клише", "логос")))

	pool := e.Pool()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w, err := e.Next(Uniform)
		require.NoError(t, err)
		assert.Contains(t, pool, w)
		seen[w] = true
	}
	if len(pool) > 1 {
		assert.Greater(t, len(seen), 1)
	}
}

func TestNextWeighted(t *testing.T) {
	d, err := words.FromWords([]string{"xyz", "abd", "abc"}, 3, words.English)
	require.NoError(t, err)
	e := New(d)

	// a and b occur in two words each: abc and abd tie at 5, xyz scores 3.
	assert.Equal(t, []int{5, 5, 3}, e.Scores())

	w, err := e.Next(Weighted)
	require.NoError(t, err)
	assert.Equal(t, "abc", w)

	// Same pool, same answer.
	again, err := e.Next(Weighted)
	require.NoError(t, err)
	assert.Equal(t, w, again)
}

func TestNextWeightedCountsDistinctLetters(t *testing.T) {
	d, err := words.FromWords([]string{"aaa", "abc", "bcd"}, 3, words.English)
	require.NoError(t, err)
	e := New(d)

	// a:2 b:2 c:2 d:1 → aaa=2, abc=6, bcd=5.
	assert.Equal(t, []int{2, 6, 5}, e.Scores())
	w, err := e.Next(Weighted)
	require.NoError(t, err)
	assert.Equal(t, "abc", w)
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"":         Uniform,
		"random":   Uniform,
		"Uniform":  Uniform,
		"weighted": Weighted,
		"clever":   Weighted,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseStrategy("minimax")
	assert.Error(t, err)
	assert.Equal(t, "weighted", Weighted.String())
}

func TestDiscard(t *testing.T) {
	e := newEngine(t, "клише", "логос", "загон")

	assert.True(t, e.Discard("логос"))
	assert.False(t, e.Discard("логос"))
	assert.False(t, e.Discard("метро"))
	assert.Equal(t, []string{"загон", "клише"}, e.Pool())

	w, err := e.Next(Weighted)
	require.NoError(t, err)
	assert.NotEqual(t, "логос", w)

	e.Reset()
	assert.Equal(t, 3, e.PoolSize())
}
