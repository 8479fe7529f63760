// internal/daily/daily.go
//
// Word of the day: a secret derived from the date, so a single simulated
// game can be replayed by anyone with the same dictionary and salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/CI314X/wordle/internal/words"
)

// DefaultSalt is used when no salt is configured.
const DefaultSalt = "wordle"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Secret returns the dictionary word for the given date.
func Secret(dict *words.Dictionary, date time.Time, salt string) string {
	if salt == "" {
		salt = DefaultSalt
	}
	return dict.At(WordIndex(date, salt, dict.Len()))
}
