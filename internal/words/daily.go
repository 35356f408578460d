// internal/words/daily.go
//
// Deterministic date-based answer selection, an alternative to the rotating
// word tracker. The same salt and date always pick the same index.

package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic answer index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) mod answersLen.
func DailyIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
