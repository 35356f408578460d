// internal/stats/record.go
//
// Persisted game statistics.
// The record is a flat key-value document: lifetime counters, streaks, the
// won-on-attempt-N histogram, and the rotating index used to pick the next
// answer. It is loaded once at startup and overwritten in full at most once
// per completed session.

package stats

import (
	"fmt"
	"math"
)

// Buckets is the number of histogram buckets (one per allowed attempt).
const Buckets = 6

// Record is the persisted statistics document. JSON tags double as the
// key names in the key-value SQLite backend.
type Record struct {
	GamesPlayed   int          `json:"tot_games_played"`
	GamesWon      int          `json:"tot_games_won"`
	WinPercent    int          `json:"win_percent"`
	CurrentStreak int          `json:"current_streak"`
	MaxStreak     int          `json:"max_streak"`
	GuessDistro   [Buckets]int `json:"guess_distro"`
	WordTracker   int          `json:"word_tracker"`
}

// ApplyWin records a won session that took the given number of attempts
// (1..Buckets). The max streak is bumped only when the current streak had
// caught up to it, so max never trails current.
func (r *Record) ApplyWin(attempts int) {
	if attempts < 1 || attempts > Buckets {
		panic(fmt.Sprintf("stats: attempts out of range: %d", attempts))
	}
	r.GamesPlayed++
	r.GamesWon++
	r.recalcWinPercent()
	if r.MaxStreak == r.CurrentStreak {
		r.MaxStreak++
	}
	r.CurrentStreak++
	r.GuessDistro[attempts-1]++
}

// ApplyLoss records a lost session. The histogram only counts wins, so it
// is left untouched.
func (r *Record) ApplyLoss() {
	r.GamesPlayed++
	r.recalcWinPercent()
	r.CurrentStreak = 0
}

// AdvanceWordTracker moves the rotating answer index forward by one,
// wrapping to 0 past the last valid index.
func (r *Record) AdvanceWordTracker(answerCount int) {
	r.WordTracker++
	if answerCount > 0 && r.WordTracker >= answerCount {
		r.WordTracker = 0
	}
}

// recalcWinPercent derives the integer win percentage, rounding half away
// from zero.
func (r *Record) recalcWinPercent() {
	if r.GamesPlayed == 0 {
		r.WinPercent = 0
		return
	}
	r.WinPercent = int(math.Round(float64(r.GamesWon) / float64(r.GamesPlayed) * 100))
}
