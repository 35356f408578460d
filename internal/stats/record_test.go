package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyWin(t *testing.T) {
	var r Record

	r.ApplyWin(3)

	assert.Equal(t, 1, r.GamesPlayed)
	assert.Equal(t, 1, r.GamesWon)
	assert.Equal(t, 100, r.WinPercent)
	assert.Equal(t, 1, r.CurrentStreak)
	assert.Equal(t, 1, r.MaxStreak)
	assert.Equal(t, [Buckets]int{0, 0, 1, 0, 0, 0}, r.GuessDistro)
}

func TestApplyLoss(t *testing.T) {
	r := Record{
		GamesPlayed:   3,
		GamesWon:      3,
		WinPercent:    100,
		CurrentStreak: 3,
		MaxStreak:     3,
		GuessDistro:   [Buckets]int{1, 1, 1, 0, 0, 0},
	}

	r.ApplyLoss()

	assert.Equal(t, 4, r.GamesPlayed)
	assert.Equal(t, 3, r.GamesWon)
	assert.Equal(t, 75, r.WinPercent)
	assert.Equal(t, 0, r.CurrentStreak)
	assert.Equal(t, 3, r.MaxStreak, "max streak survives a loss")
	assert.Equal(t, [Buckets]int{1, 1, 1, 0, 0, 0}, r.GuessDistro, "losses never touch the histogram")
}

func TestMaxStreakOnlyBumpsWhenCaughtUp(t *testing.T) {
	var r Record
	r.ApplyWin(1)
	r.ApplyWin(1)
	r.ApplyLoss()
	r.ApplyWin(1)

	assert.Equal(t, 1, r.CurrentStreak)
	assert.Equal(t, 2, r.MaxStreak, "a shorter new streak must not move the max")

	r.ApplyWin(1)
	r.ApplyWin(1)
	assert.Equal(t, 3, r.CurrentStreak)
	assert.Equal(t, 3, r.MaxStreak)
}

func TestWinPercentRounding(t *testing.T) {
	tests := []struct {
		name   string
		played int
		won    int
		want   int
	}{
		{name: "zero games", played: 0, won: 0, want: 0},
		{name: "one of three rounds up", played: 3, won: 1, want: 33},
		{name: "two of three rounds up", played: 3, won: 2, want: 67},
		{name: "exact half rounds up", played: 8, won: 1, want: 13}, // 12.5
		{name: "one of six", played: 6, won: 1, want: 17},           // 16.67
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{GamesPlayed: tt.played, GamesWon: tt.won}
			r.recalcWinPercent()
			assert.Equal(t, tt.want, r.WinPercent)
		})
	}
}

func TestInvariants(t *testing.T) {
	var r Record
	outcomes := []bool{true, false, true, true, false, false, true, true, true, false}
	for _, won := range outcomes {
		if won {
			r.ApplyWin(4)
		} else {
			r.ApplyLoss()
		}
		assert.LessOrEqual(t, r.GamesWon, r.GamesPlayed)
		assert.LessOrEqual(t, r.CurrentStreak, r.MaxStreak)
	}
	assert.Equal(t, 10, r.GamesPlayed)
	assert.Equal(t, 6, r.GamesWon)
	assert.Equal(t, 60, r.WinPercent)
}

func TestApplyWinRejectsOutOfRangeAttempts(t *testing.T) {
	var r Record
	assert.Panics(t, func() { r.ApplyWin(0) })
	assert.Panics(t, func() { r.ApplyWin(Buckets + 1) })
}

func TestAdvanceWordTracker(t *testing.T) {
	r := Record{WordTracker: 0}
	r.AdvanceWordTracker(3)
	assert.Equal(t, 1, r.WordTracker)
	r.AdvanceWordTracker(3)
	assert.Equal(t, 2, r.WordTracker)
	r.AdvanceWordTracker(3)
	assert.Equal(t, 0, r.WordTracker, "wraps past the last valid index")
}
