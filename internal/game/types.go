// internal/game/types.go
//
// Core type definitions for the game session.
// Defines:
//   - State: session lifecycle (in progress / won / lost).
//   - Result: the render instruction returned for every accepted guess.

package game

import (
	"github.com/bradylabs/wordle-go/internal/feedback"
	"github.com/bradylabs/wordle-go/internal/stats"
)

// MaxAttempts is the number of full guesses a session permits.
const MaxAttempts = 6

// State is the session lifecycle state.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateLost
)

// String reports a coarse string representation of the state.
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Result is returned by Submit for every accepted guess: everything the
// presentation layer needs to render the row it just committed.
type Result struct {
	Colors   [feedback.WordLen]feedback.Status // per-position colors for the row
	Keyboard feedback.Keyboard                 // keyboard status after the merge
	State    State                             // session state after this guess
	Attempt  int                               // 1-based number of the committed row
	Answer   string                            // revealed answer, set only on a loss
	Stats    *stats.Record                     // snapshot, set only on won/lost
}
