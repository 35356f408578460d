// internal/game/session.go
//
// Game session state machine for a single play-through.
// Responsibilities:
//   - Validate and apply guesses (length, letters, lexicon membership).
//   - Drive state transitions: playing → won/lost at MaxAttempts.
//   - Carry the keyboard status across guesses (upgrade-only merge).
//   - Mutate the statistics record exactly once, on the terminal transition.
//   - Hold the in-progress row entry so the presentation layer can stay dumb.
//
// Rejected guesses are sentinel errors and consume nothing: the session is
// unchanged and the same candidate rejects identically on resubmit.
// Persisting the mutated statistics record is the caller's job.

package game

import (
	"errors"
	"strings"

	"github.com/bradylabs/wordle-go/internal/feedback"
	"github.com/bradylabs/wordle-go/internal/stats"
	"github.com/bradylabs/wordle-go/internal/words"
)

var (
	// ErrNotEnoughLetters rejects a candidate shorter than a full row.
	ErrNotEnoughLetters = errors.New("not enough letters")
	// ErrNotInLexicon rejects a candidate outside answers ∪ allowed.
	ErrNotInLexicon = errors.New("word not recognized")
	// ErrFinished rejects guesses after the session reached won/lost.
	ErrFinished = errors.New("game finished")
)

// Session holds the state of one game: the answer, committed guesses, the
// aggregate keyboard, and the statistics record mutated on completion.
type Session struct {
	lex      *words.Lexicon
	answer   string
	guesses  []string
	keyboard feedback.Keyboard
	state    State
	record   *stats.Record
	entry    []byte
}

// New constructs an in-progress session for the given answer.
// record may be nil when no statistics should be kept (practice runs, tests).
func New(lex *words.Lexicon, answer string, record *stats.Record) *Session {
	return &Session{
		lex:    lex,
		answer: strings.ToUpper(answer),
		record: record,
	}
}

// Submit validates and applies one candidate guess.
//
// Rejections (no attempt consumed, no state change):
//   - ErrFinished when the session is already terminal.
//   - ErrNotEnoughLetters when fewer than a full row of letters was entered.
//   - ErrNotInLexicon for non-letters or words outside the lexicon.
//
// On acceptance the guess is committed, colored, and merged into the
// keyboard. Hitting the answer transitions to won; missing on the last
// attempt transitions to lost and reveals the answer. Either terminal
// transition applies the statistics update and snapshots the record into
// the Result.
func (s *Session) Submit(candidate string) (Result, error) {
	if s.state != StateInProgress {
		return Result{}, ErrFinished
	}
	candidate = strings.ToUpper(strings.TrimSpace(candidate))
	if len(candidate) < feedback.WordLen {
		return Result{}, ErrNotEnoughLetters
	}
	if len(candidate) > feedback.WordLen || !s.lex.IsAllowed(candidate) {
		return Result{}, ErrNotInLexicon
	}

	colors, kb := feedback.Compute(s.answer, candidate, s.keyboard)
	s.guesses = append(s.guesses, candidate)
	s.keyboard = kb
	s.entry = s.entry[:0]

	res := Result{
		Colors:   colors,
		Keyboard: kb,
		Attempt:  len(s.guesses),
	}

	switch {
	case candidate == s.answer:
		s.state = StateWon
		if s.record != nil {
			s.record.ApplyWin(len(s.guesses))
			snap := *s.record
			res.Stats = &snap
		}
	case len(s.guesses) >= MaxAttempts:
		s.state = StateLost
		res.Answer = s.answer
		if s.record != nil {
			s.record.ApplyLoss()
			snap := *s.record
			res.Stats = &snap
		}
	}
	res.State = s.state
	return res, nil
}

// Type appends one letter to the current row entry. Non-letters, full rows,
// and finished sessions are ignored.
func (s *Session) Type(r rune) {
	if s.state != StateInProgress || len(s.entry) >= feedback.WordLen {
		return
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return
	}
	s.entry = append(s.entry, byte(r))
}

// ClearRow discards the current row entry. Committed guesses, the attempt
// index, and the keyboard are untouched.
func (s *Session) ClearRow() { s.entry = s.entry[:0] }

// Entry returns the current partial row entry.
func (s *Session) Entry() string { return string(s.entry) }

// SubmitEntry submits the buffered row entry.
func (s *Session) SubmitEntry() (Result, error) { return s.Submit(s.Entry()) }

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Attempt reports the 0-based index of the next row (equal to the number of
// committed guesses).
func (s *Session) Attempt() int { return len(s.guesses) }

// Guesses returns a copy of the committed guesses in order.
func (s *Session) Guesses() []string {
	return append([]string(nil), s.guesses...)
}

// Keyboard returns the aggregate keyboard status.
func (s *Session) Keyboard() feedback.Keyboard { return s.keyboard }
