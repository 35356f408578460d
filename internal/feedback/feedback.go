// internal/feedback/feedback.go
//
// Coloring engine for guess evaluation.
// Responsibilities:
//   - Score a guess against the answer with the two-pass duplicate-letter
//     algorithm (per-position Correct/Present/Absent).
//   - Fold each guess into the per-letter keyboard status, upgrade-only.
//
// Notes:
//   - Pure functions: inputs are never mutated, the keyboard is a value type.
//   - Words are expected to be WordLen uppercase A–Z letters; validation
//     happens in the game package before anything reaches here.
package feedback

// WordLen is the fixed word length for answers and guesses.
const WordLen = 5

// Status is the evaluation state of a single letter, ordered so that a
// letter's status only ever moves upward (toward Correct).
type Status uint8

const (
	StatusUnknown Status = iota // no observation yet
	StatusAbsent                // letter not in the answer
	StatusPresent               // letter in the answer, wrong position
	StatusCorrect               // letter in the correct position
)

// String reports a short lowercase name, mainly for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	case StatusCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Keyboard holds one Status per letter A–Z, indexed by letter-'A'.
// It is a value type: Compute returns an updated copy and never touches
// the caller's keyboard.
type Keyboard [26]Status

// Get returns the status for an uppercase letter, StatusUnknown for
// anything outside A–Z.
func (k Keyboard) Get(r rune) Status {
	if r < 'A' || r > 'Z' {
		return StatusUnknown
	}
	return k[r-'A']
}

// Compute scores guess against answer and returns the per-position colors
// together with the keyboard updated by this guess.
//
// Position colors (two passes):
//
//	Pass 1: exact matches become Correct; every non-matched answer letter
//	        is counted into a remaining-letter table.
//	Pass 2: left to right, a non-hit guess letter with remaining count
//	        becomes Present (consuming one instance), otherwise Absent.
//
// The count table replaces destructive removal from a working copy: a
// repeated guess letter with a single instance in the answer earns exactly
// one non-Absent color, at the correct position if any, else the leftmost
// scanned in pass 2.
//
// Keyboard: for each guess letter the observed status (Absent if the letter
// is nowhere in the answer, Correct on an exact position match, Present
// otherwise) is merged upgrade-only, so Correct never regresses to Present
// and Present never regresses to Absent.
func Compute(answer, guess string, kb Keyboard) ([WordLen]Status, Keyboard) {
	var colors [WordLen]Status

	// Pass 1: hits, plus counts for the remaining answer letters.
	var remaining [26]int
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			colors[i] = StatusCorrect
		} else {
			remaining[idx(answer[i])]++
		}
	}

	// Pass 2: presents and absents for the non-hit positions.
	for i := 0; i < WordLen; i++ {
		if colors[i] == StatusCorrect {
			continue
		}
		j := idx(guess[i])
		if remaining[j] > 0 {
			colors[i] = StatusPresent
			remaining[j]--
		} else {
			colors[i] = StatusAbsent
		}
	}

	// Keyboard pass works from the untouched answer, not the consumed counts.
	for i := 0; i < WordLen; i++ {
		observed := StatusAbsent
		if guess[i] == answer[i] {
			observed = StatusCorrect
		} else if contains(answer, guess[i]) {
			observed = StatusPresent
		}
		j := idx(guess[i])
		if observed > kb[j] {
			kb[j] = observed
		}
	}

	return colors, kb
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'A') }

// contains reports whether b occurs anywhere in s.
func contains(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
