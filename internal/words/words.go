// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load the answer pool and the allowed-guess list from configured files
//     or fall back to embedded defaults.
//   - Maintain lookup sets (answers only, answers∪allowed).
//   - Select answers by rotating index (AnswerAt) or by date (DailyIndex,
//     see daily.go).
//
// Word Lists:
//   - "answers": the finite pool secrets are drawn from (also valid guesses).
//   - "allowed": extra valid guesses, never drawable as secrets.
//
// Constraints:
//   • Words are exactly 5 letters A–Z; everything else is skipped on load.
//   • Lists are normalized to uppercase.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
)

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// Lexicon holds the loaded word lists. Read-only after Load.
type Lexicon struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ allowed
}

// Load builds a Lexicon from the given files.
//
//  1. Both paths set: answers from the first, allowed guesses from the second.
//  2. Only allowedPath set: that list serves as both.
//  3. Neither set: embedded defaults.
//
// Returns an error if the answer pool ends up empty.
func Load(answersPath, allowedPath string) (*Lexicon, error) {
	var ansList, allowList []string

	switch {
	case answersPath != "" && allowedPath != "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}

	case answersPath == "" && allowedPath != "":
		var err error
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "" && allowedPath == "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}

	default:
		ansList = normalizeLines(embeddedAnswers)
		allowList = normalizeLines(embeddedAllowed)
	}

	if len(ansList) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	lex := &Lexicon{
		answers:    ansList,
		answersSet: toSet(ansList),
		allowedSet: toSet(ansList),
	}
	for _, w := range allowList {
		lex.allowedSet[w] = struct{}{}
	}
	return lex, nil
}

// IsAllowed reports whether w is a valid guess (answers ∪ allowed).
func (l *Lexicon) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(w)]
	return ok
}

// IsAnswer reports whether w is in the answer pool.
func (l *Lexicon) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToUpper(w)]
	return ok
}

// AnswerCount returns the size of the answer pool.
func (l *Lexicon) AnswerCount() int { return len(l.answers) }

// AnswerAt returns the answer at the given rotating index, wrapping modulo
// the pool size so a stale persisted index stays valid after a list change.
func (l *Lexicon) AnswerAt(i int) string {
	if i < 0 {
		i = 0
	}
	return l.answers[i%len(l.answers)]
}

// Counts returns (answers, allowed) sizes for diagnostics.
func (l *Lexicon) Counts() (int, int) {
	return len(l.answers), len(l.allowedSet)
}

// readWordFile loads one word per line, uppercases, trims, and keeps only
// valid 5-letter words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string the same way.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord trims and uppercases a raw line; ok is false for comments,
// blanks, and anything that is not exactly 5 letters A–Z.
func normalizeWord(raw string) (string, bool) {
	w := strings.TrimSpace(raw)
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	w = strings.ToUpper(w)
	if len(w) != 5 || !isUpperAlpha(w) {
		return "", false
	}
	return w, true
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
