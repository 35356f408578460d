package words_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradylabs/wordle-go/internal/words"
)

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadFromFiles(t *testing.T) {
	answers := writeList(t, "crane\nSLATE\n  allow \n")
	allowed := writeList(t, "llama\nerase\n")

	lex, err := words.Load(answers, allowed)
	require.NoError(t, err)

	assert.Equal(t, 3, lex.AnswerCount())
	assert.Equal(t, "CRANE", lex.AnswerAt(0))
	assert.Equal(t, "SLATE", lex.AnswerAt(1))

	// Answers are valid guesses, allowed extras are not answers.
	assert.True(t, lex.IsAllowed("ALLOW"))
	assert.True(t, lex.IsAllowed("LLAMA"))
	assert.True(t, lex.IsAnswer("CRANE"))
	assert.False(t, lex.IsAnswer("LLAMA"))
	assert.False(t, lex.IsAllowed("ZZZZZ"))
}

func TestLoadSkipsInvalidLines(t *testing.T) {
	answers := writeList(t, "# comment\n\ncrane\ntoolong\nab1de\ncat\nslate\n")

	lex, err := words.Load(answers, "")
	require.NoError(t, err)
	assert.Equal(t, 2, lex.AnswerCount())
}

func TestLoadCaseInsensitiveLookup(t *testing.T) {
	lex, err := words.Load(writeList(t, "crane\n"), "")
	require.NoError(t, err)
	assert.True(t, lex.IsAllowed("crane"))
	assert.True(t, lex.IsAllowed("Crane"))
}

func TestLoadAllowedOnlyServesBoth(t *testing.T) {
	allowed := writeList(t, "crane\nslate\n")
	lex, err := words.Load("", allowed)
	require.NoError(t, err)
	assert.Equal(t, 2, lex.AnswerCount())
	assert.True(t, lex.IsAnswer("SLATE"))
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	lex, err := words.Load("", "")
	require.NoError(t, err)

	ans, all := lex.Counts()
	assert.Greater(t, ans, 0)
	assert.GreaterOrEqual(t, all, ans, "allowed is a superset of answers")
	assert.True(t, lex.IsAllowed(lex.AnswerAt(0)))
}

func TestLoadEmptyAnswers(t *testing.T) {
	_, err := words.Load(writeList(t, "# nothing valid\n"), "")
	assert.Error(t, err)
}

func TestAnswerAtWraps(t *testing.T) {
	lex, err := words.Load(writeList(t, "crane\nslate\nallow\n"), "")
	require.NoError(t, err)

	assert.Equal(t, lex.AnswerAt(0), lex.AnswerAt(3))
	assert.Equal(t, lex.AnswerAt(1), lex.AnswerAt(4))
}

func TestDailyIndex(t *testing.T) {
	day := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	i := words.DailyIndex(day, "salt", 100)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)

	// Same date (any time of day) and salt → same index.
	later := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, i, words.DailyIndex(later, "salt", 100))

	// A different date stays within bounds too.
	next := words.DailyIndex(day.AddDate(0, 0, 1), "salt", 100)
	assert.GreaterOrEqual(t, next, 0)
	assert.Less(t, next, 100)

	assert.Equal(t, 0, words.DailyIndex(day, "salt", 0))
}

func TestDateKey(t *testing.T) {
	tz := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2024, 3, 9, 23, 30, 0, 0, tz) // still 2024-03-09 14:30 UTC
	assert.Equal(t, "2024-03-09", words.DateKey(late))
}
