// main.go
//
// Terminal front end for the game. Everything here is presentation
// plumbing: it assembles player input into candidates, forwards them to the
// session, and renders the results with ANSI colors. Game rules live in
// internal/game and internal/feedback.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bradylabs/wordle-go/internal/config"
	"github.com/bradylabs/wordle-go/internal/feedback"
	"github.com/bradylabs/wordle-go/internal/game"
	"github.com/bradylabs/wordle-go/internal/stats"
	"github.com/bradylabs/wordle-go/internal/words"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	lex, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	na, nw := lex.Counts()
	log.Debug().Int("answers", na).Int("allowed", nw).Msg("word lists loaded")

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open stats store")
	}
	defer closeStore()

	errlog, closeLog, err := stats.OpenErrorLog(cfg.ErrorLogPath)
	if err != nil {
		log.Warn().Err(err).Msg("error log unavailable")
		errlog = zerolog.Nop()
	} else {
		defer func() { _ = closeLog() }()
	}

	rec := stats.LoadOrDefault(store, errlog)

	// Pick the answer. Rotate mode advances the tracker now, at session
	// start; the bumped index is persisted with the end-of-session save, so
	// an abandoned game replays the same word on the next launch.
	var answer string
	switch cfg.GameMode {
	case config.ModeDaily:
		answer = lex.AnswerAt(words.DailyIndex(time.Now(), cfg.DailySalt, lex.AnswerCount()))
	default:
		answer = lex.AnswerAt(rec.WordTracker)
		rec.AdvanceWordTracker(lex.AnswerCount())
	}

	sess := game.New(lex, answer, &rec)
	final := play(sess, os.Stdin)
	if final == nil {
		return // player quit mid-game; nothing to persist
	}

	printStats(*final.Stats)
	if err := store.Save(rec); err != nil {
		log.Error().Err(err).Msg("failed to save stats")
		os.Exit(1)
	}
}

// openStore builds the configured statistics backend.
func openStore(cfg config.Config) (stats.Store, func(), error) {
	if cfg.StatsBackend == config.BackendSQLite {
		st, err := stats.OpenSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	}
	return stats.NewFileStore(cfg.StatsPath), func() {}, nil
}

// play runs the input loop until the session ends or stdin closes.
// Returns the terminal result, or nil if the player quit early.
func play(sess *game.Session, in *os.File) *game.Result {
	fmt.Printf("Guess the word: %d letters, %d attempts. Type a word and press enter.\n",
		feedback.WordLen, game.MaxAttempts)
	fmt.Println("Commands: :clear resets the current row, :q quits.")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case ":q":
			return nil
		case ":clear":
			sess.ClearRow()
			continue
		}

		for _, r := range line {
			sess.Type(r)
		}
		res, err := sess.SubmitEntry()
		switch {
		case err == nil:
			printRow(sess.Guesses()[res.Attempt-1], res.Colors)
			printKeyboard(res.Keyboard)
			switch res.State {
			case game.StateWon:
				fmt.Println("YOU WIN!")
				return &res
			case game.StateLost:
				fmt.Printf("YOU LOSE!  The answer was: %s\n", res.Answer)
				return &res
			}
		case errors.Is(err, game.ErrNotEnoughLetters):
			fmt.Printf("Not enough letters (have %q)\n", sess.Entry())
		case errors.Is(err, game.ErrNotInLexicon):
			fmt.Println("Word not recognized")
			sess.ClearRow()
		default:
			fmt.Println(err)
		}
	}
	return nil
}

// ANSI backgrounds per status.
func bg(s feedback.Status) string {
	switch s {
	case feedback.StatusCorrect:
		return "\x1b[42;30m" // green
	case feedback.StatusPresent:
		return "\x1b[43;30m" // yellow
	case feedback.StatusAbsent:
		return "\x1b[100;37m" // dark gray
	default:
		return "\x1b[47;30m" // unseen keys
	}
}

const ansiReset = "\x1b[0m"

func printRow(word string, colors [feedback.WordLen]feedback.Status) {
	var b strings.Builder
	for i := 0; i < feedback.WordLen; i++ {
		fmt.Fprintf(&b, "%s %c %s", bg(colors[i]), word[i], ansiReset)
	}
	fmt.Println(b.String())
}

func printKeyboard(kb feedback.Keyboard) {
	for _, row := range []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"} {
		var b strings.Builder
		for _, r := range row {
			fmt.Fprintf(&b, "%s%c%s ", bg(kb.Get(r)), r, ansiReset)
		}
		fmt.Println(b.String())
	}
}

// printStats renders the summary the result popup used to show: headline
// numbers plus a guess-distribution bar chart.
func printStats(rec stats.Record) {
	fmt.Printf("\nPlayed %d   Win %d%%   Current Streak %d   Max Streak %d\n",
		rec.GamesPlayed, rec.WinPercent, rec.CurrentStreak, rec.MaxStreak)
	fmt.Println("GUESS DISTRIBUTION")
	for i, n := range rec.GuessDistro {
		fmt.Printf("%d: %s %d\n", i+1, strings.Repeat("#", n), n)
	}
}
