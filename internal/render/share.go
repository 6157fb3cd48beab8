// internal/render/share.go
//
// Package render turns engine state into things people look at: share text,
// colour palettes, keyboard layouts and terminal tiles. It never re-scores;
// everything is derived from the session history and knowledge.
package render

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-unlimited/internal/game"
)

// Emoji used for share text, one per tile.
const (
	EmojiCorrect = "🟩"
	EmojiPresent = "🟨"
	EmojiAbsent  = "⬜"
)

// Emoji returns the share emoji for a verdict.
func Emoji(v game.Verdict) string {
	switch v {
	case game.Correct:
		return EmojiCorrect
	case game.Present:
		return EmojiPresent
	default:
		return EmojiAbsent
	}
}

// EmojiRow renders one result as emoji squares.
func EmojiRow(r game.Result) string {
	var b strings.Builder
	for _, v := range r {
		b.WriteString(Emoji(v))
	}
	return b.String()
}

// ShareText builds "<title> — n/max" followed by one emoji row per guess in
// submission order. It returns "" when there is nothing to share.
func ShareText(title string, history []game.Turn, maxAttempts int) string {
	rows := make([]string, 0, len(history))
	for _, t := range history {
		if len(t.Result) == 0 {
			continue
		}
		rows = append(rows, EmojiRow(t.Result))
	}
	if len(rows) == 0 {
		return ""
	}
	return fmt.Sprintf("%s — %d/%d\n%s", title, len(history), maxAttempts, strings.Join(rows, "\n"))
}

// SessionShareText is ShareText with a title naming the mode (and date for daily games).
func SessionShareText(s *game.Session) string {
	title := "Wordle senza limiti"
	if s.Mode() == game.ModeDaily && !s.Date().IsZero() {
		title += " " + s.Date().String()
	}
	return ShareText(title, s.History(), s.MaxAttempts())
}
