// internal/render/terminal.go
//
// ANSI rendering of rows and the keyboard for the terminal game.

package render

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/robalobadob/wordle-unlimited/internal/game"
)

// ansiColor names a terminal colour per verdict; "" means the default colour.
func ansiColor(v game.Verdict) string {
	switch v {
	case game.Correct:
		return "green"
	case game.Present:
		return "yellow"
	case game.Absent:
		return "light gray"
	default:
		return ""
	}
}

// TerminalRow prints a guess in upper case followed by its emoji row, e.g.
// "C A S A   🟩🟩⬜🟩". With color, letters are tinted by verdict.
func TerminalRow(t game.Turn, color bool) string {
	var b strings.Builder
	for i, r := range []rune(t.Guess) {
		if i > 0 {
			b.WriteByte(' ')
		}
		var v game.Verdict
		if i < len(t.Result) {
			v = t.Result[i]
		}
		writeColored(&b, strings.ToUpper(string(r)), ansiColor(v), color)
	}
	b.WriteString("   ")
	b.WriteString(EmojiRow(t.Result))
	return b.String()
}

// TerminalKeyboard prints keyboard rows; letters known Absent are hidden as "·"
// when colour is off, so the summary stays readable in plain text.
func TerminalKeyboard(keys [][]Key, color bool) string {
	var b strings.Builder
	for i, row := range keys {
		b.WriteString(strings.Repeat(" ", i))
		for j, k := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			label := k.Label
			if !color && k.Verdict == game.Absent {
				label = "·"
			}
			writeColored(&b, label, ansiColor(k.Verdict), color)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeColored(b *strings.Builder, s, name string, color bool) {
	if !color || name == "" {
		b.WriteString(s)
		return
	}
	b.WriteString(ansi.FGColorName(name))
	b.WriteString(s)
	b.WriteString(ansi.Clear)
}
