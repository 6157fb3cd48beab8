// internal/render/keyboard.go
//
// On-screen keyboard layout and per-key verdicts.

package render

import (
	"sort"
	"strings"
	"unicode"

	"github.com/robalobadob/wordle-unlimited/internal/game"
)

var qwertyRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}

const (
	maxKeyboardAlphabet = 40
	fallbackRowWidth    = 10
)

// Key is one on-screen key. Letter is the exact rune used in the dictionary.
type Key struct {
	Letter  rune
	Label   string
	Verdict game.Verdict
}

// ShouldShowKeyboard reports whether the alphabet is small enough and made of
// printable single characters.
func ShouldShowKeyboard(alphabet []rune) bool {
	if len(alphabet) == 0 || len(alphabet) > maxKeyboardAlphabet {
		return false
	}
	for _, r := range alphabet {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// KeyboardRows lays the alphabet out in rows. Pure ASCII-letter alphabets get
// QWERTY rows (extra letters in a final row); anything else is sorted
// case-insensitively and chunked into rows of ten.
func KeyboardRows(alphabet []rune) [][]rune {
	if len(alphabet) == 0 {
		return nil
	}
	if !asciiLetters(alphabet) {
		sorted := append([]rune(nil), alphabet...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return unicode.ToUpper(sorted[i]) < unicode.ToUpper(sorted[j])
		})
		var rows [][]rune
		for len(sorted) > 0 {
			n := min(fallbackRowWidth, len(sorted))
			rows = append(rows, sorted[:n])
			sorted = sorted[n:]
		}
		return rows
	}

	present := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		present[r] = true
	}
	used := make(map[rune]bool, len(alphabet))
	var rows [][]rune
	for _, pattern := range qwertyRows {
		var row []rune
		for _, up := range pattern {
			for _, r := range []rune{unicode.ToLower(up), up} {
				if present[r] {
					row = append(row, r)
					used[r] = true
				}
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	var rest []rune
	for _, r := range alphabet {
		if !used[r] {
			rest = append(rest, r)
		}
	}
	if len(rest) > 0 {
		sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
		rows = append(rows, rest)
	}
	return rows
}

// Keyboard combines the layout with per-letter knowledge.
func Keyboard(alphabet []rune, letters map[rune]game.Verdict) [][]Key {
	var out [][]Key
	for _, row := range KeyboardRows(alphabet) {
		keys := make([]Key, 0, len(row))
		for _, r := range row {
			keys = append(keys, Key{Letter: r, Label: strings.ToUpper(string(r)), Verdict: letters[r]})
		}
		out = append(out, keys)
	}
	return out
}

func asciiLetters(alphabet []rune) bool {
	for _, r := range alphabet {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
