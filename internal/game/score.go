// internal/game/score.go
//
// Two-pass Wordle scoring.

package game

import "unicode/utf8"

// Score implements the standard two-pass Wordle scoring over runes, so words
// of any length and any script are supported. Letters are compared exactly;
// no case or accent folding happens here.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the remaining (non-correct) secret letters.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// Correct matches must be reserved before Present consumes availability,
// which is what keeps repeated letters from being over-credited.
//
// Both words must be valid UTF-8: invalid bytes would all decode to U+FFFD
// and compare equal, so they are rejected with ErrInvalidText.
func Score(secret, guess string) (Result, error) {
	if !utf8.ValidString(secret) || !utf8.ValidString(guess) {
		return nil, ErrInvalidText
	}
	s := []rune(secret)
	g := []rune(guess)
	if len(s) != len(g) {
		return nil, &LengthError{Want: len(s), Got: len(g)}
	}

	res := make(Result, len(g))
	remaining := make(map[rune]int, len(s))

	// First pass: hits and counts for the rest of the secret.
	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
		} else {
			remaining[s[i]]++
		}
	}

	// Second pass: presents and misses for non-hit tiles.
	for i := range g {
		if res[i] == Correct {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = Present
			remaining[g[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}
