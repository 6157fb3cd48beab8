// internal/game/hardmode.go
//
// Hard-mode checks against accumulated Knowledge.

package game

import (
	"sort"
)

// ValidateHardMode checks guess against what is already known.
//
//  1. Every confirmed position must keep its letter.
//  2. Every letter with a known minimum count must appear at least that often.
//
// Absent letters add no constraint: a letter can be Absent in one tile and
// Correct in another when the secret holds fewer copies than the guess did.
// Checks run in position order, then rune order, so the reported reason is stable.
func ValidateHardMode(guess string, k *Knowledge) error {
	if k == nil {
		return nil
	}
	g := []rune(guess)

	positions := make([]int, 0, len(k.Confirmed))
	for p := range k.Confirmed {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	for _, p := range positions {
		want := k.Confirmed[p]
		if p >= len(g) || g[p] != want {
			return &HardModeError{Rule: MustUseConfirmedLetter, Position: p, Letter: want}
		}
	}

	have := make(map[rune]int, len(g))
	for _, r := range g {
		have[r]++
	}
	letters := make([]rune, 0, len(k.MinCounts))
	for l := range k.MinCounts {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	for _, l := range letters {
		if need := k.MinCounts[l]; have[l] < need {
			return &HardModeError{Rule: MustIncludeKnownLetter, Letter: l, Count: need}
		}
	}
	return nil
}

// ValidateStrict applies ValidateHardMode and then forbids placing a known
// letter again in a position where it was already scored Present.
func ValidateStrict(guess string, k *Knowledge) error {
	if err := ValidateHardMode(guess, k); err != nil {
		return err
	}
	if k == nil {
		return nil
	}
	g := []rune(guess)
	for p, r := range g {
		if _, fixed := k.Confirmed[p]; fixed {
			continue
		}
		if k.Misplaced[p][r] {
			return &HardModeError{Rule: MustMoveKnownLetter, Position: p, Letter: r}
		}
	}
	return nil
}
