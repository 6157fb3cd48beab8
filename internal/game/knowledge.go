// internal/game/knowledge.go
//
// Knowledge accumulated from scored guesses.

package game

// Knowledge accumulates what the player has learned about the secret.
//
// Every field only ever grows stronger:
//   - Letters keeps the best verdict seen per letter (Absent < Present < Correct).
//   - Confirmed maps a position to the letter scored Correct there.
//   - MinCounts is the largest number of Correct+Present tiles a letter earned
//     within a single guess, i.e. how many copies the secret has at least.
//   - Misplaced records, per position, letters scored Present there.
type Knowledge struct {
	Letters   map[rune]Verdict
	Confirmed map[int]rune
	MinCounts map[rune]int
	Misplaced map[int]map[rune]bool
}

// NewKnowledge returns empty knowledge for a fresh game.
func NewKnowledge() *Knowledge {
	return &Knowledge{
		Letters:   make(map[rune]Verdict),
		Confirmed: make(map[int]rune),
		MinCounts: make(map[rune]int),
		Misplaced: make(map[int]map[rune]bool),
	}
}

// Update folds one scored guess into k. Guess and result must have the same
// rune length; extra positions on either side are ignored.
func (k *Knowledge) Update(guess string, r Result) {
	g := []rune(guess)
	n := min(len(g), len(r))

	counts := make(map[rune]int)
	for i := 0; i < n; i++ {
		letter, v := g[i], r[i]
		if v > k.Letters[letter] {
			k.Letters[letter] = v
		}
		switch v {
		case Correct:
			k.Confirmed[i] = letter
			counts[letter]++
		case Present:
			if k.Misplaced[i] == nil {
				k.Misplaced[i] = make(map[rune]bool)
			}
			k.Misplaced[i][letter] = true
			counts[letter]++
		}
	}
	for letter, c := range counts {
		if c > k.MinCounts[letter] {
			k.MinCounts[letter] = c
		}
	}
}

// Verdict returns the best verdict seen for letter, Unknown if never guessed.
func (k *Knowledge) Verdict(letter rune) Verdict { return k.Letters[letter] }

// Clone returns a deep copy so callers cannot mutate session state.
func (k *Knowledge) Clone() *Knowledge {
	c := NewKnowledge()
	for l, v := range k.Letters {
		c.Letters[l] = v
	}
	for p, l := range k.Confirmed {
		c.Confirmed[p] = l
	}
	for l, n := range k.MinCounts {
		c.MinCounts[l] = n
	}
	for p, set := range k.Misplaced {
		m := make(map[rune]bool, len(set))
		for l := range set {
			m[l] = true
		}
		c.Misplaced[p] = m
	}
	return c
}

// DeriveKnowledge rebuilds knowledge from a full history using the same
// update rule the session applies turn by turn.
func DeriveKnowledge(history []Turn) *Knowledge {
	k := NewKnowledge()
	for _, t := range history {
		k.Update(t.Guess, t.Result)
	}
	return k
}
