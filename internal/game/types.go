// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Result:  ordered verdicts for one guess.
//   - Turn:    an accepted guess together with its result.
//   - Status:  session lifecycle (playing → won/lost).
//   - Mode:    daily or free play.

package game

// Verdict represents the evaluation result for a single letter in a guess.
// Verdicts are ordered: Absent < Present < Correct. Unknown is the zero value
// and only appears in keyboard summaries for letters never guessed.
type Verdict int

const (
	Unknown Verdict = iota
	Absent
	Present
	Correct
)

// String returns the lowercase name used by renderers (CSS classes, logs).
func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Result is the ordered sequence of verdicts for one guess, one per rune.
type Result []Verdict

// Solved reports whether every position is Correct.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v != Correct {
			return false
		}
	}
	return true
}

// Turn is one accepted guess and its score.
type Turn struct {
	Guess  string
	Result Result
}

// Status is the coarse lifecycle state of a session.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether the session accepts no further guesses.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Mode selects how the secret is chosen.
type Mode string

const (
	ModeDaily Mode = "daily"
	ModeFree  Mode = "free"
)

// ParseMode maps user input to a Mode. Unknown values fall back to daily.
func ParseMode(s string) Mode {
	switch s {
	case "free", "freeplay", "free-play", "free_play":
		return ModeFree
	default:
		return ModeDaily
	}
}

// DefaultMaxAttempts is the classic six rows.
const DefaultMaxAttempts = 6
