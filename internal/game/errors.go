// internal/game/errors.go
//
// Rejection reasons for guesses and new games, plus the player-facing
// wording for each of them.

package game

import (
	"errors"
	"fmt"
)

// Rejection reasons returned by Score, ValidateHardMode and Session.Submit.
// All of them leave the session untouched and are safe to show to the player.
var (
	ErrLengthMismatch   = errors.New("guess length does not match the secret")
	ErrNotInDictionary  = errors.New("word not in dictionary")
	ErrGameOver         = errors.New("game over")
	ErrHardMode         = errors.New("hard mode violation")
	ErrInvalidText      = errors.New("word is not valid UTF-8")
	ErrSurroundingSpace = errors.New("guess has leading or trailing spaces")

	// ErrEmptyAnswerList is a configuration error: no game can start.
	ErrEmptyAnswerList = errors.New("answer list is empty")
)

// LengthError carries the expected and actual rune counts.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("guess must have exactly %d characters, got %d", e.Want, e.Got)
}

func (e *LengthError) Is(target error) bool { return target == ErrLengthMismatch }

// HardModeRule identifies which hard-mode constraint a guess broke.
type HardModeRule int

const (
	MustUseConfirmedLetter HardModeRule = iota + 1
	MustIncludeKnownLetter
	MustMoveKnownLetter
)

func (r HardModeRule) String() string {
	switch r {
	case MustUseConfirmedLetter:
		return "must_use_confirmed_letter"
	case MustIncludeKnownLetter:
		return "must_include_known_letter"
	case MustMoveKnownLetter:
		return "must_move_known_letter"
	default:
		return "unknown"
	}
}

// HardModeError describes a rejected hard-mode guess.
// Position is zero-based; Count is the required minimum for MustIncludeKnownLetter.
type HardModeError struct {
	Rule     HardModeRule
	Position int
	Letter   rune
	Count    int
}

func (e *HardModeError) Error() string {
	switch e.Rule {
	case MustUseConfirmedLetter:
		return fmt.Sprintf("hard mode: position %d must be %q", e.Position+1, e.Letter)
	case MustIncludeKnownLetter:
		return fmt.Sprintf("hard mode: guess must contain %q at least %d time(s)", e.Letter, e.Count)
	case MustMoveKnownLetter:
		return fmt.Sprintf("hard mode: %q is already known not to be at position %d", e.Letter, e.Position+1)
	default:
		return ErrHardMode.Error()
	}
}

func (e *HardModeError) Is(target error) bool { return target == ErrHardMode }

// Describe turns a rejection into a short player-facing message.
// Unknown errors are returned verbatim.
func Describe(err error) string {
	var le *LengthError
	var he *HardModeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &le):
		return fmt.Sprintf("The word must be exactly %d characters long.", le.Want)
	case errors.Is(err, ErrLengthMismatch):
		return "The word has the wrong length."
	case errors.Is(err, ErrSurroundingSpace):
		return "Remove the spaces before or after the word."
	case errors.Is(err, ErrInvalidText):
		return "The word contains bytes that are not valid text."
	case errors.Is(err, ErrNotInDictionary):
		return "Not in the word list."
	case errors.Is(err, ErrGameOver):
		return "The game is over. Start a new one."
	case errors.As(err, &he):
		switch he.Rule {
		case MustUseConfirmedLetter:
			return fmt.Sprintf("Hard mode: position %d must be %s.", he.Position+1, string(he.Letter))
		case MustIncludeKnownLetter:
			return fmt.Sprintf("Hard mode: use %s at least %d time(s).", string(he.Letter), he.Count)
		case MustMoveKnownLetter:
			return fmt.Sprintf("Hard mode: %s cannot go in position %d again.", string(he.Letter), he.Position+1)
		}
		return "Hard mode violation."
	case errors.Is(err, ErrEmptyAnswerList):
		return "The answer list is empty. Add at least one word to start a game."
	default:
		return err.Error()
	}
}
