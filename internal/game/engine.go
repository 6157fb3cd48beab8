// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games: daily (deterministic per Rome date) or free play (injected randomness).
//   - Validate and apply guesses (game over, length, allowed list, hard mode).
//   - Score guesses and fold them into accumulated Knowledge.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary is injected; the engine holds no package-level state.
//   - A rejected guess never mutates the session.
package game

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-unlimited/internal/daily"
)

// Lexicon answers membership questions for guesses.
type Lexicon interface {
	IsAllowed(word string) bool
}

// Dictionary is what NewGame needs to pick a secret and validate guesses.
type Dictionary interface {
	Lexicon
	Answers() []string
	AnswersOfLength(n int) []string
}

// Rand is the injected random source for free play.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Options configures NewGame.
type Options struct {
	Mode           Mode
	MaxAttempts    int  // <= 0 means DefaultMaxAttempts
	HardMode       bool // enforce confirmed letters and known counts
	StrictHardMode bool // additionally forbid repeating a misplaced letter (implies HardMode)

	// Daily mode.
	Date     daily.Date     // Europe/Rome calendar date supplied by the caller
	Selector daily.Selector // nil means daily.Ordinal{}

	// Free play.
	Rand   Rand // nil means a crypto-seeded generator
	Length int  // > 0 restricts free play to answers of that many runes
}

// Session holds the state of a single game.
type Session struct {
	id          string
	mode        Mode
	secret      string
	length      int
	index       int // position of secret in the answer list it was drawn from
	date        daily.Date
	maxAttempts int
	hard        bool
	strict      bool
	lexicon     Lexicon
	history     []Turn
	knowledge   *Knowledge
	status      Status
}

// NewGame selects a secret and returns a fresh session.
// It fails with ErrEmptyAnswerList when there is nothing to pick from.
func NewGame(dict Dictionary, opts Options) (*Session, error) {
	answers := dict.Answers()
	if opts.Mode == ModeFree && opts.Length > 0 {
		answers = dict.AnswersOfLength(opts.Length)
	}
	if len(answers) == 0 {
		return nil, ErrEmptyAnswerList
	}

	var idx int
	switch opts.Mode {
	case ModeFree:
		rng := opts.Rand
		if rng == nil {
			rng = newSeededRand()
		}
		idx = rng.IntN(len(answers))
	default:
		opts.Mode = ModeDaily
		sel := opts.Selector
		if sel == nil {
			sel = daily.Ordinal{}
		}
		var err error
		if idx, err = sel.Index(opts.Date, len(answers)); err != nil {
			return nil, err
		}
	}

	return newSession(answers[idx], dict, opts, idx), nil
}

// NewWithSecret starts a session on a fixed secret (tests, replays).
func NewWithSecret(secret string, lex Lexicon, opts Options) *Session {
	if opts.Mode == "" {
		opts.Mode = ModeFree
	}
	return newSession(secret, lex, opts, -1)
}

func newSession(secret string, lex Lexicon, opts Options, idx int) *Session {
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	return &Session{
		id:          uuid.NewString(),
		mode:        opts.Mode,
		secret:      secret,
		length:      len([]rune(secret)),
		index:       idx,
		date:        opts.Date,
		maxAttempts: attempts,
		hard:        opts.HardMode || opts.StrictHardMode,
		strict:      opts.StrictHardMode,
		lexicon:     lex,
		history:     []Turn{},
		knowledge:   NewKnowledge(),
		status:      InProgress,
	}
}

// Submit validates and scores a guess, mutating the session on success.
//
// Validation order:
//   - Session must be in progress (ErrGameOver).
//   - Guess must not start or end with whitespace (ErrSurroundingSpace).
//   - Guess must be valid UTF-8 (ErrInvalidText).
//   - Guess must have as many runes as the secret (ErrLengthMismatch).
//   - Guess must be in the allowed list (ErrNotInDictionary).
//   - In hard mode, guess must respect accumulated knowledge (ErrHardMode).
//
// State transitions:
//   - All tiles Correct → Won.
//   - Else if history reaches max attempts → Lost.
func (s *Session) Submit(guess string) (Result, error) {
	if s.status.Terminal() {
		return nil, ErrGameOver
	}
	if strings.TrimSpace(guess) != guess {
		return nil, ErrSurroundingSpace
	}
	if !utf8.ValidString(guess) {
		return nil, ErrInvalidText
	}
	if n := len([]rune(guess)); n != s.length {
		return nil, &LengthError{Want: s.length, Got: n}
	}
	if s.lexicon == nil || !s.lexicon.IsAllowed(guess) {
		return nil, ErrNotInDictionary
	}
	if s.hard {
		validate := ValidateHardMode
		if s.strict {
			validate = ValidateStrict
		}
		if err := validate(guess, s.knowledge); err != nil {
			return nil, err
		}
	}

	res, err := Score(s.secret, guess)
	if err != nil {
		return nil, err
	}
	s.history = append(s.history, Turn{Guess: guess, Result: res})
	s.knowledge.Update(guess, res)

	if res.Solved() {
		s.status = Won
	} else if len(s.history) >= s.maxAttempts {
		s.status = Lost
	}
	return append(Result(nil), res...), nil
}

// ID is a random identifier, unique per session.
func (s *Session) ID() string { return s.id }

// Mode reports daily or free play.
func (s *Session) Mode() Mode { return s.mode }

// Status reports whether the game is in progress, won or lost.
func (s *Session) Status() Status { return s.status }

// Length is the number of runes in the secret.
func (s *Session) Length() int { return s.length }

// MaxAttempts is the number of guesses allowed before the game is lost.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Attempts is the number of accepted guesses so far.
func (s *Session) Attempts() int { return len(s.history) }

// Remaining is MaxAttempts minus Attempts.
func (s *Session) Remaining() int { return s.maxAttempts - len(s.history) }

// HardMode reports whether hints must be reused (true in strict mode too).
func (s *Session) HardMode() bool { return s.hard }

// StrictHardMode reports whether misplaced letters must also move.
func (s *Session) StrictHardMode() bool { return s.strict }

// Date is the daily date the secret was chosen for; zero for free play.
func (s *Session) Date() daily.Date { return s.date }

// Secret returns the answer. Renderers should only reveal it once the game is over.
func (s *Session) Secret() string { return s.secret }

// AnswerIndex is the secret's index in the list it was drawn from, -1 for fixed secrets.
func (s *Session) AnswerIndex() int { return s.index }

// History returns a copy of the accepted turns in submission order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	for i, t := range s.history {
		out[i] = Turn{Guess: t.Guess, Result: append(Result(nil), t.Result...)}
	}
	return out
}

// Knowledge returns a copy of the accumulated knowledge.
func (s *Session) Knowledge() *Knowledge { return s.knowledge.Clone() }

// Letters returns the best verdict per guessed letter, for keyboard colouring.
func (s *Session) Letters() map[rune]Verdict { return s.knowledge.Clone().Letters }

// newSeededRand returns a PCG generator seeded from crypto/rand.
func newSeededRand() Rand {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
