package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// v parses a compact verdict string: C=correct, P=present, A=absent.
func v(s string) Result {
	out := make(Result, 0, len(s))
	for _, c := range s {
		switch c {
		case 'C':
			out = append(out, Correct)
		case 'P':
			out = append(out, Present)
		default:
			out = append(out, Absent)
		}
	}
	return out
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		guess  string
		want   Result
	}{
		{"all correct", "casa", "casa", v("CCCC")},
		{"mixed lengths", "gestire", "gessato", v("CCCAAPA")},
		{"level elver", "LEVEL", "ELVER", v("PPCCA")},
		{"abba baba", "ABBA", "BABA", v("PPCC")},
		{"accented duplicates", "PAPÀ", "APPÀ", v("PPCC")},
		{"repeated letters", "BALLOON", "LLANOBO", v("PPPPCPP")},
		{"single copy guessed twice", "CRANE", "EERIE", v("AAPAC")},
		{"nothing in common", "abc", "xyz", v("AAA")},
		{"case is significant", "Casa", "casa", v("ACCC")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Score(tt.secret, tt.guess)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Score(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := Score("ABC", "AB")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Score() error = %v, want ErrLengthMismatch", err)
	}
	var le *LengthError
	if !errors.As(err, &le) || le.Want != 3 || le.Got != 2 {
		t.Fatalf("LengthError = %+v, want Want=3 Got=2", le)
	}
}

func TestScoreRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		secret, guess string
	}{
		{"latin-1 guess", "città", "citt\xe8"},
		{"latin-1 secret", "citt\xe0", "città"},
		{"distinct bad bytes", "\xffa", "\xfea"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Score(tt.secret, tt.guess)
			if !errors.Is(err, ErrInvalidText) || res != nil {
				t.Fatalf("Score(%q, %q) = %v, %v, want ErrInvalidText", tt.secret, tt.guess, res, err)
			}
		})
	}
}

func TestScoreNeverOverCredits(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []rune("aabcè")
	word := func(n int) string {
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return string(r)
	}

	for i := 0; i < 2000; i++ {
		n := 1 + rng.IntN(8)
		secret, guess := word(n), word(n)
		res, err := Score(secret, guess)
		if err != nil {
			t.Fatalf("Score(%q, %q) error = %v", secret, guess, err)
		}
		if len(res) != n {
			t.Fatalf("len(Score(%q, %q)) = %d, want %d", secret, guess, len(res), n)
		}

		inSecret := map[rune]int{}
		for _, r := range secret {
			inSecret[r]++
		}
		credited := map[rune]int{}
		for j, r := range []rune(guess) {
			if res[j] == Correct || res[j] == Present {
				credited[r]++
			}
		}
		for r, c := range credited {
			if c > inSecret[r] {
				t.Fatalf("Score(%q, %q) credits %q %d times, secret has %d", secret, guess, r, c, inSecret[r])
			}
		}
	}
}
