// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Parse answer and allowed guess lists from line-delimited text.
//   - Load them from files (creating stub files when missing) or fall back to embedded defaults.
//   - Maintain sets for quick lookups and group answers by length.
//   - Report warnings the UI should surface (trimmed lines, skipped non UTF-8
//     lines, empty lists, stubs created).
//
// Word Lists:
//   - "answers": candidate secrets, any length, any script.
//   - "allowed": valid guesses; answers are merged in unless the allowed list is empty.
//
// Words are compared exactly as written: no case or accent folding.
// A Dictionary is immutable once built and safe for concurrent readers.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle-unlimited/assets"
)

// Dictionary is the read-only word store shared by every session.
type Dictionary struct {
	answers    []string
	allowed    map[string]struct{} // answers ∪ guesses (empty when no guesses were supplied)
	byLength   map[int][]string
	alphabet   []rune
	warnings   []string
}

// New builds a dictionary from already-parsed lists. Duplicates are dropped,
// first occurrence wins, so the answer order (and the daily sequence) is stable.
func New(answers, allowed []string) *Dictionary {
	var warnings []string
	answers, warnings = validWords(answers, "answers", warnings)
	allowed, warnings = validWords(allowed, "allowed", warnings)

	d := &Dictionary{
		answers: answers,
		allowed: make(map[string]struct{}),
		byLength: lo.GroupBy(answers, func(w string) int {
			return len([]rune(w))
		}),
		warnings: warnings,
	}

	// Ensure all answers are also accepted as guesses, but an empty allowed
	// list stays empty: no guess is valid until it is populated.
	if len(allowed) > 0 {
		d.allowed = toSet(allowed)
		for _, w := range answers {
			d.allowed[w] = struct{}{}
		}
	}

	d.alphabet = inferAlphabet(answers, allowed)

	if len(answers) == 0 {
		d.warnings = append(d.warnings, "The answers list is empty. Add at least one word to start a game.")
	}
	if len(allowed) == 0 {
		d.warnings = append(d.warnings, "The allowed list is empty. No guess will be accepted until it is populated.")
	}
	return d
}

// Read parses both lists from readers.
func Read(answers, allowed io.Reader) (*Dictionary, error) {
	ans, ansWarn, err := readLines(answers, "answers")
	if err != nil {
		return nil, err
	}
	all, allWarn, err := readLines(allowed, "allowed")
	if err != nil {
		return nil, err
	}
	d := New(ans, all)
	d.warnings = append(append(ansWarn, allWarn...), d.warnings...)
	return d, nil
}

// Stub contents written by Load when a file is missing.
var (
	StubAnswers = []string{"casa", "fiume", "programmazione"}
	StubAllowed = []string{"casa", "fiume", "programmazione", "gioco"}
)

// Load reads both files. With createStubs, missing files are created with
// the stub lists and a warning is recorded; otherwise a missing file is an error.
func Load(answersPath, allowedPath string, createStubs bool) (*Dictionary, error) {
	var warnings []string
	if createStubs {
		created, err := ensureStub(answersPath, StubAnswers)
		if err != nil {
			return nil, err
		}
		createdAllowed, err := ensureStub(allowedPath, StubAllowed)
		if err != nil {
			return nil, err
		}
		if created || createdAllowed {
			warnings = append(warnings, fmt.Sprintf(
				"Sample word lists were created in %s. Replace them with your own dictionaries.",
				filepath.Dir(answersPath)))
		}
	}

	af, err := os.Open(answersPath)
	if err != nil {
		return nil, fmt.Errorf("words: open answers: %w", err)
	}
	defer af.Close()
	lf, err := os.Open(allowedPath)
	if err != nil {
		return nil, fmt.Errorf("words: open allowed: %w", err)
	}
	defer lf.Close()

	d, err := Read(af, lf)
	if err != nil {
		return nil, err
	}
	d.warnings = append(warnings, d.warnings...)
	return d, nil
}

// ensureStub writes sample words to path if it does not exist yet.
func ensureStub(path string, sample []string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("words: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("words: mkdir %s: %w", filepath.Dir(path), err)
	}
	content := strings.Join(sample, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("words: write stub %s: %w", path, err)
	}
	return true, nil
}

// validWords drops empty strings, duplicates and words that are not valid
// UTF-8. Invalid bytes would all decode to U+FFFD and score as equal letters.
func validWords(list []string, name string, warnings []string) ([]string, []string) {
	list = lo.Uniq(lo.Compact(list))
	valid := lo.Filter(list, func(w string, _ int) bool { return utf8.ValidString(w) })
	if n := len(list) - len(valid); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d word(s) in %s were not valid UTF-8 and were skipped.", n, name))
	}
	return valid, warnings
}

// readLines loads one word per line, trimming surrounding space and skipping
// blank lines and # comments. Trimmed lines produce a warning; lines that are
// not valid UTF-8 (a Latin-1 file, say) are skipped with a warning.
func readLines(r io.Reader, name string) ([]string, []string, error) {
	var out, warnings []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		w := strings.TrimSpace(raw)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !utf8.ValidString(w) {
			warnings = append(warnings, fmt.Sprintf("Line %d in %s is not valid UTF-8 and was skipped.", line, name))
			continue
		}
		if w != raw {
			warnings = append(warnings, fmt.Sprintf("Line %d in %s had leading/trailing spaces and was trimmed.", line, name))
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("words: read %s: %w", name, err)
	}
	return out, warnings, nil
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// inferAlphabet collects every non-space rune used by either list, sorted.
func inferAlphabet(lists ...[]string) []rune {
	var runes []rune
	for _, list := range lists {
		for _, w := range list {
			for _, r := range w {
				if strings.TrimSpace(string(r)) != "" {
					runes = append(runes, r)
				}
			}
		}
	}
	runes = lo.Uniq(runes)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Answers returns the ordered answer list. Callers must not modify it.
func (d *Dictionary) Answers() []string { return d.answers }

// AnswersOfLength returns answers with exactly n runes.
func (d *Dictionary) AnswersOfLength(n int) []string { return d.byLength[n] }

// Lengths returns the distinct answer lengths, ascending.
func (d *Dictionary) Lengths() []int {
	ls := lo.Keys(d.byLength)
	sort.Ints(ls)
	return ls
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowed[w]
	return ok
}

// Alphabet returns every rune used by the lists, sorted.
func (d *Dictionary) Alphabet() []rune { return append([]rune(nil), d.alphabet...) }

// Warnings returns messages the UI should display.
func (d *Dictionary) Warnings() []string { return append([]string(nil), d.warnings...) }

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowed)
}

// Embedded loads the default lists compiled into the binary.
func Embedded() (*Dictionary, error) {
	ans, err := assets.Answers()
	if err != nil {
		return nil, fmt.Errorf("words: embedded answers: %w", err)
	}
	defer ans.Close()
	all, err := assets.Allowed()
	if err != nil {
		return nil, fmt.Errorf("words: embedded allowed: %w", err)
	}
	defer all.Close()
	return Read(ans, all)
}

// FromConfig picks the source the way the server always has:
//  1. both files set: load answers and allowed from them;
//  2. only the allowed file set: use it for both lists;
//  3. neither set: embedded defaults.
func FromConfig(answersPath, allowedPath string, createStubs bool) (*Dictionary, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		return Load(answersPath, allowedPath, createStubs)
	case answersPath == "" && allowedPath != "":
		return Load(allowedPath, allowedPath, createStubs)
	case answersPath != "" && allowedPath == "":
		return nil, errors.New("words: answers file set without an allowed file")
	default:
		return Embedded()
	}
}
