// internal/daily/daily.go
//
// Deterministic daily word selection.
//
// The daily word changes at midnight Europe/Rome. Callers own the clock: they
// turn an instant into a Date with DateOf and hand the Date to a Selector.
//
// Schemes:
//   - Ordinal (default): days since Epoch modulo the answer count.
//   - Salted:  HMAC-SHA256(salt, "YYYY-MM-DD") modulo the answer count.
//
// Both depend on the answer count, so resizing the list reshuffles every
// past and future daily word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // Europe/Rome must resolve on hosts without zoneinfo
)

// ErrNoAnswers is returned when there is nothing to select from.
var ErrNoAnswers = errors.New("daily: answer list is empty")

// Rome is the timezone whose midnight rolls the daily word over.
var Rome = mustLoad("Europe/Rome")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("daily: load %s: %v", name, err))
	}
	return loc
}

// Date is a civil calendar date with no clock or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Epoch is day zero of the ordinal scheme.
var Epoch = Date{Year: 2021, Month: time.June, Day: 19}

// DateOf returns the Europe/Rome calendar date of the instant t.
func DateOf(t time.Time) Date {
	y, m, d := t.In(Rome).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("daily: invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// String returns YYYY-MM-DD.
func (d Date) String() string {
	return d.midnight().Format(time.DateOnly)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	y, m, day := d.midnight().AddDate(0, 0, n).Date()
	return Date{Year: y, Month: m, Day: day}
}

// DaysSince returns the signed number of calendar days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.midnight().Sub(o.midnight()).Hours() / 24)
}

// midnight anchors the date in UTC, where every day is exactly 24h long.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Selector maps a date to an index into an answer list of the given size.
type Selector interface {
	Index(d Date, answerCount int) (int, error)
}

// Ordinal selects answers in list order, one per day, wrapping around.
type Ordinal struct {
	// Epoch is day zero; the zero value means the package Epoch.
	Epoch Date
}

// Index returns (d - epoch) mod answerCount, always in [0, answerCount).
func (o Ordinal) Index(d Date, answerCount int) (int, error) {
	if answerCount <= 0 {
		return 0, ErrNoAnswers
	}
	epoch := o.Epoch
	if epoch.IsZero() {
		epoch = Epoch
	}
	n := d.DaysSince(epoch) % answerCount
	if n < 0 {
		n += answerCount
	}
	return n, nil
}

// Salted scatters days across the list with HMAC(salt, YYYY-MM-DD).
type Salted struct {
	Salt string
}

// Index takes the first 8 bytes of the MAC as a big-endian uint64 and reduces it.
func (s Salted) Index(d Date, answerCount int) (int, error) {
	if answerCount <= 0 {
		return 0, ErrNoAnswers
	}
	h := hmac.New(sha256.New, []byte(s.Salt))
	h.Write([]byte(d.String()))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answerCount)), nil
}

// NewSelector builds a selector from a config scheme name.
func NewSelector(scheme, salt string) (Selector, error) {
	switch scheme {
	case "", "ordinal":
		return Ordinal{}, nil
	case "salted", "hmac":
		return Salted{Salt: salt}, nil
	default:
		return nil, fmt.Errorf("daily: unknown scheme %q", scheme)
	}
}
