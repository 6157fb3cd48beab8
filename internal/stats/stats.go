// internal/stats/stats.go
//
// Package stats keeps a player's running totals across games in one process:
// games played, wins, current and best streak, and the guess distribution.
package stats

import (
	"sort"

	"github.com/robalobadob/wordle-unlimited/internal/game"
)

// Stats is not safe for concurrent use; owners serialize access.
type Stats struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	Distribution  map[int]int // attempts used -> wins

	lastRecorded string // id of the last session counted
}

// New returns empty statistics.
func New() *Stats {
	return &Stats{Distribution: map[int]int{}}
}

// Record counts a finished game: played++, and on a win wins++, streak++ and a
// distribution bump; a loss resets the current streak.
func (s *Stats) Record(won bool, attempts int) {
	s.Played++
	if won {
		s.Wins++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		s.Distribution[attempts]++
		return
	}
	s.CurrentStreak = 0
}

// RecordSession records sess once it is over. Calling it again for the same
// session, or for a session still in progress, is a no-op. It reports
// whether anything was recorded. Only the latest session is remembered:
// owners record each game before replacing it with the next one.
func (s *Stats) RecordSession(sess *game.Session) bool {
	if sess == nil || !sess.Status().Terminal() || sess.ID() == s.lastRecorded {
		return false
	}
	s.lastRecorded = sess.ID()
	s.Record(sess.Status() == game.Won, sess.Attempts())
	return true
}

// WinRate returns wins/played as a percentage, 0 when nothing was played.
func (s *Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played) * 100
}

// Bucket is one row of the guess distribution.
type Bucket struct {
	Attempts int
	Count    int
}

// Buckets returns the distribution sorted by attempts.
func (s *Stats) Buckets() []Bucket {
	out := make([]Bucket, 0, len(s.Distribution))
	for a, c := range s.Distribution {
		out = append(out, Bucket{Attempts: a, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Attempts < out[j].Attempts })
	return out
}
