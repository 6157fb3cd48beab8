package stats

import (
	"testing"

	"github.com/robalobadob/wordle-unlimited/internal/game"
)

type anyWord struct{}

func (anyWord) IsAllowed(string) bool { return true }

func TestRecord(t *testing.T) {
	t.Parallel()

	s := New()
	s.Record(true, 3)
	s.Record(true, 4)
	s.Record(false, 6)
	s.Record(true, 3)

	if s.Played != 4 || s.Wins != 3 {
		t.Fatalf("played=%d wins=%d, want 4 3", s.Played, s.Wins)
	}
	if s.CurrentStreak != 1 || s.MaxStreak != 2 {
		t.Fatalf("streak=%d max=%d, want 1 2", s.CurrentStreak, s.MaxStreak)
	}
	if got := s.WinRate(); got != 75 {
		t.Fatalf("WinRate() = %v, want 75", got)
	}
	b := s.Buckets()
	if len(b) != 2 || b[0] != (Bucket{3, 2}) || b[1] != (Bucket{4, 1}) {
		t.Fatalf("Buckets() = %v", b)
	}
}

func TestRecordSessionOnce(t *testing.T) {
	t.Parallel()

	s := New()
	sess := game.NewWithSecret("casa", anyWord{}, game.Options{})
	if s.RecordSession(sess) {
		t.Fatal("recorded a game in progress")
	}
	if _, err := sess.Submit("casa"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !s.RecordSession(sess) {
		t.Fatal("finished game not recorded")
	}
	if s.RecordSession(sess) {
		t.Fatal("game recorded twice")
	}
	if s.Played != 1 || s.Distribution[1] != 1 {
		t.Fatalf("played=%d dist=%v", s.Played, s.Distribution)
	}
}

func TestRecordSessionRemembersOnlyLatest(t *testing.T) {
	t.Parallel()

	s := New()
	for i := 0; i < 50; i++ {
		sess := game.NewWithSecret("casa", anyWord{}, game.Options{})
		if _, err := sess.Submit("casa"); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if !s.RecordSession(sess) || s.RecordSession(sess) {
			t.Fatalf("game %d: want exactly one recording", i)
		}
		if s.lastRecorded != sess.ID() {
			t.Fatalf("lastRecorded = %q, want %q", s.lastRecorded, sess.ID())
		}
	}
	if s.Played != 50 || s.CurrentStreak != 50 {
		t.Fatalf("played=%d streak=%d, want 50/50", s.Played, s.CurrentStreak)
	}
}

func TestWinRateEmpty(t *testing.T) {
	t.Parallel()

	if got := New().WinRate(); got != 0 {
		t.Fatalf("WinRate() = %v, want 0", got)
	}
}
