package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/wordle-unlimited/internal/stats"
)

func TestSaveAndGet(t *testing.T) {
	t.Parallel()

	st := NewMemoryStore()
	ctx := context.Background()

	if _, err := st.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	p := &Player{ID: "p1", Stats: stats.New()}
	if err := st.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := st.Get(ctx, "p1")
	if err != nil || got != p {
		t.Fatalf("Get() = %v, %v", got, err)
	}
	if err := st.Save(ctx, &Player{}); err == nil {
		t.Fatal("expected error for empty id, got nil")
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	if err := st.Save(ctx, &Player{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := st.GetOrCreate(ctx, "x", func() *Player { return &Player{} }); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetOrCreate() error = %v, want context.Canceled", err)
	}
}

func TestGetOrCreateIsSingleton(t *testing.T) {
	t.Parallel()

	st := NewMemoryStore()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		seen    = make(map[*Player]bool)
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := st.GetOrCreate(ctx, "same", func() *Player {
				mu.Lock()
				created++
				mu.Unlock()
				return &Player{Stats: stats.New()}
			})
			if err != nil {
				t.Errorf("GetOrCreate() error = %v", err)
				return
			}
			mu.Lock()
			seen[p] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if created != 1 || len(seen) != 1 || st.Len() != 1 {
		t.Fatalf("created=%d distinct=%d len=%d, want 1/1/1", created, len(seen), st.Len())
	}
}

func TestToasts(t *testing.T) {
	t.Parallel()

	p := &Player{}
	p.Toast("one")
	p.Toast("two")
	if got := p.DrainToasts(); len(got) != 2 || got[0] != "one" {
		t.Fatalf("DrainToasts() = %v", got)
	}
	if got := p.DrainToasts(); len(got) != 0 {
		t.Fatalf("second DrainToasts() = %v, want empty", got)
	}
}
