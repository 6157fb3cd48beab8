// internal/store/memory.go
//
// In-memory player store for the web UI.
// Each browser (identified by its anonymous cookie) owns one Player: the
// current game session, its settings, statistics and pending toasts.
//
// Characteristics:
//   - Players are kept in a map guarded by an RWMutex.
//   - Each Player carries its own mutex; handlers lock it while they read or
//     mutate that player's game so two tabs cannot interleave submissions.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/stats"
)

// ErrNotFound is returned by Get for an unknown player id.
var ErrNotFound = errors.New("store: player not found")

// Settings are the per-player options chosen in the settings form.
type Settings struct {
	Mode        game.Mode
	MaxAttempts int
	HardMode    bool
	Strict      bool
	ColorBlind  bool
}

// Player is one browser's state. Lock Mu before touching any field.
type Player struct {
	Mu       sync.Mutex
	ID       string
	Settings Settings
	Session  *game.Session
	Stats    *stats.Stats

	toasts []string
}

// Toast queues a message shown on the next page render.
func (p *Player) Toast(msg string) { p.toasts = append(p.toasts, msg) }

// DrainToasts returns queued messages and clears the queue.
func (p *Player) DrainToasts() []string {
	out := p.toasts
	p.toasts = nil
	return out
}

// Store defines the persistence interface for players.
type Store interface {
	// Save persists or replaces a player.
	Save(ctx context.Context, p *Player) error

	// Get retrieves a player by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Player, error)

	// GetOrCreate returns the stored player or saves a fresh one built by init.
	GetOrCreate(ctx context.Context, id string, init func() *Player) (*Player, error)

	// Len reports the number of stored players.
	Len() int
}

type memory struct {
	mu      sync.RWMutex
	players map[string]*Player
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{players: make(map[string]*Player)}
}

func (m *memory) Save(ctx context.Context, p *Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.ID == "" {
		return errors.New("store: player id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.ID] = p
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.players[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (m *memory) GetOrCreate(ctx context.Context, id string, init func() *Player) (*Player, error) {
	if p, err := m.Get(ctx, id); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have created it between the two locks.
	if p, ok := m.players[id]; ok {
		return p, nil
	}
	p := init()
	p.ID = id
	m.players[id] = p
	return p, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}
