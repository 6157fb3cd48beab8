// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle web UI.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts, request log).
//   - Player resolution through an anonymous session cookie.
//   - Page endpoints: GET "/", POST /guess, POST /new, POST /settings, GET /share.
//   - Diagnostics: /health, /debug/words.
//
// Notes:
//   - Every form post answers with 303 See Other back to "/" so a reload never
//     resubmits a guess.
//   - Daily games roll over on their own when the Europe/Rome date changes.
//   - Handlers hold the player's mutex for the whole read-modify-render cycle.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-unlimited/internal/config"
	"github.com/robalobadob/wordle-unlimited/internal/daily"
	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/render"
	"github.com/robalobadob/wordle-unlimited/internal/stats"
	"github.com/robalobadob/wordle-unlimited/internal/store"
	"github.com/robalobadob/wordle-unlimited/internal/words"
)

// Options configures a Server. Zero values fall back to sensible defaults.
type Options struct {
	// Defaults are the settings a new player starts with.
	Defaults store.Settings
	// Selector picks the daily word; nil means daily.Ordinal.
	Selector daily.Selector
	// Now is the clock used for daily dates; nil means time.Now.
	Now func() time.Time
	// NewRand returns the random source for a free-play game; nil lets the
	// engine seed its own.
	NewRand func() game.Rand
}

// Server bundles router, player store and dictionary.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict *words.Dictionary, st store.Store, opts Options) *Server {
	if opts.Selector == nil {
		opts.Selector = daily.Ordinal{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Defaults.Mode == "" {
		opts.Defaults.Mode = game.ModeDaily
	}
	if opts.Defaults.MaxAttempts == 0 {
		opts.Defaults.MaxAttempts = game.DefaultMaxAttempts
	}

	s := &Server{r: chi.NewRouter(), store: st, dict: dict, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))

	// --- page ---
	s.r.Get("/", s.handleIndex)
	s.r.Post("/guess", s.handleGuess)
	s.r.Post("/new", s.handleNew)
	s.r.Post("/settings", s.handleSettings)
	s.r.Get("/share", s.handleShare)

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		writeJSON(w, map[string]any{
			"answers":  a,
			"allowed":  g,
			"lengths":  s.dict.Lengths(),
			"players":  s.store.Len(),
			"warnings": s.dict.Warnings(),
		})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// requestLogger writes one debug line per request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ------------------------------ players ------------------------------------

const anonCookieName = "wordle_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// player resolves the caller's Player and locks it. The returned func unlocks.
func (s *Server) player(w http.ResponseWriter, r *http.Request) (*store.Player, func(), error) {
	id := s.ensureAnonID(w, r)
	p, err := s.store.GetOrCreate(r.Context(), id, func() *store.Player {
		log.Info().Str("player", id).Msg("new player")
		return &store.Player{Settings: s.opts.Defaults, Stats: stats.New()}
	})
	if err != nil {
		return nil, nil, err
	}
	p.Mu.Lock()
	return p, p.Mu.Unlock, nil
}

// today is the current Europe/Rome calendar date.
func (s *Server) today() daily.Date { return daily.DateOf(s.opts.Now()) }

// startGame replaces the player's session with a fresh one from its settings.
// p.Mu must be held.
func (s *Server) startGame(p *store.Player) error {
	opts := game.Options{
		Mode:           p.Settings.Mode,
		MaxAttempts:    p.Settings.MaxAttempts,
		HardMode:       p.Settings.HardMode,
		StrictHardMode: p.Settings.Strict,
		Date:           s.today(),
		Selector:       s.opts.Selector,
	}
	if opts.Mode == game.ModeFree && s.opts.NewRand != nil {
		opts.Rand = s.opts.NewRand()
	}
	sess, err := game.NewGame(s.dict, opts)
	if err != nil {
		return err
	}
	p.Session = sess
	log.Info().
		Str("player", p.ID).
		Str("session", sess.ID()).
		Str("mode", string(sess.Mode())).
		Int("length", sess.Length()).
		Int("answer_index", sess.AnswerIndex()).
		Bool("hard", sess.HardMode()).
		Msg("game started")
	return nil
}

// ensureGame makes sure the player has a current session, rolling daily games
// over when the date changed. p.Mu must be held.
func (s *Server) ensureGame(p *store.Player) error {
	if p.Session == nil {
		return s.startGame(p)
	}
	if p.Session.Mode() == game.ModeDaily && p.Session.Date() != s.today() {
		p.Toast("A new daily word is available.")
		return s.startGame(p)
	}
	return nil
}

// ------------------------------ handlers -----------------------------------

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, unlock, err := s.player(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	defer unlock()

	if err := s.ensureGame(p); err != nil {
		if !errors.Is(err, game.ErrEmptyAnswerList) {
			s.fail(w, err)
			return
		}
		p.Toast(game.Describe(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, s.page(p)); err != nil {
		log.Error().Err(err).Msg("render page")
	}
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	p, unlock, err := s.player(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	defer unlock()

	if err := s.ensureGame(p); err != nil {
		p.Toast(game.Describe(err))
		seeOther(w, r)
		return
	}

	guess := r.FormValue("guess")
	if guess == "" {
		seeOther(w, r)
		return
	}

	sess := p.Session
	if _, err := sess.Submit(guess); err != nil {
		log.Debug().Err(err).Str("player", p.ID).Str("session", sess.ID()).Msg("guess rejected")
		p.Toast(game.Describe(err))
		seeOther(w, r)
		return
	}

	if sess.Status().Terminal() && p.Stats.RecordSession(sess) {
		switch sess.Status() {
		case game.Won:
			p.Toast(fmt.Sprintf("Well done! Solved in %d/%d.", sess.Attempts(), sess.MaxAttempts()))
		case game.Lost:
			p.Toast(fmt.Sprintf("Out of attempts. The word was %q.", sess.Secret()))
		}
		log.Info().
			Str("player", p.ID).
			Str("session", sess.ID()).
			Str("mode", string(sess.Mode())).
			Str("status", sess.Status().String()).
			Int("attempts", sess.Attempts()).
			Msg("game finished")
	}
	seeOther(w, r)
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	p, unlock, err := s.player(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	defer unlock()

	if err := s.startGame(p); err != nil {
		p.Toast(game.Describe(err))
	}
	seeOther(w, r)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	p, unlock, err := s.player(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	defer unlock()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	next := parseSettings(r, p.Settings)
	restart := next.Mode != p.Settings.Mode ||
		next.MaxAttempts != p.Settings.MaxAttempts ||
		next.HardMode != p.Settings.HardMode ||
		next.Strict != p.Settings.Strict
	p.Settings = next

	if restart {
		if err := s.startGame(p); err != nil {
			p.Toast(game.Describe(err))
		}
	}
	seeOther(w, r)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	p, unlock, err := s.player(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	defer unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if p.Session == nil || !p.Session.Status().Terminal() {
		http.Error(w, "Finish the game to share it.", http.StatusConflict)
		return
	}
	_, _ = w.Write([]byte(render.SessionShareText(p.Session)))
}

// parseSettings reads the settings form over the current values. Checkboxes
// absent from the form are off.
func parseSettings(r *http.Request, cur store.Settings) store.Settings {
	next := cur
	if m := r.PostFormValue("mode"); m != "" {
		next.Mode = game.ParseMode(m)
	}
	if a := r.PostFormValue("attempts"); a != "" {
		if n, err := strconv.Atoi(a); err == nil {
			next.MaxAttempts = config.ClampAttempts(n)
		}
	}
	next.HardMode = r.PostFormValue("hard") == "on"
	next.Strict = r.PostFormValue("strict") == "on"
	next.ColorBlind = r.PostFormValue("colorblind") == "on"
	return next
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
		return
	}
	log.Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}
