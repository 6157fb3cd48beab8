package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordle-unlimited/internal/daily"
	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/store"
	"github.com/robalobadob/wordle-unlimited/internal/words"
)

// client replays the anonymous cookie across requests against one server.
type client struct {
	t      *testing.T
	srv    *Server
	cookie *http.Cookie
}

func newClient(t *testing.T, srv *Server) *client {
	t.Helper()
	return &client{t: t, srv: srv}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == anonCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := c.do(req)
	if rec.Code != http.StatusSeeOther {
		c.t.Fatalf("POST %s status = %d, want 303", path, rec.Code)
	}
	return rec
}

func (c *client) guess(word string) {
	c.post("/guess", url.Values{"guess": {word}})
}

func (c *client) player() *store.Player {
	c.t.Helper()
	if c.cookie == nil {
		c.t.Fatal("no session cookie yet")
	}
	p, err := c.srv.store.Get(context.Background(), c.cookie.Value)
	if err != nil {
		c.t.Fatalf("store.Get() error = %v", err)
	}
	return p
}

func body(rec *httptest.ResponseRecorder) string {
	b, _ := io.ReadAll(rec.Body)
	return string(b)
}

// clock is a settable time source.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestServer(t *testing.T, answers ...string) (*Server, *clock) {
	t.Helper()
	if len(answers) == 0 {
		answers = []string{"casa"}
	}
	dict := words.New(answers, []string{"casa", "cane", "naso", "sale", "vela"})
	clk := &clock{now: time.Date(2024, time.March, 10, 12, 0, 0, 0, daily.Rome)}
	return New(dict, store.NewMemoryStore(), Options{Now: clk.Now}), clk
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	rec := newClient(t, srv).get("/health")
	if rec.Code != http.StatusOK || strings.TrimSpace(body(rec)) != `{"ok":true}` {
		t.Fatalf("GET /health = %d %q", rec.Code, body(rec))
	}
}

func TestDebugWords(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	rec := newClient(t, srv).get("/debug/words")
	var got struct {
		Answers int   `json:"answers"`
		Allowed int   `json:"allowed"`
		Lengths []int `json:"lengths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Answers != 1 || got.Allowed != 5 || len(got.Lengths) != 1 || got.Lengths[0] != 4 {
		t.Fatalf("GET /debug/words = %+v", got)
	}
}

func TestIndexAssignsPlayerAndRendersBoard(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := newClient(t, srv)
	rec := c.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	if c.cookie == nil {
		t.Fatal("expected anonymous cookie to be set")
	}
	html := body(rec)
	for _, want := range []string{"Wordle senza limiti", "Daily word 2024-03-10", "4 letters", `action="/guess"`, ".correct { background: #6aaa64;"} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if got := strings.Count(html, `class="tile empty"`); got != 6*4 {
		t.Errorf("empty tiles = %d, want 24", got)
	}

	// A second visit reuses the same player.
	first := c.player()
	c.get("/")
	if c.player() != first || srv.store.Len() != 1 {
		t.Fatal("expected the same player on the second visit")
	}
}

func TestGuessFlowAndShare(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := newClient(t, srv)
	c.get("/")

	if rec := c.get("/share"); rec.Code != http.StatusConflict {
		t.Fatalf("GET /share before finishing = %d, want 409", rec.Code)
	}

	c.guess("cane")
	html := body(c.get("/"))
	if !strings.Contains(html, `<div class="tile correct">C</div>`) {
		t.Fatal("expected a correct C tile after the first guess")
	}

	c.guess("casa")
	p := c.player()
	if p.Session.Status() != game.Won {
		t.Fatalf("status = %v, want won", p.Session.Status())
	}
	if p.Stats.Played != 1 || p.Stats.Wins != 1 {
		t.Fatalf("stats = %+v", p.Stats)
	}

	rec := c.get("/share")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("GET /share = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	want := "Wordle senza limiti 2024-03-10 — 2/6\n🟩🟩⬜⬜\n🟩🟩🟩🟩"
	if got := body(rec); got != want {
		t.Fatalf("share =\n%s\nwant\n%s", got, want)
	}

	// Guessing after the end is rejected and not counted twice.
	c.guess("casa")
	if p.Stats.Played != 1 {
		t.Fatalf("played = %d after extra guess, want 1", p.Stats.Played)
	}
	if !strings.Contains(body(c.get("/")), "The game is over. Start a new one.") {
		t.Fatal("expected game over toast")
	}
}

func TestRejectedGuessShowsToast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		guess string
		want  string
	}{
		{"zzzz", "Not in the word list."},
		{"ca", "The word must be exactly 4 characters long."},
		{" casa", "Remove the spaces before or after the word."},
		{"casa ", "Remove the spaces before or after the word."},
		{"citt\xe0", "The word contains bytes that are not valid text."},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.guess), func(t *testing.T) {
			t.Parallel()
			srv, _ := newTestServer(t)
			c := newClient(t, srv)
			c.get("/")
			c.guess(tt.guess)
			if got := c.player().Session.Attempts(); got != 0 {
				t.Fatalf("attempts = %d, want 0", got)
			}
			html := body(c.get("/"))
			if !strings.Contains(html, tt.want) {
				t.Fatalf("page missing toast %q", tt.want)
			}
			// Toasts are shown once.
			if strings.Contains(body(c.get("/")), tt.want) {
				t.Fatal("toast shown twice")
			}
		})
	}
}

func TestDailyRollover(t *testing.T) {
	t.Parallel()

	srv, clk := newTestServer(t, "casa", "naso")
	c := newClient(t, srv)
	c.get("/")
	before := c.player().Session
	if before.Date().String() != "2024-03-10" {
		t.Fatalf("date = %s", before.Date())
	}

	// Same Rome day, later hour: no rollover.
	clk.now = time.Date(2024, time.March, 10, 23, 30, 0, 0, daily.Rome)
	c.get("/")
	if c.player().Session != before {
		t.Fatal("session replaced within the same day")
	}

	clk.now = time.Date(2024, time.March, 11, 0, 5, 0, 0, daily.Rome)
	html := body(c.get("/"))
	after := c.player().Session
	if after == before || after.Date().String() != "2024-03-11" {
		t.Fatalf("expected a new session for 2024-03-11, got %s", after.Date())
	}
	if after.Secret() == before.Secret() {
		t.Fatal("consecutive days picked the same word from a two-word list")
	}
	if !strings.Contains(html, "A new daily word is available.") {
		t.Fatal("expected rollover toast")
	}
}

func TestNewDailyGameRestartsSameWord(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, "casa", "naso", "vela")
	c := newClient(t, srv)
	c.get("/")
	first := c.player().Session
	c.guess("sale")

	c.post("/new", nil)
	again := c.player().Session
	if again == first || again.Attempts() != 0 || again.Secret() != first.Secret() {
		t.Fatalf("new daily game: secret %q vs %q, attempts %d", again.Secret(), first.Secret(), again.Attempts())
	}
}

func TestSettings(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := newClient(t, srv)
	c.get("/")
	first := c.player().Session

	c.post("/settings", url.Values{
		"mode":     {"free"},
		"attempts": {"99"},
		"hard":     {"on"},
	})
	p := c.player()
	if p.Settings.Mode != game.ModeFree || p.Settings.MaxAttempts != 10 || !p.Settings.HardMode {
		t.Fatalf("settings = %+v", p.Settings)
	}
	if p.Session == first || p.Session.MaxAttempts() != 10 || !p.Session.HardMode() {
		t.Fatal("expected a fresh session built from the new settings")
	}

	// Colour-blind alone keeps the current game.
	sess := p.Session
	c.post("/settings", url.Values{
		"mode":       {"free"},
		"attempts":   {"10"},
		"hard":       {"on"},
		"colorblind": {"on"},
	})
	if p.Session != sess || !p.Settings.ColorBlind {
		t.Fatal("palette change should not restart the game")
	}
	if html := body(c.get("/")); !strings.Contains(html, ".correct { background: #f5793a;") {
		t.Fatal("expected colour-blind palette in page")
	}
}

func TestEmptyAnswerListRendersMessage(t *testing.T) {
	t.Parallel()

	srv := New(words.New(nil, []string{"casa"}), store.NewMemoryStore(), Options{})
	c := newClient(t, srv)
	rec := c.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	if !strings.Contains(body(rec), game.Describe(game.ErrEmptyAnswerList)) {
		t.Fatal("expected empty answer list message")
	}
}
