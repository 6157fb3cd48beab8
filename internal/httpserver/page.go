// internal/httpserver/page.go
//
// View model and template for the single game page.

package httpserver

import (
	"embed"
	"html/template"
	"math"
	"strings"

	"github.com/robalobadob/wordle-unlimited/internal/config"
	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/render"
	"github.com/robalobadob/wordle-unlimited/internal/stats"
	"github.com/robalobadob/wordle-unlimited/internal/store"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"pct": pct,
}).ParseFS(templatesFS, "templates/page.html"))

// pct is n as a percentage of peak, at least 5 so empty bars stay visible.
func pct(n, peak int) int {
	if peak == 0 {
		return 5
	}
	return max(5, n*100/peak)
}

type tile struct {
	Letter string
	Class  string
}

// verdictStyle is one CSS rule: tiles and keys of a verdict class get its colour.
type verdictStyle struct {
	Class string
	Color string
}

type statsView struct {
	Played        int
	WinRate       int
	CurrentStreak int
	MaxStreak     int
	Buckets       []stats.Bucket
	Peak          int
}

type pageData struct {
	Title    string
	Date     string
	Palette  render.Palette
	Verdicts []verdictStyle
	Settings store.Settings
	Attempts []int

	Ready    bool
	Status   string
	Length   int
	Answer   string
	Rows     [][]tile
	Keyboard [][]render.Key
	Share    string

	Toasts   []string
	Warnings []string
	Stats    statsView
}

// page builds the view model for the current player. p.Mu must be held.
func (s *Server) page(p *store.Player) pageData {
	d := pageData{
		Title:    "Wordle senza limiti",
		Date:     s.today().String(),
		Palette:  render.PaletteFor(p.Settings.ColorBlind),
		Settings: p.Settings,
		Toasts:   p.DrainToasts(),
		Warnings: s.dict.Warnings(),
		Stats:    viewStats(p.Stats),
	}
	for _, v := range []game.Verdict{game.Absent, game.Present, game.Correct} {
		d.Verdicts = append(d.Verdicts, verdictStyle{Class: v.String(), Color: d.Palette.Color(v)})
	}
	for n := config.MinAttempts; n <= config.MaxAttempts; n++ {
		d.Attempts = append(d.Attempts, n)
	}

	sess := p.Session
	if sess == nil {
		return d
	}
	d.Ready = true
	d.Status = sess.Status().String()
	d.Length = sess.Length()
	d.Rows = board(sess.History(), sess.Length(), sess.MaxAttempts())
	if alphabet := s.dict.Alphabet(); render.ShouldShowKeyboard(alphabet) {
		d.Keyboard = render.Keyboard(alphabet, sess.Letters())
	}
	if sess.Status().Terminal() {
		d.Share = render.SessionShareText(sess)
		if sess.Status() == game.Lost {
			d.Answer = sess.Secret()
		}
	}
	return d
}

// board lays out guessed rows then empty rows up to the attempt limit.
func board(history []game.Turn, length, maxAttempts int) [][]tile {
	rows := make([][]tile, 0, max(maxAttempts, len(history)))
	for _, t := range history {
		letters := []rune(t.Guess)
		row := make([]tile, len(letters))
		for i, r := range letters {
			row[i] = tile{Letter: strings.ToUpper(string(r)), Class: t.Result[i].String()}
		}
		rows = append(rows, row)
	}
	for len(rows) < maxAttempts {
		row := make([]tile, length)
		for i := range row {
			row[i].Class = "empty"
		}
		rows = append(rows, row)
	}
	return rows
}

func viewStats(st *stats.Stats) statsView {
	v := statsView{
		Played:        st.Played,
		WinRate:       int(math.Round(st.WinRate())),
		CurrentStreak: st.CurrentStreak,
		MaxStreak:     st.MaxStreak,
		Buckets:       st.Buckets(),
	}
	for _, b := range v.Buckets {
		v.Peak = max(v.Peak, b.Count)
	}
	return v
}
