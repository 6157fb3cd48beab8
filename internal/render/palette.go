// internal/render/palette.go
//
// Tile colour palettes.

package render

import "github.com/robalobadob/wordle-unlimited/internal/game"

// Palette holds tile colours as CSS hex strings.
type Palette struct {
	Correct string
	Present string
	Absent  string
	Empty   string
}

var (
	DefaultPalette = Palette{
		Correct: "#6aaa64",
		Present: "#c9b458",
		Absent:  "#787c7e",
		Empty:   "#d3d6da",
	}
	// ColorBlindPalette swaps green/yellow for orange/blue.
	ColorBlindPalette = Palette{
		Correct: "#f5793a",
		Present: "#85c0f9",
		Absent:  "#5f6a72",
		Empty:   "#c6cbd3",
	}
)

// PaletteFor returns the palette for the colour-blind flag.
func PaletteFor(colorBlind bool) Palette {
	if colorBlind {
		return ColorBlindPalette
	}
	return DefaultPalette
}

// Color returns the colour of a verdict; Unknown maps to Empty.
func (p Palette) Color(v game.Verdict) string {
	switch v {
	case game.Correct:
		return p.Correct
	case game.Present:
		return p.Present
	case game.Absent:
		return p.Absent
	default:
		return p.Empty
	}
}
