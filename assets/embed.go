// Package assets embeds the default word lists so the game runs even when
// no dictionary files are configured.
package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answers list.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}

// Allowed opens the embedded allowed-guesses list.
func Allowed() (io.ReadCloser, error) {
	return FS.Open("allowed.txt")
}
