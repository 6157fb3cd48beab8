// main.go
//
// Entry point for Wordle senza limiti.
// Loads an optional .env file, then hands over to the cobra command tree
// (serve, play, daily, version). Configuration and log level are resolved by
// the commands themselves.

package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle-unlimited/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
