// Command hangman is a single-player terminal word-guessing game
// backed by WordNet dictionary files.
package main

import (
	"os"

	"github.com/gallows-labs/hangman/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
