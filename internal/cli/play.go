package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gallows-labs/hangman/internal/cli/config"
	"github.com/gallows-labs/hangman/internal/dict"
	"github.com/gallows-labs/hangman/internal/tui"
)

// newPlayCommand creates the play command. The root command runs the
// same thing; this exists so `hangman play` also works.
func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game (the default command)",
		Example: `  # Play with the WordNet database installed under /usr/share/wordnet
  hangman play -d /usr/share/wordnet`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := getConfig(cmd.Context())
	logger := getLogger(cmd.Context())

	if err := config.ValidateDictDir(cfg); err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("hangman needs an interactive terminal")
	}

	store := dict.NewStore(cfg.DictDir, logger)
	logger.Info("session started", "dict_dir", cfg.DictDir)
	if err := tui.Run(store, logger); err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	logger.Info("session ended")
	return nil
}
