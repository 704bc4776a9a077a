// Package cli provides the command-line interface for hangman.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gallows-labs/hangman/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version = "0.1.0"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command. Running the root
// command with no subcommand starts a game.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Hangman - guess the hidden word letter by letter",
		Long: `Hangman picks a word from a WordNet dictionary by grammatical
category and lets you guess it one letter at a time. Every miss draws
one more piece of the figure; nine misses and the round is lost.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for commands that don't need it
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		RunE:          runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./hangman.yaml)")
	rootCmd.PersistentFlags().StringP("dict-dir", "d", "", "Directory with WordNet data files")
	rootCmd.PersistentFlags().String("log-file", "", "Diagnostic log destination (default: "+config.DefaultLogFile+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newWordsCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{LogFile: config.DefaultLogFile}
}

// getLogger retrieves the logger from the command context.
func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
