package cli

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gallows-labs/hangman/internal/cli/config"
	"github.com/gallows-labs/hangman/internal/dict"
)

const maxDefinitionWidth = 60

// newWordsCommand creates the words command for inspecting the
// dictionary without playing.
func newWordsCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "words [category]",
		Short: "Inspect the dictionary",
		Long: `Without arguments, words reports how many usable entries each
category file contains. With a category (noun, verb, adj, adv), it
prints a sample of entries from that file.`,
		Example: `  # Entry counts for every category
  hangman words -d /usr/share/wordnet

  # A few noun entries
  hangman words noun -d /usr/share/wordnet --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			if err := config.ValidateDictDir(cfg); err != nil {
				return err
			}
			if len(args) == 1 {
				cat, err := dict.ParseCategory(args[0])
				if err != nil {
					return err
				}
				return printSample(cmd, cfg.DictDir, cat, limit)
			}
			return printCounts(cmd, cfg.DictDir)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sample entries to show")
	return cmd
}

// printCounts loads all four categories concurrently and renders a
// per-category entry count.
func printCounts(cmd *cobra.Command, dir string) error {
	cats := dict.Categories()
	counts := make([]int, len(cats))
	loadErrs := make([]error, len(cats))

	var g errgroup.Group
	for i, cat := range cats {
		g.Go(func() error {
			entries, err := dict.Load(dir, cat)
			if err != nil {
				loadErrs[i] = err
				return nil
			}
			counts[i] = len(entries)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{"Category", "Entries"})
	for i, cat := range cats {
		if loadErrs[i] != nil {
			t.AppendRow(table.Row{cat.Title(), loadErrs[i].Error()})
			continue
		}
		t.AppendRow(table.Row{cat.Title(), counts[i]})
	}
	t.Render()
	return nil
}

// printSample renders up to limit entries from one category, sorted
// by word.
func printSample(cmd *cobra.Command, dir string, cat dict.Category, limit int) error {
	entries, err := dict.Load(dir, cat)
	if err != nil {
		return err
	}

	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{"Word", "Definition"})
	for _, w := range words {
		t.AppendRow(table.Row{w, truncate(entries[w], maxDefinitionWidth)})
	}
	t.AppendFooter(table.Row{"Total", len(entries)})
	t.Render()
	return nil
}

// tableStyle picks a border style the terminal can display.
func tableStyle() table.Style {
	if termenv.EnvColorProfile() == termenv.Ascii {
		return table.StyleDefault
	}
	return table.StyleRounded
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
