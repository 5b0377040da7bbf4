// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
)

// progress bars only pay off for large inputs
const progressThreshold = 5000

var errMissingKeys = errors.New("some keys are not in the tree")

type rootOptions struct {
	verbose    bool
	noProgress bool
}

// buildIndex loads the keys named by args (or shell history) into a new
// KeyIndex.
func buildIndex(cmd *cobra.Command, opts *rootOptions, args []string) (*KeyIndex, *Config, error) {
	config := LoadConfig()

	entries, err := LoadKeys(cmd.Context(), config, args, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}

	index := NewKeyIndex(config.Index)
	added := index.Populate(entries, !opts.noProgress && len(entries) >= progressThreshold)
	slog.Debug("key index ready", "read", len(entries), "unique", added)
	return index, config, nil
}

func formatStats(stats IndexStats) string {
	if stats.Size == 0 {
		return "🌱 The tree is empty.\n"
	}
	return fmt.Sprintf(""+
		"🌳 keys:        %d\n"+
		"   height:      %d (AVL bound %.1f)\n"+
		"   duplicates:  %d\n"+
		"   smallest:    %s\n"+
		"   largest:     %s\n",
		stats.Size, stats.Height, stats.HeightBound, stats.Duplicates,
		strconv.Quote(stats.Min), strconv.Quote(stats.Max))
}

// queryKeys prints one line per key and returns errMissingKeys when any
// key is absent.
func queryKeys(w io.Writer, index *KeyIndex, keys []string) error {
	missing := 0
	for _, key := range keys {
		if found, ok := index.Find(key); ok {
			fmt.Fprintf(w, "%s✔%s %s\n", Green, Reset, strconv.Quote(found))
		} else {
			missing++
			fmt.Fprintf(w, "%s✘%s %s\n", Error, Reset, strconv.Quote(key))
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", errMissingKeys, missing, len(keys))
	}
	return nil
}

// printTree writes the diagram unless the tree is larger than the
// configured limit and force is not set.
func printTree(w io.Writer, index *KeyIndex, limit int, force bool) error {
	if index.Len() > limit && !force {
		return fmt.Errorf("tree holds %d keys, more than display.max_print_keys (%d); use --force", index.Len(), limit)
	}
	depth := index.Tree().Print(w)
	fmt.Fprintf(w, "\ndepth: %d, keys: %d\n", depth, index.Len())
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	banner := fmt.Sprintf("keytree %s: your shell history and key files in an AVL balanced search tree", version)

	var cmdStats = &cobra.Command{
		Use:   "stats [files...]",
		Short: "Print size, height and key range of the tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Stats loads the keys and reports the shape of the resulting tree"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := buildIndex(cmd, opts, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatStats(index.Stats()))
			return nil
		},
	}

	var queryFiles []string
	var cmdQuery = &cobra.Command{
		Use:   "query key...",
		Short: "Look keys up in the tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Query exits with status 1 when any key is missing"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := buildIndex(cmd, opts, queryFiles)
			if err != nil {
				return err
			}
			return queryKeys(cmd.OutOrStdout(), index, args)
		},
	}
	cmdQuery.Flags().StringSliceVar(&queryFiles, "from", nil, "key files to load instead of shell history ('-' for stdin)")

	var force bool
	var cmdPrint = &cobra.Command{
		Use:   "print [files...]",
		Short: "Draw the tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Print draws the tree sideways: right subtrees above, left subtrees below"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, config, err := buildIndex(cmd, opts, args)
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), index, config.Display.MaxPrintKeys, force)
		},
	}
	cmdPrint.Flags().BoolVar(&force, "force", false, "draw trees larger than display.max_print_keys")

	var prefix string
	var reverse bool
	var cmdList = &cobra.Command{
		Use:   "list [files...]",
		Short: "List keys in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := buildIndex(cmd, opts, args)
			if err != nil {
				return err
			}
			for _, key := range index.Prefix(prefix, reverse) {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmdList.Flags().StringVar(&prefix, "prefix", "", "only keys starting with this prefix")
	cmdList.Flags().BoolVar(&reverse, "reverse", false, "descending order")

	explore := func(cmd *cobra.Command, args []string) error {
		index, config, err := buildIndex(cmd, opts, args)
		if err != nil {
			return err
		}
		return runExplorer(index, config)
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [files...]",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Explore inserts and looks up keys interactively while showing the tree"),
		RunE:  explore,
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print keytree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating ~/.keytree.yaml if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print keytree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "keytree [files...]",
		Version:       version,
		Long:          banner,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			InitializeColors()
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		// Default to the explorer when no subcommand is provided
		RunE: explore,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noProgress, "no-progress", false, "never draw progress bars")

	rootCmd.AddCommand(cmdStats, cmdQuery, cmdPrint, cmdList, cmdExplore, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errMissingKeys) {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", Error, err, Reset)
		}
		stop()
		os.Exit(1)
	}
}
