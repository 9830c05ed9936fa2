package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/placer"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the ledger and the organized tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			dir, err := ctx.openDirectory(logger)
			if err != nil {
				return err
			}
			l, err := ctx.openLedger(logger)
			if err != nil {
				return err
			}
			defer l.Close()

			requested, err := l.Count(cmd.Context())
			if err != nil {
				return err
			}
			placed, unmatched, err := countTree(cfg.Paths.DocumentsRoot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Known people", strconv.Itoa(dir.Len())},
				{"Requested pairs", strconv.Itoa(requested)},
				{"Documents on disk", strconv.Itoa(placed)},
				{"Unmatched documents", strconv.Itoa(unmatched)},
			}
			fmt.Fprintln(out, renderTable(out, []string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

// countTree tallies files under the organized tree, splitting out the
// unmatched bucket. A missing root counts as an empty tree.
func countTree(root string) (placed, unmatched int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return filepath.SkipAll
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if strings.HasPrefix(rel, placer.UnmatchedFolder+string(filepath.Separator)) {
			unmatched++
		} else {
			placed++
		}
		return nil
	})
	return placed, unmatched, err
}
