package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docket/internal/config"
	"docket/internal/intake"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process <drop-dir>",
		Short: "Sort delivered documents into the organized tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				dir, err := ctx.openDirectory(logger)
				if err != nil {
					return err
				}

				pipeline := intake.New(cfg, dir, logger)
				summary, err := pipeline.Run(cmd.Context(), intake.DirSource{Dir: args[0]})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				people := summary.MatchedPeople()
				if len(people) > 0 {
					rows := make([][]string, 0, len(people))
					for _, person := range people {
						rows = append(rows, []string{person.PersonKey, strconv.Itoa(person.Documents)})
					}
					fmt.Fprintln(out, renderTable(out,
						[]string{"Person", "Documents"},
						rows,
						[]columnAlignment{alignLeft, alignRight},
					))
				}
				fmt.Fprintf(out, "Processed %d documents: %d matched, %d unmatched, %d duplicates skipped, %d failed\n",
					summary.Processed,
					summary.Processed-len(summary.Unmatched)-summary.Skipped-summary.Failed,
					len(summary.Unmatched),
					summary.Skipped,
					summary.Failed,
				)
				if summary.MatchedReport != "" {
					fmt.Fprintf(out, "Reports: %s, %s\n", summary.MatchedReport, summary.UnmatchedReport)
				}
				return nil
			})
		},
	}
}
