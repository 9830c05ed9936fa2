package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docket/internal/requests"
)

func newRequestsCommand(ctx *commandContext) *cobra.Command {
	requestsCmd := &cobra.Command{
		Use:   "requests",
		Short: "Plan and inspect document request submissions",
	}

	requestsCmd.AddCommand(newRequestsPlanCommand(ctx))

	return requestsCmd
}

func newRequestsPlanCommand(ctx *commandContext) *cobra.Command {
	var docTypes []string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "List (person, document type) pairs not yet requested",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(docTypes) == 0 {
				return fmt.Errorf("at least one --type is required")
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

			rows := make([]requests.Row, 0, dir.Len())
			for _, person := range dir.Entries() {
				rows = append(rows, requests.Row{
					Name:     person.RawName,
					Page:     person.Page,
					DocTypes: docTypes,
				})
			}

			pairs, err := requests.Outstanding(cmd.Context(), l, rows)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(pairs) == 0 {
				fmt.Fprintln(out, "Nothing outstanding; every pair is already requested")
				return nil
			}
			tableRows := make([][]string, 0, len(pairs))
			for _, pair := range pairs {
				tableRows = append(tableRows, []string{
					pair.Row.Name,
					pair.DocType,
					strconv.Itoa(pair.Row.Page),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Person", "Document Type", "Page"},
				tableRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d outstanding submissions\n", len(pairs))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&docTypes, "type", nil, "Document type to plan for (repeatable)")
	return cmd
}
