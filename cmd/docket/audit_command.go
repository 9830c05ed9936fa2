package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/auditor"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Reconcile the ledger and mapping against files on disk",
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

			report, err := auditor.Audit(cmd.Context(), l, dir, cfg.Paths.DocumentsRoot, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Empty() {
				fmt.Fprintln(out, "No discrepancies found")
				return nil
			}

			if len(report.UnknownNames) > 0 {
				rows := make([][]string, 0, len(report.UnknownNames))
				for _, name := range report.UnknownNames {
					rows = append(rows, []string{name})
				}
				fmt.Fprintln(out, "Folders on disk with no mapping or ledger entry:")
				fmt.Fprintln(out, renderTable(out, []string{"Folder"}, rows, nil))
			}
			if len(report.MissingFiles) > 0 {
				rows := make([][]string, 0, len(report.MissingFiles))
				for _, missing := range report.MissingFiles {
					rows = append(rows, []string{missing.PersonKey.String(), missing.DocType})
				}
				fmt.Fprintln(out, "Requested documents not yet on disk:")
				fmt.Fprintln(out, renderTable(out, []string{"Person", "Document Type"}, rows, nil))
			}
			if len(report.MissingNames) > 0 {
				fmt.Fprintln(out, "Known people with no folder on disk:")
				fmt.Fprintln(out, "  "+strings.Join(report.MissingNames, "\n  "))
			}
			return nil
		},
	}
}
