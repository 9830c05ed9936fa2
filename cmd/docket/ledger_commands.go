package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docket/internal/config"
)

func newLedgerCommand(ctx *commandContext) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and import the request ledger",
	}

	ledgerCmd.AddCommand(newLedgerShowCommand(ctx))
	ledgerCmd.AddCommand(newLedgerImportCommand(ctx))

	return ledgerCmd
}

func newLedgerShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List every recorded (person, document type) pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			l, err := ctx.openLedger(logger)
			if err != nil {
				return err
			}
			defer l.Close()

			entries, err := l.Entries(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Ledger is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.PersonKey.String(), strings.Join(entry.DocTypes, ", ")})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Person", "Requested Types"}, rows, nil))
			return nil
		},
	}
}

func newLedgerImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <tracker.json>",
		Short: "Import a legacy JSON request tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				l, err := ctx.openLedger(logger)
				if err != nil {
					return err
				}
				defer l.Close()

				imported, err := l.ImportJSON(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d request records from %s\n", imported, args[0])
				return nil
			})
		},
	}
}
