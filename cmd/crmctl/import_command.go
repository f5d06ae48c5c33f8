package main

import (
	"fmt"
	"os"

	"loan-crm/internal/app"

	"github.com/spf13/cobra"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import leads from a CSV file as new applications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return ctx.withApp(func(a *app.App) error {
				res, err := a.Importer.Import(cmd.Context(), f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created: %d\nskipped: %d\n", res.Created, res.Skipped)
				return nil
			})
		},
	}
}
