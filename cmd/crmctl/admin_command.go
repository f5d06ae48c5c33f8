package main

import (
	"fmt"

	"loan-crm/internal/app"

	"github.com/spf13/cobra"
)

func newSetupAdminCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setup-admin",
		Short: "Create the admin account if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app.App) error {
				res, err := a.Admin.Bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, res.Message)
				fmt.Fprintf(out, "username: %s\n", res.Username)
				if res.GeneratedPassword != "" {
					fmt.Fprintf(out, "password: %s\n", res.GeneratedPassword)
					fmt.Fprintln(out, "Store this password now; it is not shown again.")
				}
				return nil
			})
		},
	}
}
