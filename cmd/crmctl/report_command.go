package main

import (
	"fmt"
	"strconv"

	"loan-crm/internal/app"

	"github.com/spf13/cobra"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print CRM reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "employees",
		Short: "Disbursed totals and closed deals per employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(func(a *app.App) error {
				return printEmployeeReport(cmd, a)
			})
		},
	})
	return cmd
}

func printEmployeeReport(cmd *cobra.Command, a *app.App) error {
	rows, err := a.Reports.EmployeeReport(cmd.Context())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No employees")
		return nil
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.FormatUint(r.EmployeeID, 10),
			r.Name,
			r.Designation,
			r.TotalDisbursed.StringFixed(2),
			strconv.FormatInt(r.DealsClosed, 10),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Name", "Designation", "Total Disbursed", "Deals"},
		out,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
	))
	return nil
}
