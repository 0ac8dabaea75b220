package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

func main() {
	cmd := &cobra.Command{
		Use:           "timesheet",
		Short:         "Timesheet reports, closure days and e-mail from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = appVersion
	cmd.SetVersionTemplate("timesheet v{{.Version}}\n")

	cmd.AddCommand(
		newReportCmd(),
		newClosuresCmd(),
		newMailCmd(),
		newEmployeesCmd(),
		newCheckCmd(),
	)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
