package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	printCmd := &cobra.Command{
		Use:   "print [--values ints] [--] [ints...]",
		Short: "Print each element followed by a space",
		Long:  fmt.Sprintf(valuesHelp, "print", "print"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arrayFromCmd(cmd, args)
			if err != nil {
				return err
			}
			return a.Fprint(cmd.OutOrStdout())
		},
	}
	addValuesFlag(printCmd)
	return printCmd
}
