package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/fixedarray"
)

func newReverseCmd() *cobra.Command {
	reverseCmd := &cobra.Command{
		Use:   "reverse [--values ints] [--] [ints...]",
		Short: "Render the array in reverse order",
		Long:  fmt.Sprintf(valuesHelp, "reverse", "reverse"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arrayFromCmd(cmd, args)
			if err != nil {
				return err
			}
			reversed := fixedarray.New[int](a.Size())
			fixedarray.Copy[int](a.CRBegin(), a.CREnd(), reversed.Begin())
			fmt.Fprintln(cmd.OutOrStdout(), reversed)
			return nil
		},
	}
	addValuesFlag(reverseCmd)
	return reverseCmd
}
