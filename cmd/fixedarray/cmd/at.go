package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAtCmd() *cobra.Command {
	atCmd := &cobra.Command{
		Use:   "at --index N [--values ints] [--] [ints...]",
		Short: "Print the element at an index",
		Long: `Print the element at an index. Indexes outside the array fail with
an out of range error.

` + fmt.Sprintf(valuesHelp, "at --index 1", "at --index 1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arrayFromCmd(cmd, args)
			if err != nil {
				return err
			}
			index, _ := cmd.Flags().GetInt("index")
			v, err := a.Get(index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	atCmd.Flags().IntP("index", "i", 0, "Index of the element to print")
	addValuesFlag(atCmd)
	return atCmd
}
