package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/fixedarray"
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render [--values ints] [--] [ints...]",
		Short: "Render the array as text",
		Long: `Render the array as "[e0<sep>e1...]".

` + fmt.Sprintf(valuesHelp, "render", "render"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arrayFromCmd(cmd, args)
			if err != nil {
				return err
			}
			sep, _ := cmd.Flags().GetString("sep")
			fmt.Fprintln(cmd.OutOrStdout(), a.Render(sep))
			return nil
		},
	}
	renderCmd.Flags().String("sep", fixedarray.DefaultSeparator, "Separator placed between elements")
	addValuesFlag(renderCmd)
	return renderCmd
}
