package cmd

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/fixedarray"
)

const valuesHelp = `Values come from --values (comma separated, negatives allowed) followed by
any positional arguments. Negative positional values must follow "--",
otherwise they are read as flags:
  fixedarray %s --values -3,4 5
  fixedarray %s -- -3 4 5`

// newRootCmd builds the command tree. Flags are bound per tree so every
// execution starts from their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixedarray",
		Short: "Inspect fixed-size arrays from the command line",
		Long: `fixedarray builds a fixed-size integer array from its arguments and
renders, reverses, prints or indexes it.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRenderCmd(), newReverseCmd(), newPrintCmd(), newAtCmd())
	return rootCmd
}

// Execute builds the root command and runs it against os.Args.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// addValuesFlag registers the --values flag shared by every subcommand.
func addValuesFlag(cmd *cobra.Command) {
	cmd.Flags().IntSlice("values", nil, "Comma separated integers placed before positional arguments")
}

// arrayFromCmd builds an array from --values followed by the positional
// arguments, in order.
func arrayFromCmd(cmd *cobra.Command, args []string) (*fixedarray.FixedArray[int], error) {
	values, err := cmd.Flags().GetIntSlice("values")
	if err != nil {
		return nil, errors.Wrap(err, "reading --values")
	}
	rest, err := parseArray(args)
	if err != nil {
		return nil, err
	}
	head := fixedarray.Of(values...)
	a := fixedarray.New[int](head.Size() + rest.Size())
	end := fixedarray.Copy[int](head.CBegin(), head.CEnd(), a.Begin())
	fixedarray.Copy[int](rest.CBegin(), rest.CEnd(), end)
	return a, nil
}

// parseArray builds an array from integer arguments, in order.
func parseArray(args []string) (*fixedarray.FixedArray[int], error) {
	a := fixedarray.New[int](len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		if err := a.Set(i, v); err != nil {
			return nil, err
		}
	}
	return a, nil
}
