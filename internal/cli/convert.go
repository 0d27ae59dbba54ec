package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cvi"
)

func convertCmd(_ *app) *cobra.Command {
	var from, to string
	var only []string

	c := &cobra.Command{
		Use:   "convert <in|-> <out|->",
		Short: "Convert a score table between json, csv and yaml",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := selectRows(cmd.InOrStdin(), args[0], from, only)
			if err != nil {
				return err
			}
			if err := writeRows(cmd.OutOrStdout(), args[1], to, rs); err != nil {
				return err
			}
			cvi.Logger().Info("cli: converted", "from", args[0], "to", args[1], "rows", len(rs))
			return nil
		},
	}

	c.Flags().StringVar(&from, "from", "", "input format: json|csv|yaml (default from extension; json for stdin)")
	c.Flags().StringVar(&to, "to", "", "output format: json|csv|yaml (default from extension; json for stdout)")
	c.Flags().StringSliceVar(&only, "only", nil, "keep only the named rows")
	return c
}
