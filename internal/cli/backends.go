package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/cvi/recording"
)

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered export backends and their file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range recording.Backends() {
				if _, err := fmt.Fprintf(w, "%-6s %s\n", name, strings.Join(recording.Extensions(name), " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
