package cli

import (
	"fmt"

	"github.com/dexnore/dockerfile"
	"github.com/spf13/cobra"
)

func newCmdsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cmds",
		Short: "List all known instructions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range dockerfile.AllCmds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
