package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

func newLibsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "libs",
		Short: "Lists the libraries in build order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for idx, lib := range buildsys.Libraries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", idx+1, lib)
			}
			return nil
		},
	}
}
