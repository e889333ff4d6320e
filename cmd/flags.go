package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

func newFlagsCmd(opts *buildsys.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "Prints the CMake flags derived from the current options",
		Long: `Resolves the options (including any preset) exactly like a build would and
prints the flags passed to the configure and build steps without running CMake.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildsys.Resolve(*opts, buildsys.DetectHost())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "configure:")
			for _, arg := range cfg.ConfigArgs() {
				fmt.Fprintf(out, "  %s\n", arg)
			}

			fmt.Fprintln(out, "build:")
			for _, arg := range cfg.BuildArgs() {
				fmt.Fprintf(out, "  %s\n", arg)
			}
			return nil
		},
	}
}
