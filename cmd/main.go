package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssbuild/ssbuild/pkg"
	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

func newRootCmd() *cobra.Command {
	opts := buildsys.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "ssbuild",
		Short: "Configures and builds the SuiteSparse libraries",
		Long: `Runs CMake for every SuiteSparse library in dependency order.
Each library is configured and then built and installed before the next one starts.
The first failing CMake invocation aborts the whole run.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return eris.Wrapf(buildsys.ErrUsage, "Unexpected arguments: %v", args)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd); err != nil {
				return err
			}

			preset, err := cmd.Flags().GetString("preset")
			if err != nil {
				return err
			}

			if preset != "" {
				return applyPreset(cmd.Flags(), preset)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	bindOptions(flags, &opts)
	flags.String("preset", "", "YAML file with default values for the options above")
	flags.BoolP("dry", "n", false, "dry run; only print the commands, don't execute anything")
	flags.String("cmake", "cmake", "CMake executable to run")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return eris.Wrap(buildsys.ErrUsage, err.Error())
	})

	rootCmd.AddCommand(newLibsCmd())
	rootCmd.AddCommand(newFlagsCmd(&opts))

	return rootCmd
}

func setupLogging(cmd *cobra.Command) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return eris.Wrapf(buildsys.ErrUsage, "Invalid log level %s", levelName)
	}

	writer := pkg.NewConsoleWriter(cmd.ErrOrStderr())
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		return eris.ToString(err, writer.Debug)
	}

	logger := zerolog.New(writer).Level(level)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(buildsys.WithLogger(ctx, &logger))

	return nil
}

// exitCode maps the result of a run to the process exit code and prints the
// failure summary.
func exitCode(err error, stdout io.Writer) int {
	if err == nil {
		return 0
	}

	var cmdErr *buildsys.CommandError
	if errors.As(err, &cmdErr) {
		fmt.Fprintln(stdout, "Command failed:", cmdErr.CommandLine())
		return 1
	}

	if eris.Is(err, buildsys.ErrUsage) {
		pkg.PrintError(err.Error())
		return 2
	}

	pkg.PrintError(eris.ToString(err, os.Getenv("SSBUILD_DEBUG") != ""))
	return 1
}

// Execute runs the CLI and returns the exit code for the process
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	return exitCode(err, os.Stdout)
}
