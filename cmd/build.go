package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ssbuild/ssbuild/pkg"
	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

// newExecutor is replaced in tests
var newExecutor = func(stdout, stderr io.Writer) buildsys.Executor {
	return buildsys.ProcessExecutor{Stdout: stdout, Stderr: stderr}
}

func getProgressBar(length int, desc string, out io.Writer) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.NewOptions(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.NewOptions(length,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func runBuild(cmd *cobra.Command, opts buildsys.Options) error {
	dryRun, err := cmd.Flags().GetBool("dry")
	if err != nil {
		return err
	}

	binary, err := cmd.Flags().GetString("cmake")
	if err != nil {
		return err
	}

	pkg.PrintTask("Resolving configuration")
	cfg, err := buildsys.Resolve(opts, buildsys.DetectHost())
	if err != nil {
		return err
	}

	libs := buildsys.Libraries()
	pkg.PrintTask(fmt.Sprintf("Building %d libraries", len(libs)))
	if dryRun {
		pkg.PrintSubtask("dry run, nothing will be executed")
	}

	bar := getProgressBar(len(libs), "building", cmd.ErrOrStderr())
	driver := &buildsys.Driver{
		Config:   cfg,
		Exec:     newExecutor(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Binary:   binary,
		DryRun:   dryRun,
		Progress: bar,
	}

	report, err := driver.Run(cmd.Context(), libs)
	_ = bar.Finish()
	if err != nil {
		if len(report.Completed) > 0 {
			pkg.PrintSubtask(fmt.Sprintf("%d of %d libraries were installed before the failure", len(report.Completed), len(libs)))
		}
		return err
	}

	pkg.PrintTask("Done")
	return nil
}
