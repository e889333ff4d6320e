package buildsys

import (
	"context"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// Progress receives one tick per finished library. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Describe(description string)
	Add(num int) error
}

// Driver builds a list of libraries one after another
type Driver struct {
	Config *Config
	Exec   Executor
	// Binary is the CMake executable, "cmake" if empty
	Binary   string
	DryRun   bool
	Progress Progress
}

// Report lists the libraries that were configured and installed successfully
type Report struct {
	Completed []string
}

func (d *Driver) binary() string {
	if d.Binary == "" {
		return "cmake"
	}
	return d.Binary
}

// Run configures and builds each library in libs in order. It returns at the first
// failure; libraries built before that stay installed. A failing CMake invocation is
// reported as *CommandError.
func (d *Driver) Run(ctx context.Context, libs []string) (Report, error) {
	report := Report{Completed: make([]string, 0, len(libs))}

	if !d.DryRun {
		if err := MkdirIfNotExists(d.Config.BuildPath); err != nil {
			return report, err
		}
	}

	for _, lib := range libs {
		if lib == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return report, eris.Wrapf(err, "Build interrupted before %s", lib)
		}

		if d.Progress != nil {
			d.Progress.Describe(lib)
		}

		step := d.Config.StepFor(lib)
		if err := d.runStep(ctx, step); err != nil {
			return report, err
		}

		report.Completed = append(report.Completed, lib)
		if d.Progress != nil {
			_ = d.Progress.Add(1)
		}
	}

	return report, nil
}

func (d *Driver) runStep(ctx context.Context, step Step) error {
	if !d.DryRun {
		if err := MkdirIfNotExists(filepath.Dir(step.BuildDir)); err != nil {
			return err
		}

		if err := MkdirIfNotExists(step.BuildDir); err != nil {
			return err
		}
	}

	err := d.invoke(ctx, step, StageConfigure, d.Config.ConfigureCommand(step))
	if err != nil {
		return err
	}

	return d.invoke(ctx, step, StageBuild, d.Config.BuildCommand(step))
}

func (d *Driver) invoke(ctx context.Context, step Step, stage Stage, args []string) error {
	argv := append([]string{d.binary()}, args...)

	log(ctx).Info().
		Str("task", step.Library).
		Str("stage", string(stage)).
		Str("path", step.BuildDir).
		Bool("command", true).
		Msg(FormatCommand(argv))

	if d.DryRun {
		return nil
	}

	code, err := d.Exec.Run(ctx, step.BuildDir, argv)
	if err != nil {
		return eris.Wrapf(err, "Failed to %s %s", stage, step.Library)
	}

	if code != 0 {
		return &CommandError{
			Library:  step.Library,
			Stage:    stage,
			Args:     argv,
			ExitCode: code,
		}
	}

	log(ctx).Debug().
		Str("task", step.Library).
		Msgf("%s finished", stage)
	return nil
}
