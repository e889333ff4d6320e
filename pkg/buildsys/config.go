package buildsys

import (
	"fmt"
	"path/filepath"
)

// Config is the resolved configuration for a run. It is created once by Resolve and
// must not be modified afterwards.
type Config struct {
	Options

	localInstall bool
	configArgs   []string
	buildArgs    []string
}

// Step describes the directories used to build a single library
type Step struct {
	Library   string
	SourceDir string
	BuildDir  string
}

// Resolve validates the options and derives the CMake flags for the given host.
func Resolve(opts Options, host Host) (*Config, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := &Config{Options: opts}
	args := make([]string, 0, 16)

	if opts.InstallPath != "" {
		args = append(args,
			"-DCMAKE_PREFIX_PATH="+opts.InstallPath,
			"-DCMAKE_INSTALL_PREFIX="+opts.InstallPath,
			"-DLOCAL_INSTALL=OFF",
		)
	} else {
		cfg.localInstall = true
		args = append(args, "-DLOCAL_INSTALL=ON")
	}

	if opts.ToolchainFile != "" {
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+opts.ToolchainFile)
	}

	args = append(args, "-DCMAKE_BUILD_TYPE="+opts.BuildType)

	if opts.Generator != "" {
		args = append(args, "-DCMAKE_GENERATOR="+opts.Generator)
	}

	if host.Windows {
		args = append(args, "-DCMAKE_GENERATOR_PLATFORM=x64")
	}

	if opts.BlaVendor != "" {
		args = append(args, "-DBLA_VENDOR="+opts.BlaVendor)
	}

	// NSTATIC is the inverse of the shared toggle
	args = append(args,
		cmakeBool("NSTATIC", opts.BuildShared),
		cmakeBool("ENABLE_CUDA", opts.WithCUDA),
		cmakeBool("DEMO", opts.WithDemo),
		cmakeBool("BLAS_UNDERSCORE", opts.BlasUnderscore),
	)
	cfg.configArgs = args

	if host.Windows {
		// MSBuild
		cfg.buildArgs = []string{"--", fmt.Sprintf("/maxcpucount:%d", host.CPUs)}
	} else {
		// make
		cfg.buildArgs = []string{"--", fmt.Sprintf("-j%d", host.CPUs)}
	}

	return cfg, nil
}

func cmakeBool(name string, value bool) string {
	if value {
		return "-D" + name + "=ON"
	}
	return "-D" + name + "=OFF"
}

// LocalInstall reports whether the libraries are installed into the build tree
func (c *Config) LocalInstall() bool {
	return c.localInstall
}

// ConfigArgs returns a copy of the flags passed to every configure step.
func (c *Config) ConfigArgs() []string {
	return append([]string(nil), c.configArgs...)
}

// BuildArgs returns a copy of the flags passed to every build step.
func (c *Config) BuildArgs() []string {
	return append([]string(nil), c.buildArgs...)
}

// StepFor computes the directories for lib
func (c *Config) StepFor(lib string) Step {
	return Step{
		Library:   lib,
		SourceDir: filepath.Join(c.SourcePath, lib),
		BuildDir:  filepath.Join(c.BuildPath, lib, "build"),
	}
}

// ConfigureCommand returns the argument list (without the binary) for the configure step.
func (c *Config) ConfigureCommand(step Step) []string {
	cmd := make([]string, 0, 4+len(c.configArgs))
	cmd = append(cmd, "-S", step.SourceDir, "-B", step.BuildDir)
	return append(cmd, c.configArgs...)
}

// BuildCommand returns the argument list (without the binary) for the build+install step.
func (c *Config) BuildCommand(step Step) []string {
	cmd := make([]string, 0, 6+len(c.buildArgs))
	cmd = append(cmd, "--build", step.BuildDir, "--target", "install", "--config", c.BuildType)
	return append(cmd, c.buildArgs...)
}
