package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

func bindOptions(flags *pflag.FlagSet, opts *buildsys.Options) {
	flags.StringVar(&opts.SourcePath, "source_path", opts.SourcePath, "path to the top SuiteSparse source folder (required)")
	flags.StringVar(&opts.BuildPath, "build_path", opts.BuildPath, "folder that receives one build directory per library (required)")
	flags.StringVar(&opts.ToolchainFile, "toolchain_file", opts.ToolchainFile, "path of the CMake toolchain file (required)")
	flags.StringVar(&opts.InstallPath, "install_path", opts.InstallPath, "install prefix; libraries are installed into the build tree if empty")
	flags.StringVar(&opts.BuildType, "build_type", opts.BuildType, "build type, e.g. Debug, Release, RelWithDebInfo")
	flags.StringVar(&opts.BlaVendor, "bla_vendor", opts.BlaVendor, "BLAS vendor, e.g. All, OpenBLAS, Intel10_64lp, Apple, Generic")
	flags.StringVar(&opts.Generator, "cmake_generator", opts.Generator, "CMake generator, e.g. Visual Studio 17 2022")
	flags.BoolVar(&opts.BuildShared, "build_shared", opts.BuildShared, "build shared instead of static libraries")
	flags.BoolVar(&opts.WithCUDA, "with_cuda", opts.WithCUDA, "enable CUDA acceleration")
	flags.StringVar(&opts.CUDAPath, "cuda_path", opts.CUDAPath, "folder containing CUDA (currently unused)")
	flags.StringVar(&opts.CUDAArchs, "cuda_archs", opts.CUDAArchs, "CUDA architectures to generate code for (currently unused)")
	flags.BoolVar(&opts.WithDemo, "with_demo", opts.WithDemo, "build the demo programs")
	flags.BoolVar(&opts.BlasUnderscore, "blas_underscore", opts.BlasUnderscore, "BLAS symbols carry a trailing underscore")
}

// applyPreset fills every flag that wasn't set on the command line with the value
// from the given YAML file.
func applyPreset(flags *pflag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(buildsys.ErrUsage, "Could not open preset %s: %v", path, err)
	}

	values := map[string]interface{}{}
	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return eris.Wrapf(buildsys.ErrUsage, "Failed to parse %s: %v", path, err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil || name == "preset" {
			return eris.Wrapf(buildsys.ErrUsage, "Unknown option %s in %s", name, path)
		}

		value := values[name]
		if value == nil {
			continue
		}

		switch value.(type) {
		case string, bool, int, int64, uint64, float64:
		default:
			return eris.Wrapf(buildsys.ErrUsage, "Invalid value for %s in %s: expected a single value", name, path)
		}

		if flag.Changed {
			continue
		}

		err = flags.Set(name, fmt.Sprint(value))
		if err != nil {
			return eris.Wrapf(buildsys.ErrUsage, "Invalid value for %s in %s: %v", name, path, err)
		}
	}

	return nil
}
