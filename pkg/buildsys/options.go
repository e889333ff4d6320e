package buildsys

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
)

// Options contains the raw values passed on the command line or through a preset.
// The flag tag holds the name of the CLI flag the field is bound to.
type Options struct {
	SourcePath     string `flag:"source_path" validate:"required"`
	BuildPath      string `flag:"build_path" validate:"required"`
	ToolchainFile  string `flag:"toolchain_file" validate:"required"`
	InstallPath    string `flag:"install_path"`
	BuildType      string `flag:"build_type"`
	BlaVendor      string `flag:"bla_vendor"`
	Generator      string `flag:"cmake_generator"`
	BuildShared    bool   `flag:"build_shared"`
	WithCUDA       bool   `flag:"with_cuda"`
	CUDAPath       string `flag:"cuda_path"`
	CUDAArchs      string `flag:"cuda_archs"`
	WithDemo       bool   `flag:"with_demo"`
	BlasUnderscore bool   `flag:"blas_underscore"`
}

// DefaultOptions returns the options used when nothing else was specified
func DefaultOptions() Options {
	return Options{
		BuildType:      "Release",
		BlaVendor:      "All",
		CUDAArchs:      "Auto",
		BlasUnderscore: true,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("flag")
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Validate checks that all required options are present
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return eris.Wrap(err, "failed to validate options")
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, "--"+fe.Field())
	}

	return eris.Wrapf(ErrUsage, "the following arguments are required: %s", strings.Join(missing, ", "))
}
