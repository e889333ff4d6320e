package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbuild/ssbuild/pkg"
	"github.com/ssbuild/ssbuild/pkg/buildsys"
)

type scriptedExecutor struct {
	calls [][]string
	fail  string
}

func (e *scriptedExecutor) Run(ctx context.Context, dir string, argv []string) (int, error) {
	e.calls = append(e.calls, argv)
	if e.fail != "" && filepath.Base(filepath.Dir(dir)) == e.fail {
		return 1, nil
	}
	return 0, nil
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CI", "true")
	discardTaskOutput(t)

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func discardTaskOutput(t *testing.T) {
	t.Helper()

	previous := pkg.Stdout
	pkg.Stdout = io.Discard
	t.Cleanup(func() {
		pkg.Stdout = previous
	})
}

func useExecutor(t *testing.T, exec buildsys.Executor) {
	t.Helper()

	previous := newExecutor
	newExecutor = func(stdout, stderr io.Writer) buildsys.Executor {
		return exec
	}
	t.Cleanup(func() {
		newExecutor = previous
	})
}

func requiredArgs(t *testing.T) []string {
	dir := t.TempDir()
	return []string{
		"--source_path", filepath.Join(dir, "src"),
		"--build_path", filepath.Join(dir, "build"),
		"--toolchain_file", filepath.Join(dir, "toolchain.cmake"),
	}
}

func TestLibsCommand(t *testing.T) {
	out, err := runCLI(t, "libs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(buildsys.Libraries()))
	assert.Equal(t, " 1. SuiteSparse_config", lines[0])
	assert.Equal(t, "18. SPEX", lines[17])
}

func TestFlagsCommand(t *testing.T) {
	args := append([]string{"flags"}, requiredArgs(t)...)
	args = append(args, "--install_path", "/opt/ss", "--build_shared", "--blas_underscore=false")

	out, err := runCLI(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "  -DCMAKE_INSTALL_PREFIX=/opt/ss\n")
	assert.Contains(t, out, "  -DNSTATIC=ON\n")
	assert.Contains(t, out, "  -DBLAS_UNDERSCORE=OFF\n")
	assert.Contains(t, out, "build:\n  --\n")
}

func TestPresetFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "preset.yml")
	require.NoError(t, os.WriteFile(preset, []byte(`source_path: /src/SuiteSparse
build_path: /tmp/ss
toolchain_file: /src/toolchain.cmake
build_type: RelWithDebInfo
bla_vendor: OpenBLAS
with_demo: true
`), 0600))

	out, err := runCLI(t, "flags", "--preset", preset, "--build_type", "Debug")
	require.NoError(t, err)

	assert.Contains(t, out, "-DCMAKE_BUILD_TYPE=Debug\n")
	assert.NotContains(t, out, "RelWithDebInfo")
	assert.Contains(t, out, "-DBLA_VENDOR=OpenBLAS\n")
	assert.Contains(t, out, "-DDEMO=ON\n")
	assert.Contains(t, out, "-DCMAKE_TOOLCHAIN_FILE=/src/toolchain.cmake\n")
}

func TestPresetRejectsUnknownKeys(t *testing.T) {
	preset := filepath.Join(t.TempDir(), "preset.yml")
	require.NoError(t, os.WriteFile(preset, []byte("no_such_option: 1\n"), 0600))

	_, err := runCLI(t, "flags", "--preset", preset)
	require.Error(t, err)
	assert.True(t, eris.Is(err, buildsys.ErrUsage))
	assert.Equal(t, 2, exitCode(err, io.Discard))
}

func TestPresetRejectsNonScalarValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"list", "bla_vendor: [a, b]\n"},
		{"map", "cmake_generator: {x: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset := filepath.Join(t.TempDir(), "preset.yml")
			require.NoError(t, os.WriteFile(preset, []byte(tt.content), 0600))

			args := append([]string{"flags", "--preset", preset}, requiredArgs(t)...)
			out, err := runCLI(t, args...)
			require.Error(t, err)
			assert.True(t, eris.Is(err, buildsys.ErrUsage))
			assert.Equal(t, 2, exitCode(err, io.Discard))
			assert.NotContains(t, out, "map[")
			assert.NotContains(t, out, "[a b]")
		})
	}
}

func TestPresetAcceptsScalarValues(t *testing.T) {
	preset := filepath.Join(t.TempDir(), "preset.yml")
	require.NoError(t, os.WriteFile(preset, []byte("build_type: 1\nwith_cuda: true\nbla_vendor: OpenBLAS\n"), 0600))

	args := append([]string{"flags", "--preset", preset}, requiredArgs(t)...)
	out, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "-DCMAKE_BUILD_TYPE=1\n")
	assert.Contains(t, out, "-DENABLE_CUDA=ON\n")
	assert.Contains(t, out, "-DBLA_VENDOR=OpenBLAS\n")
}

func TestMissingRequiredOptions(t *testing.T) {
	exec := &scriptedExecutor{}
	useExecutor(t, exec)

	_, err := runCLI(t, "--source_path", "/src")
	require.Error(t, err)
	assert.True(t, eris.Is(err, buildsys.ErrUsage))
	assert.Equal(t, 2, exitCode(err, io.Discard))
	assert.Empty(t, exec.calls)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := runCLI(t, "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err, io.Discard))
}

func TestBuildRunsAllLibraries(t *testing.T) {
	exec := &scriptedExecutor{}
	useExecutor(t, exec)

	_, err := runCLI(t, requiredArgs(t)...)
	require.NoError(t, err)
	assert.Len(t, exec.calls, 2*len(buildsys.Libraries()))
	assert.Equal(t, 0, exitCode(err, io.Discard))
}

func TestBuildFailureExitCode(t *testing.T) {
	exec := &scriptedExecutor{fail: "AMD"}
	useExecutor(t, exec)

	args := append(requiredArgs(t), "--cmake", "/usr/bin/cmake")
	_, err := runCLI(t, args...)
	require.Error(t, err)
	assert.Len(t, exec.calls, 5)

	stdout := &bytes.Buffer{}
	assert.Equal(t, 1, exitCode(err, stdout))
	assert.True(t, strings.HasPrefix(stdout.String(), "Command failed: /usr/bin/cmake -S "))
	assert.Contains(t, stdout.String(), filepath.Join("src", "AMD"))
}

func TestDryRunExecutesNothing(t *testing.T) {
	exec := &scriptedExecutor{}
	useExecutor(t, exec)

	args := requiredArgs(t)
	_, err := runCLI(t, append(args, "--dry")...)
	require.NoError(t, err)
	assert.Empty(t, exec.calls)

	_, statErr := os.Stat(args[3])
	assert.True(t, os.IsNotExist(statErr))
}

func TestExitCodeOtherErrors(t *testing.T) {
	out := &bytes.Buffer{}
	previous := pkg.Stdout
	pkg.Stdout = out
	t.Cleanup(func() {
		pkg.Stdout = previous
	})

	assert.Equal(t, 0, exitCode(nil, io.Discard))
	assert.Equal(t, 1, exitCode(eris.New("unexpected"), io.Discard))
	assert.Contains(t, out.String(), "unexpected")
}
