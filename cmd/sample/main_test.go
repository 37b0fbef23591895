package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the command tree with args against a config path inside a
// temp dir, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SAMPLE_NAME", "")
	t.Setenv("SAMPLE_LOG_LEVEL", "")
	t.Setenv("SAMPLE_DEBUG", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	hasConfig := false
	for _, a := range args {
		if a == "--config" || a == "-c" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", filepath.Join(t.TempDir(), "sample.yaml"))
	}
	cmd.SetArgs(protectNegativeInts(cmd, args))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootPrintsEntrySequence(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "30\n42\n", out)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRootUsesConfigLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample:\n  a: 1\n  b: 2\n  held_value: 0\n"), 0644))

	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "3\n0\n", out)
}

func TestRootInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: chatty\n"), 0644))

	_, err := execute(t, "--config", path)
	assert.Error(t, err)
}

func TestGreet(t *testing.T) {
	out, err := execute(t, "greet")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", out)

	out, err = execute(t, "greet", "Gopher")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Gopher!\n", out)
}

func TestSquares(t *testing.T) {
	out, err := execute(t, "squares")
	require.NoError(t, err)
	assert.Equal(t, "4 16\n", out)

	out, err = execute(t, "squares", "6", "7", "8")
	require.NoError(t, err)
	assert.Equal(t, "36 64\n", out)

	out, err = execute(t, "squares", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestSquaresInvalidArg(t *testing.T) {
	_, err := execute(t, "squares", "two")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	out, err := execute(t, "add", "10", "20")
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)

	_, err = execute(t, "add", "10")
	assert.Error(t, err)

	_, err = execute(t, "add", "10", "x")
	assert.Error(t, err)
}

func TestVerboseKeepsStdoutClean(t *testing.T) {
	out, err := execute(t, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "30\n42\n", out)
}

func TestAddNegativeOperands(t *testing.T) {
	out, err := execute(t, "add", "-7", "7")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = execute(t, "add", "-7", "-8")
	require.NoError(t, err)
	assert.Equal(t, "-15\n", out)

	out, err = execute(t, "-v", "add", "5", "-9")
	require.NoError(t, err)
	assert.Equal(t, "-4\n", out)
}

func TestSquaresNegativeOperands(t *testing.T) {
	out, err := execute(t, "squares", "-2", "3")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = execute(t, "squares", "1", "-4", "--verbose", "6")
	require.NoError(t, err)
	assert.Equal(t, "16 36\n", out)
}

func TestAddOverflow(t *testing.T) {
	_, err := execute(t, "add", strconv.Itoa(math.MaxInt), "1")
	assert.ErrorContains(t, err, "overflow")

	_, err = execute(t, "add", strconv.Itoa(math.MinInt), "-1")
	assert.ErrorContains(t, err, "overflow")
}

func TestSquaresOverflow(t *testing.T) {
	out, err := execute(t, "squares", "2", strconv.Itoa(math.MaxInt/2+1))
	assert.ErrorContains(t, err, "overflow")
	assert.Empty(t, out)
}

func TestRootOverflowingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	cfg := "sample:\n  a: " + strconv.Itoa(math.MaxInt) + "\n  b: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	out, err := execute(t, "--config", path)
	assert.ErrorContains(t, err, "overflow")
	assert.Empty(t, out)
}

func TestProtectNegativeInts(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no negatives",
			in:   []string{"add", "1", "2", "-v"},
			want: []string{"add", "1", "2", "-v"},
		},
		{
			name: "negative operand",
			in:   []string{"add", "-7", "7"},
			want: []string{"add", "--", "-7", "7"},
		},
		{
			name: "flags after negative move ahead",
			in:   []string{"squares", "-2", "--config", "x.yaml", "3", "-v"},
			want: []string{"squares", "--config", "x.yaml", "-v", "--", "-2", "3"},
		},
		{
			name: "config value before negative is not an operand",
			in:   []string{"-c", "x.yaml", "add", "-1", "1"},
			want: []string{"-c", "x.yaml", "add", "--", "-1", "1"},
		},
		{
			name: "existing terminator kept",
			in:   []string{"add", "--", "-1", "1"},
			want: []string{"add", "--", "-1", "1"},
		},
		{
			name: "terminator after negative",
			in:   []string{"squares", "-2", "--", "-v"},
			want: []string{"squares", "--", "-2", "-v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := protectNegativeInts(root, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("protectNegativeInts(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
