package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of c and its children to its default so
// package-level flag variables do not leak between runs.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			if err := sv.Replace(nil); err != nil {
				t.Fatalf("reset flag %s: %v", f.Name, err)
			}
		} else if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset flag %s: %v", f.Name, err)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(t, child)
	}
}

// execute runs the CLI against an in-memory filesystem and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(t, rootCmd)
	t.Setenv("HOME", t.TempDir())

	origFs, origInteractive := appFs, isInteractive
	appFs = afero.NewMemMapFs()
	isInteractive = func() bool { return false }
	t.Cleanup(func() {
		appFs = origFs
		isInteractive = origInteractive
	})

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "langgpt builds LangGPT-style role prompts and critiques existing prompts.")
	assert.Contains(t, out, "Usage:")
	for _, sub := range []string{"generate", "analyze", "optimize", "roles", "mcp", "serve", "config", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", GetVersion())

	out, err := execute(t, "", "version", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n", out)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("LANGGPT_LOG_LEVEL", "loud")
	_, err := execute(t, "", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
