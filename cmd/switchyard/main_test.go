package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "", "graph")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `off_hook -- "call_dialed" --> connecting`)
}

func TestDescribeCommand_Raw(t *testing.T) {
	out, err := execute(t, "", "describe", "--preset", "call", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "| `idle` | `dial` | `connecting` |")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("initial: a\nstates:\n  - name: a\n    rules:\n      - {trigger: go, to: b}\n  - name: b\n"), 0o644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("initial: a\nstates:\n  - name: a\n    rules:\n      - {trigger: go, to: nowhere}\n"), 0o644))

	out, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Definition is valid!")

	_, err = execute(t, "", "validate", bad)
	assert.ErrorContains(t, err, "validation failed")
}

func TestValidateCommand_Export(t *testing.T) {
	out, err := execute(t, "", "validate", "--export")
	require.NoError(t, err)
	assert.Contains(t, out, "initial: off_hook")
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "1\n1\n", "run", "--preset", "call")
	require.NoError(t, err)
	assert.Contains(t, out, "You are connected.")
	assert.Contains(t, out, ">>> Session ended at connected.")
}

func TestGoblinsCommand(t *testing.T) {
	out, err := execute(t, "", "goblins", "-n", "2", "--king")
	require.NoError(t, err)
	assert.Equal(t, "name: goblin-1 attack: 2 defense: 3\n"+
		"name: goblin-2 attack: 2 defense: 3\n"+
		"name: king attack: 3 defense: 5\n", out)
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "", "graph", "--preset", "teleporter")
	assert.ErrorContains(t, err, `unknown preset "teleporter"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "switchyard version "))
}
