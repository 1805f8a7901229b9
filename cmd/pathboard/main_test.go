// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/editor"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	a := &app{}
	t.Cleanup(a.close)
	root := a.rootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestExec_Stdin(t *testing.T) {
	script := "node 0 0\nnode 4 0\nedge 1 2 6\ndest 2\nrun\npath 2\n"
	out, _, err := run(t, script, "exec", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "solved: distance 6 via 1 -> 2")
	assert.True(t, strings.HasSuffix(out, "1 -> 2\n"))
}

func TestExec_FileStopsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.pb")
	require.NoError(t, os.WriteFile(path, []byte("node 0 0\nwarp 9\nnode 1 1\n"), 0o600))

	out, errOut, err := run(t, "", "exec", path)
	require.ErrorIs(t, err, editor.ErrUnknownCommand)
	assert.Contains(t, errOut, "line 2")
	assert.NotContains(t, out, "Node 2")

	out, _, err = run(t, "", "exec", "--keep-going", path)
	require.Error(t, err)
	assert.Contains(t, out, "added Node 2")
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "", "demo", "--shape", "path", "--size", "4", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "path(4) seed=3")
	assert.Contains(t, out, "nodes=4 edges=3 source=1 dest=4 solved=true")
	assert.Contains(t, out, "to Node 4")
	assert.Contains(t, out, "Node 4 (")
}

func TestDemo_BadShape(t *testing.T) {
	_, errOut, err := run(t, "", "demo", "--shape", "hexagon")
	require.Error(t, err)
	assert.Contains(t, errOut, "hexagon")
}

func TestConfigFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  shape: star\n  size: 3\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "star(3)")

	_, _, err = run(t, "", "--config", path, "--log-format", "xml", "version")
	assert.Error(t, err)
}

// A config value the flags replace is only validated after the replacement.
func TestConfigFlagOverride_FixesInvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: verbose\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "--log-level", "debug", "version")
	require.NoError(t, err)
	assert.Equal(t, "pathboard dev\n", out)

	a := &app{}
	t.Cleanup(a.close)
	root := a.rootCmd()
	var errOut bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&errOut)
	root.SetArgs([]string{"--config", path, "version"})
	require.ErrorIs(t, root.Execute(), config.ErrInvalidConfig)
	assert.Contains(t, errOut.String(), "verbose")
}

func TestConfigNodeRadius(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  node_radius: 5\n"), 0o600))

	_, errOut, err := run(t, "node 0 0\nnode 4 0\n", "--config", path, "exec", "-")
	require.ErrorIs(t, err, editor.ErrRejected)
	assert.Contains(t, errOut, "overlaps Node 1")

	out, _, err := run(t, "node 0 0\nnode 11 0\n", "--config", path, "exec", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "added Node 2")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pathboard dev\n", out)
}

func TestExec_ExampleScripts(t *testing.T) {
	cases := map[string]string{
		"city_route.pb": "solved: distance 14 via 1 -> 3 -> 2 -> 4 -> 6",
		"terrain.pb":    "solved: distance 8 via 1 -> 2 -> 5 -> 6",
		"islands.pb":    "solved: distance 9 via 1 -> 2 -> 4 -> 5",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "", "exec", filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)
			assert.Contains(t, out, want)
		})
	}
}
