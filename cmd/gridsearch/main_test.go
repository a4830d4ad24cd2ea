package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario stores src in a temporary .hcl file and returns its path.
func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	return path
}

const corridor = `
grid {
  rows    = 5
  columns = 5
  start   = [0, 0]
  goal    = [4, 4]
}
search {
  heuristic = "chebyshev"
  diagonal  = true
}
`

const overshoot = `
grid {
  layout = [
    "S  ## ",
    "#     ",
    "# # # ",
    "#    #",
    "#  # G",
  ]
}
search {
  heuristic = "manhattan"
  diagonal  = true
}
`

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-scenario", writeScenario(t, corridor)})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Scenario loaded.")
	assert.Contains(t, s, "cost: 4\n")
	assert.Contains(t, s, "path length: 5\n")
	assert.Contains(t, s, "S    \n *   \n  *  \n   * \n    G\n")
}

func TestRun_FlagsOverrideScenario(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-diagonal=false", "-heuristic", "manhattan", writeScenario(t, corridor)})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cost: 8\n")
}

func TestRun_VerifyWarnsOnOvershoot(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-verify", writeScenario(t, overshoot)})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "not admissible")
	assert.Contains(t, s, "cost: 6\n")
	assert.Contains(t, s, "optimal: 5\n")
	assert.Contains(t, s, "Path is longer than optimal.")
}

func TestRun_WarnsForEuclideanDiagonal(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-rows", "4", "-columns", "4", "-density", "0", "-heuristic", "euclidean", "-diagonal"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not admissible")
	assert.Contains(t, out.String(), "heuristic=euclidean")

	out.Reset()
	err = run(out, []string{"-rows", "4", "-columns", "4", "-density", "0", "-heuristic", "euclidean"})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "not admissible")
}

func TestRun_NoPath(t *testing.T) {
	t.Parallel()

	src := `
grid {
  layout = ["S#G"]
}
`
	out := &bytes.Buffer{}
	err := run(out, []string{"-log-format", "json", writeScenario(t, src)})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no path found")
	assert.Contains(t, out.String(), `"msg":"Scenario loaded."`)
}

func TestRun_RandomGrid(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-rows", "6", "-columns", "7", "-density", "0", "-diagonal", "-heuristic", "chebyshev", "-verify"})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Random grid generated.")
	assert.Contains(t, s, "cost: 6\n")
	assert.Contains(t, s, "optimal: 6\n")
	assert.NotContains(t, s, "longer than optimal")
}

func TestRun_SingleCell(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-rows", "1", "-columns", "1"})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "cost: 0\n")
	assert.Contains(t, s, "path length: 1\n")
	assert.Contains(t, s, "expansions: 0\n")
}

func TestRun_DebugLogsEngine(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-rows", "3", "-columns", "3", "-density", "0", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "astar: state transition")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"UnknownFlag", []string{"-bogus"}, 2},
		{"Heuristic", []string{"-heuristic", "octile"}, 2},
		{"LogFormat", []string{"-log-format", "xml"}, 2},
		{"LogLevel", []string{"-log-level", "loud"}, 2},
		{"Size", []string{"-rows", "0"}, 2},
		{"Density", []string{"-density", "1.5"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, tc.args)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tc.code, exitErr.Code)
		})
	}

	err := run(&bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "missing.hcl")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario: parse error")
}
