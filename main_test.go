package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghx_sizing/ghx"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSizeCommand(t *testing.T) {
	out, _, err := runCLI(t, "size", "examples/residential.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "residential")
	assert.Regexp(t, `configuration\s+line`, out)
	assert.Regexp(t, `bore holes\s+3\n`, out)
	assert.Regexp(t, `bore depth\s+243 ft`, out)
	assert.NotContains(t, out, "warning:")
}

func TestSizeCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, "size", "--json", "examples/residential.yaml")
	require.NoError(t, err)

	var res ghx.SizingResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Layout.NumBoreHoles)
	assert.Equal(t, 243.0, res.Layout.BoreDepth)
	assert.Equal(t, -8.5, res.GFunction[0].LnTOverTs)
}

func TestSizeCommandSIAndGFunction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.csv")
	out, _, err := runCLI(t, "size", "--si", "--gfunction", path, "examples/residential.yaml")
	require.NoError(t, err)
	assert.Regexp(t, `bore depth\s+74.07 m`, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, ghx.GFunctionPoints+1)
}

func TestSizeCommandWarnings(t *testing.T) {
	out, errOut, err := runCLI(t, "size", "examples/glycol-rectangle.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: user_override_risk")
	assert.Contains(t, errOut, "code=user_override_risk")
	assert.Contains(t, errOut, "equipment=glycol-rectangle")

	_, errOut, err = runCLI(t, "--log", "error", "size", "examples/glycol-rectangle.yaml")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "user_override_risk")
}

func TestSizeCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "size", "examples/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCLI(t, "--log", "loud", "size", "examples/residential.yaml")
	assert.Error(t, err)

	_, _, err = runCLI(t, "size")
	assert.Error(t, err)
}

func TestGFunctionCommand(t *testing.T) {
	out, _, err := runCLI(t, "gfunction", "--config", "line", "--holes", "3", "--ratio", "0.08")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, ghx.GFunctionPoints+1)
	assert.Equal(t, "ln_t_over_ts,g", lines[0])
	assert.Equal(t, "3.003,9.365", lines[ghx.GFunctionPoints])

	out, _, err = runCLI(t, "gfunction", "--holes", "4", "--ratio", "0.1")
	require.NoError(t, err)
	c, err := ghx.SelectGFunction(ghx.ConfigRectangle, 4, 0.1)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("3.003,%v", c[ghx.GFunctionPoints-1].G))

	_, _, err = runCLI(t, "gfunction", "--config", "single", "--ratio", "0.2")
	assert.ErrorIs(t, err, ghx.ErrRatioOutOfRange)
}

func TestWeatherCommand(t *testing.T) {
	var b strings.Builder
	b.WriteString("month,day,hour,temperature\n")
	days := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := 1; m <= 12; m++ {
		for d := 1; d <= days[m-1]; d++ {
			for h := 1; h <= 24; h++ {
				fmt.Fprintf(&b, "%d,%d,%d,%d\n", m, d, h, 5*m-10)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "site.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	out, _, err := runCLI(t, "weather", path)
	require.NoError(t, err)
	assert.Contains(t, out, "statistics:\n")
	assert.Contains(t, out, "heating_design_db: 23\n")
	assert.Contains(t, out, "cooling_design_db: 122\n")

	_, _, err = runCLI(t, "weather", "--interval", "15m", path)
	assert.Error(t, err)
}

func TestBatchAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, _, err := runCLI(t, "--db", db, "batch", "--progress=false", "-w", "2",
		"examples/residential.yaml", "examples/glycol-rectangle.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "residential"))
	assert.True(t, strings.HasPrefix(lines[2], "glycol-rectangle"))

	out, _, err = runCLI(t, "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "residential")
	assert.Contains(t, out, "glycol-rectangle")

	out, _, err = runCLI(t, "--db", db, "history", "--name", "residential")
	require.NoError(t, err)
	assert.NotContains(t, out, "glycol-rectangle")

	out, _, err = runCLI(t, "--db", db, "history", "--show", "1")
	require.NoError(t, err)
	assert.Regexp(t, `bore holes\s+3\n`, out)

	_, _, err = runCLI(t, "history")
	assert.Error(t, err)
}

func TestBatchFailure(t *testing.T) {
	out, errOut, err := runCLI(t, "batch", "--progress=false",
		"examples/residential.yaml", "examples/missing.yaml")
	assert.EqualError(t, err, "1 of 2 projects failed")
	assert.Contains(t, out, "examples/missing.yaml  error:")
	assert.Contains(t, errOut, "project=examples/missing.yaml")
}
