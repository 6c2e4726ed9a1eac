package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartroute/entry"
)

var campusConfig = filepath.Join("..", "..", "config", "testdata", "campus.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := run(t, "plan", "-c", campusConfig, "--stops", "Dropoff,Atrium,C024,F012")
	require.NoError(t, err)

	assert.Contains(t, out, "Route ")
	assert.Contains(t, out, "(return)")
	assert.Contains(t, out, "seed ")
	first := strings.Split(out, "\n")[2]
	assert.Contains(t, first, "Dropoff →", "tour starts at the source")
}

func TestPlanCommand_LCDFrames(t *testing.T) {
	out, err := run(t, "plan", "-c", campusConfig, "--stops", "Dropoff,G010", "--lcd", "--no-return")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "→G010         20", lines[0])
}

func TestPlanCommand_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.prom")
	_, err := run(t, "plan", "-c", campusConfig, "--stops", "Veranda,B888,Y249", "--source", "B888", "--metrics-out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cartroute_plans_total{outcome="ok"}`)
}

func TestPlanCommand_Errors(t *testing.T) {
	_, err := run(t, "plan", "-c", campusConfig, "--stops", "Dropoff,Gym")
	assert.ErrorContains(t, err, "unknown location")

	_, err = run(t, "plan", "-c", campusConfig, "--stops", "Dropoff,Dropoff")
	assert.ErrorContains(t, err, "duplicate stop")

	t.Setenv(envConfig, "")
	_, err = run(t, "plan")
	assert.ErrorIs(t, err, errNoConfig)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(envConfig, campusConfig)
	out, err := run(t, "matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "Dropoff")
	assert.Contains(t, out, "*25")
}

func TestEntriesCommand_Demo(t *testing.T) {
	out, err := run(t, "entries", "--in-memory", "--demo")
	require.NoError(t, err)

	assert.Contains(t, out, "postponed")
	assert.Contains(t, out, "timeout")
	// Atrium: flags 5 + full deadline share 10; C024 delivered, so absent.
	assert.Contains(t, out, "7:15")
	assert.NotContains(t, out, "6:")
}

func TestEntriesCommand_Persistent(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "entries", "--db", dir, "--demo")
	require.NoError(t, err)

	out, err := run(t, "entries", "--db", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "absent")
}

func TestPostsTable_ColumnsAligned(t *testing.T) {
	out := postsTable([]entry.PostEntry{
		{Dict: 2, Prio: 10, EID: 1, OID: 1, Status: entry.Postponed},
		{Dict: 12, Prio: 7, EID: 200, OID: 3, Status: entry.OK, Since: 70000},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6, "top, header, rule, two rows, bottom")
	width := lipgloss.Width(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), "line %q", l)
	}
	assert.Contains(t, lines[1], "STATUS")
	assert.Contains(t, lines[3], "postponed")
	assert.Contains(t, lines[4], "70000")
}
