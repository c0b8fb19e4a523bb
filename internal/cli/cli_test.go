package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// initZoo writes the sample layout into a fresh config directory and returns
// the directory.
func initZoo(t *testing.T) string {
	t.Helper()
	t.Setenv("ZOO_LAYOUT", "")
	t.Setenv("ZOO_LOG_LEVEL", "")
	dir := t.TempDir()
	out, _, err := runCLI(t, "init", "--config-dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Zoo initialized successfully")
	return dir
}

// exitCode returns the exit code Execute would use for err.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

func TestInitWritesConfigAndLayout(t *testing.T) {
	dir := initZoo(t)

	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "zoo.yaml"))

	out, _, err := runCLI(t, "init", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "(kept)")
	assert.NotContains(t, out, "(created)")
}

func TestInitWithExplicitLayout(t *testing.T) {
	t.Setenv("ZOO_LAYOUT", "")
	dir := t.TempDir()
	layout := filepath.Join(t.TempDir(), "park.yaml")

	_, _, err := runCLI(t, "init", "--config-dir", dir, "--layout", layout)
	require.NoError(t, err)
	assert.FileExists(t, layout)
	assert.NoFileExists(t, filepath.Join(dir, "zoo.yaml"))

	out, _, err := runCLI(t, "unreachable", "--config-dir", dir)
	require.NoError(t, err, "config.yaml points at the explicit layout")
	assert.Equal(t, "4\tpicnic\n", out)
}

func TestVersion(t *testing.T) {
	t.Setenv("ZOO_LOG_LEVEL", "")
	out, _, err := runCLI(t, "version", "--config-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "zoo v")
	assert.Contains(t, out, "module: github.com/ngoguened/zoo")
}

func TestPathCheck(t *testing.T) {
	dir := initZoo(t)

	tests := []struct {
		name     string
		path     []string
		wantOut  string
		wantCode int
	}{
		{name: "loop through every habitat", path: []string{"0", "1", "2", "3", "0"}, wantOut: "allowed\n"},
		{name: "single area", path: []string{"4"}, wantOut: "allowed\n"},
		{name: "missing edge", path: []string{"0", "2"}, wantOut: "not allowed\n", wantCode: exitUserError},
		{name: "unknown area", path: []string{"0", "9"}, wantOut: "not allowed\n", wantCode: exitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"path", "check", "--config-dir", dir}, tt.path...)
			out, _, err := runCLI(t, args...)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantCode, exitCode(err))
		})
	}
}

func TestPathCheckJSON(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "path", "check", "--config-dir", dir, "--json", "0", "1")
	require.NoError(t, err)

	var got struct {
		Path    []int `json:"path"`
		Allowed bool  `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{0, 1}, got.Path)
	assert.True(t, got.Allowed)
}

func TestPathCheckRejectsNonNumericIDs(t *testing.T) {
	dir := initZoo(t)

	_, _, err := runCLI(t, "path", "check", "--config-dir", dir, "0", "savannah")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid area id "savannah"`)
}

func TestVisit(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "visit", "--config-dir", dir, "0", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "Stripes\nDash\nBlubber\nStar\nPolly\n", out)

	out, _, err = runCLI(t, "visit", "--config-dir", dir, "0")
	require.NoError(t, err)
	assert.Equal(t, "no animals seen\n", out)

	_, _, err = runCLI(t, "visit", "--config-dir", dir, "2", "1")
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Contains(t, err.Error(), "path is not allowed")
}

func TestUnreachable(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "unreachable", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "4\tpicnic\n", out)

	out, _, err = runCLI(t, "unreachable", "--config-dir", dir, "--json")
	require.NoError(t, err)
	var ids []int
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	assert.Equal(t, []int{4}, ids)
}

func TestAreas(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "areas", "--config-dir", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "PATHS TO")
	assert.Contains(t, lines[2], "savannah")
	assert.Contains(t, lines[2], "2/4")
	assert.Contains(t, lines[2], "Stripes, Dash")

	out, _, err = runCLI(t, "areas", "--config-dir", dir, "--json")
	require.NoError(t, err)
	var views []areaView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 5)
	assert.Equal(t, "entrance", views[0].Name)
	assert.Equal(t, []int{1}, views[0].Adjacent)
	assert.Equal(t, "aviary", views[3].Name)
	assert.Equal(t, []string{"Polly"}, views[3].Residents)
	assert.False(t, views[4].Habitat)
}

func TestPlace(t *testing.T) {
	dir := initZoo(t)

	tests := []struct {
		name     string
		area     string
		species  string
		wantOut  string
		wantCode int
	}{
		{name: "fits", area: "3", species: "parrot", wantOut: "animal_added\n"},
		{name: "case-insensitive species", area: "1", species: "Zebra", wantOut: "animal_added\n"},
		{name: "human area", area: "4", species: "parrot", wantOut: "not_a_habitat\n", wantCode: exitUserError},
		{name: "wrong habitat", area: "2", species: "lion", wantOut: "wrong_habitat\n", wantCode: exitUserError},
		{name: "incompatible", area: "3", species: "buzzard", wantOut: "incompatible_inhabitants\n", wantCode: exitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "place", "--config-dir", dir,
				"--area", tt.area, "--species", tt.species, "--nickname", "Newcomer")
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantCode, exitCode(err))
		})
	}
}

func TestPlaceUnknownSpecies(t *testing.T) {
	dir := initZoo(t)

	_, _, err := runCLI(t, "place", "--config-dir", dir, "--area", "1", "--species", "unicorn", "--nickname", "Sparkle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unicorn")
}

func TestPay(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "pay", "--config-dir", dir, "--cash", "1000=1")
	require.NoError(t, err)
	assert.Equal(t, "accepted: fee £5.00, change £5 x1 (£5.00)\n", out)

	out, _, err = runCLI(t, "pay", "--config-dir", dir, "--cash", "200=1", "--cash", "200=1")
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Contains(t, out, "refused:")
	assert.Contains(t, out, "returned: £2 x2")

	out, _, err = runCLI(t, "pay", "--config-dir", dir, "--json", "--cash", "500=1")
	require.NoError(t, err)
	var view struct {
		Fee      string      `json:"fee"`
		Returned map[int]int `json:"returned"`
		Accepted bool        `json:"accepted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "£5.00", view.Fee)
	assert.True(t, view.Accepted)
	assert.Empty(t, view.Returned)
}

func TestPayRejectsBadCash(t *testing.T) {
	dir := initZoo(t)

	for _, cash := range []string{"1000", "25=1", "ten=1", "100=x"} {
		_, _, err := runCLI(t, "pay", "--config-dir", dir, "--cash", cash)
		assert.Error(t, err, "cash %q", cash)
	}
}

func TestChange(t *testing.T) {
	dir := initZoo(t)

	out, _, err := runCLI(t, "change", "--config-dir", dir, "370")
	require.NoError(t, err)
	assert.Equal(t, "£2 x1, £1 x1, 50p x1, 20p x1\n", out)

	_, _, err = runCLI(t, "change", "--config-dir", dir, "5")
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Contains(t, err.Error(), "cannot make exact change")
}

func TestLayoutFileFromFlag(t *testing.T) {
	t.Setenv("ZOO_LOG_LEVEL", "")
	layout := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(layout, []byte(`fee:
  pounds: 2
  pence: 50
cash:
  50: 1
areas:
  - name: lawn
    kind: picnic area
  - name: paddock
    kind: Enclosure
    capacity: 2
connections:
  - from: entrance
    to: lawn
    bidirectional: true
  - from: lawn
    to: paddock
animals:
  - nickname: Marty
    species: Zebra
    area: paddock
`), 0o644))

	out, _, err := runCLI(t, "visit", "--config-dir", t.TempDir(), "--layout", layout, "0", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Marty\n", out)

	out, _, err = runCLI(t, "pay", "--config-dir", t.TempDir(), "--layout", layout, "--cash", "200=1", "--cash", "100=1")
	require.NoError(t, err)
	assert.Equal(t, "accepted: fee £2.50, change 50p x1 (£0.50)\n", out)
}

func TestLayoutEnvOverridesConfig(t *testing.T) {
	dir := initZoo(t)
	layout := filepath.Join(t.TempDir(), "pond.yaml")
	require.NoError(t, os.WriteFile(layout, []byte(`areas:
  - name: pond
    kind: aquarium
    capacity: 1
connections:
  - from: entrance
    to: pond
animals:
  - nickname: Splash
    species: seal
    area: pond
`), 0o644))

	t.Setenv("ZOO_LAYOUT", layout)
	out, _, err := runCLI(t, "visit", "--config-dir", dir, "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "Splash\n", out)
}

func TestBrokenLayoutIsReported(t *testing.T) {
	t.Setenv("ZOO_LOG_LEVEL", "")
	layout := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(layout, []byte(`areas:
  - name: tank
    kind: aquarium
    capacity: 1
animals:
  - nickname: Leo
    species: lion
    area: tank
`), 0o644))

	_, _, err := runCLI(t, "unreachable", "--config-dir", t.TempDir(), "--layout", layout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong_habitat")
}

func TestMissingLayoutIsReported(t *testing.T) {
	t.Setenv("ZOO_LOG_LEVEL", "")
	_, _, err := runCLI(t, "areas", "--config-dir", t.TempDir(), "--layout", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read layout")
}

func TestLogLevelFlag(t *testing.T) {
	dir := initZoo(t)

	_, stderr, err := runCLI(t, "unreachable", "--config-dir", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "layout loaded")

	_, stderr, err = runCLI(t, "unreachable", "--config-dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "layout loaded")

	_, _, err = runCLI(t, "unreachable", "--config-dir", dir, "--log-level", "loud")
	assert.Error(t, err)
}
