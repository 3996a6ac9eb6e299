package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/golden-spiral/config"
	"github.com/lixenwraith/golden-spiral/observability"
	"github.com/lixenwraith/golden-spiral/sequence"
)

// executeCommand runs a fresh root with args, returning stdout and stderr
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "golden-spiral "+Version+"\n", out)

	out, _, err = executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "golden-spiral "+Version+"\n", out)
}

func TestRootHelp(t *testing.T) {
	out, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Fibonacci golden-spiral")
	for _, sub := range []string{"run", "geometry", "ratios", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGeometryText(t *testing.T) {
	out, _, err := executeCommand(t, "geometry", "-n", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "squares=5 viewport=800.0x600.0")
	assert.Contains(t, out, "scale=90.0000")
	assert.Contains(t, out, "magnitude")
	assert.Contains(t, out, "radius")

	// Header plus five squares, blank separator, arc header plus five arcs
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3+1+5+1+1+5)
}

func TestGeometryJSON(t *testing.T) {
	out, _, err := executeCommand(t, "geometry", "--squares", "5", "--format", "json")
	require.NoError(t, err)

	var d geometryDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 90.0, d.Scale, 1e-9)
	assert.Equal(t, 3, d.ClosestRatio)
	assert.Equal(t, 2, d.Reveal.Phase)
	require.Len(t, d.Squares, 5)
	require.Len(t, d.Arcs, 5)
	assert.Equal(t, "5", d.Squares[4].Label)
	assert.InDelta(t, -360.0, d.Squares[3].Position.X, 1e-9)
	assert.InDelta(t, -225.0, d.Squares[3].Position.Y, 1e-9)
	assert.Equal(t, 0.0, d.Arcs[0].StartAngle)
	assert.Equal(t, 90.0, d.Arcs[0].Sweep)
}

func TestGeometryProgress(t *testing.T) {
	out, _, err := executeCommand(t, "geometry", "-n", "4", "-f", "json", "-p", "0.25")
	require.NoError(t, err)

	var d geometryDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 1, d.Reveal.Phase)
	assert.Len(t, d.Squares, 2)
	assert.Empty(t, d.Arcs)
}

func TestGeometryViewportFlags(t *testing.T) {
	out, _, err := executeCommand(t, "geometry", "-n", "3", "--width", "200", "--height", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "viewport=200.0x100.0")
}

func TestGeometryErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"Zero squares", []string{"geometry", "-n", "0"}, config.ErrInvalidConfig},
		{"Negative width", []string{"geometry", "--width=-5"}, config.ErrInvalidConfig},
		{"Unknown format", []string{"geometry", "-f", "xml"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSquareCountBeyondInt64Rejected(t *testing.T) {
	for _, args := range [][]string{
		{"geometry", "-n", "100"},
		{"geometry", "-n", "93", "-f", "json"},
		{"ratios", "-n", "100"},
	} {
		out, _, err := executeCommand(t, args...)
		assert.ErrorIs(t, err, sequence.ErrInvalidArgument, "%v", args)
		assert.Empty(t, out, "%v", args)
	}

	out, _, err := executeCommand(t, "geometry", "-n", "92", "-f", "json")
	require.NoError(t, err)
	var d geometryDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "7540113804746346429", d.Squares[91].Label)
}

func TestRatios(t *testing.T) {
	out, _, err := executeCommand(t, "ratios", "-n", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "phi=1.618033988749895")
	assert.Contains(t, out, "5/3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+4)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[5]), "*"), lines[5])
	assert.NotContains(t, lines[2], "*")
}

func TestRatiosSingleTerm(t *testing.T) {
	out, _, err := executeCommand(t, "ratios", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "no ratios")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiral.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spiral:\n  squares: 3\n"), 0o644))

	out, _, err := executeCommand(t, "geometry", "--config", path, "-f", "json")
	require.NoError(t, err)

	var d geometryDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 3, d.Count)

	// Flags win over the file
	out, _, err = executeCommand(t, "geometry", "--config", path, "-f", "json", "-n", "6")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 6, d.Count)
}

func TestConfigFileMissing(t *testing.T) {
	_, _, err := executeCommand(t, "geometry", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SPIRAL_SPIRAL_SQUARES", "2")

	out, _, err := executeCommand(t, "geometry", "-f", "json")
	require.NoError(t, err)

	var d geometryDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 2, d.Count)
}

func TestRunRejectsCountOutsideRange(t *testing.T) {
	_, _, err := executeCommand(t, "run", "-n", "16")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
