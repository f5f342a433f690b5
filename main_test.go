package main

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubViewer replaces the window with a recorder for the duration of a test.
func stubViewer(t *testing.T) *[]string {
	t.Helper()
	var titles []string
	prev := showChart
	showChart = func(title string, img image.Image) error {
		titles = append(titles, title)
		return nil
	}
	t.Cleanup(func() { showChart = prev })
	return &titles
}

func TestRunWritesPDFTwice(t *testing.T) {
	stubViewer(t)
	out := filepath.Join(t.TempDir(), "reactancechart.pdf")
	opts := &options{output: out, logLevel: "error"}

	for i := 0; i < 2; i++ {
		require.NoError(t, run(context.Background(), opts))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotEmpty(t, data, "run %d", i)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	}
}

func TestRunShowsChart(t *testing.T) {
	titles := stubViewer(t)
	cfg := writeConfig(t, "viewer:\n  title: Test chart\n  dpi: 10\n")
	out := filepath.Join(t.TempDir(), "chart.pdf")

	opts := &options{configFile: cfg, output: out, logLevel: "error", show: true}
	require.NoError(t, run(context.Background(), opts))
	assert.Equal(t, []string{"Test chart"}, *titles)
}

func TestRunWatchRequiresConfig(t *testing.T) {
	opts := &options{watch: true, logLevel: "info"}
	assert.ErrorContains(t, run(context.Background(), opts), "--watch requires --config")
}

func TestRunRejectsBadOutput(t *testing.T) {
	opts := &options{output: filepath.Join(t.TempDir(), "chart.gif"), logLevel: "info"}
	assert.ErrorContains(t, run(context.Background(), opts), "unsupported output format")
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	opts := &options{logLevel: "loud"}
	assert.Error(t, run(context.Background(), opts))
}

func TestRunWatchStopsOnCancel(t *testing.T) {
	stubViewer(t)
	dir := t.TempDir()
	cfg := writeConfig(t, "samples: 10\n")
	opts := &options{configFile: cfg, output: filepath.Join(dir, "chart.pdf"), logLevel: "error", watch: true, show: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, opts))
	_, err := os.Stat(opts.output)
	assert.NoError(t, err)
}

func TestRegenerateKeepsChartOnBadConfig(t *testing.T) {
	buf := captureLogs(t, "warn")
	out := filepath.Join(t.TempDir(), "chart.pdf")
	cfg := writeConfig(t, "samples: 0\n")

	regenerate(&options{configFile: cfg, output: out})
	assert.Contains(t, buf.String(), "keeping previous chart")
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "output", "log-level", "debug", "show", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "true", cmd.Flags().Lookup("show").DefValue)

	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandGeneratesChart(t *testing.T) {
	stubViewer(t)
	out := filepath.Join(t.TempDir(), "chart.svg")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--output", out, "--show=false", "--log-level", "error"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
