package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"reactancechart/internal/chart"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := getDefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, "reactancechart.pdf", config.Output.Path)
	assert.Equal(t, 16.53, config.Page.WidthIn)
	assert.Equal(t, 11.69, config.Page.HeightIn)
	assert.Equal(t, chart.DefaultSamples, config.Samples)
}

func TestDefaultConfigMatchesDefaultStyle(t *testing.T) {
	got := getDefaultConfig().Style()
	want := chart.DefaultStyle()
	want.DPI = got.DPI

	assert.InDelta(t, float64(want.PageWidth), float64(got.PageWidth), 1e-9)
	assert.InDelta(t, float64(want.PageHeight), float64(got.PageHeight), 1e-9)
	got.PageWidth, got.PageHeight = want.PageWidth, want.PageHeight

	// color.White is a color.Gray16; compare as RGBA.
	assertSameColor(t, want.Background, got.Background)
	got.Background = want.Background
	assert.Equal(t, want, got)
}

func assertSameColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})
}

func TestLoadConfigEmptyPath(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
output:
  path: chart.svg
colors:
  capacitance: "#123456"
lines:
  bold_width: 2
`)
	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "chart.svg", config.Output.Path)
	assert.Equal(t, "#123456", config.Colors.Capacitance)
	assert.Equal(t, 2.0, config.Lines.BoldWidth)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.5, config.Lines.ThinWidth)
	assert.Equal(t, "#ff0000", config.Colors.FrequencyGrid)
	assert.Equal(t, 16.53, config.Page.WidthIn)

	s := config.Style()
	assert.Equal(t, vg.Points(2), s.BoldWidth)
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, s.Capacitance)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config file")

	_, err = loadConfig(writeConfig(t, "samples: [1, 2"))
	assert.ErrorContains(t, err, "error parsing config file")

	_, err = loadConfig(writeConfig(t, "samples: 1\n"))
	assert.ErrorContains(t, err, "samples must be at least 2")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty output", func(c *Config) { c.Output.Path = "" }, "output.path must not be empty"},
		{"bad extension", func(c *Config) { c.Output.Path = "chart.bmp" }, "unsupported output format"},
		{"zero dpi", func(c *Config) { c.Output.DPI = 0 }, "dpi"},
		{"zero width", func(c *Config) { c.Page.WidthIn = 0 }, "page size"},
		{"negative margin", func(c *Config) { c.Page.MarginTop = -0.1 }, "must not be negative"},
		{"margins too wide", func(c *Config) { c.Page.MarginLeft, c.Page.MarginRight = 0.5, 0.5 }, "no room"},
		{"zero font", func(c *Config) { c.Font.Size = 0 }, "font.size"},
		{"zero width line", func(c *Config) { c.Lines.ThinWidth = 0 }, "line widths"},
		{"bad colour", func(c *Config) { c.Colors.Inductance = "green" }, "colors.inductance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getDefaultConfig()
			tt.mutate(&config)
			assert.ErrorContains(t, config.Validate(), tt.want)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, c)

	c, err = parseHexColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, c)

	for _, bad := range []string{"", "ff8000", "#ff80", "#gg0000", "#ff800000"} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	config, err := loadConfig("reactancechart.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}
