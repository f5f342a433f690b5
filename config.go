package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"reactancechart/internal/chart"
)

// DefaultOutputPath is where the chart is written when nothing else is set.
const DefaultOutputPath = "reactancechart.pdf"

// Config represents the presentation settings of the reactance chart.
// The chart geometry (decades, labels, ticks) is fixed; this only covers how
// and where it is drawn. It maps directly to a YAML file:
//   - output: file path and raster DPI (used for .png output)
//   - page: page size in inches and margins as fractions of the page
//   - font: label size in points
//   - colors: hex colour codes for the grid and both component families
//   - lines: stroke widths in points for decade (bold) and other lines
//   - samples: number of frequency samples per curve
type Config struct {
	Output struct {
		Path string `yaml:"path"` // Output file; the extension selects pdf, svg or png
		DPI  int    `yaml:"dpi"`  // Resolution for png output
	} `yaml:"output"`
	Viewer struct {
		Title string `yaml:"title"` // Window title
		DPI   int    `yaml:"dpi"`   // Resolution the chart is rasterised at for display
	} `yaml:"viewer"`
	Page struct {
		WidthIn      float64 `yaml:"width_in"`
		HeightIn     float64 `yaml:"height_in"`
		MarginLeft   float64 `yaml:"margin_left"`   // Fraction of page width
		MarginRight  float64 `yaml:"margin_right"`  // Fraction of page width
		MarginTop    float64 `yaml:"margin_top"`    // Fraction of page height
		MarginBottom float64 `yaml:"margin_bottom"` // Fraction of page height
		AxisPadding  float64 `yaml:"axis_padding"`  // Gap between x axis and data area, in points
	} `yaml:"page"`
	Font struct {
		Size float64 `yaml:"size"` // Label and tick size in points
	} `yaml:"font"`
	Colors struct {
		Background    string `yaml:"background"`
		FrequencyGrid string `yaml:"frequency_grid"`
		ImpedanceGrid string `yaml:"impedance_grid"`
		Inductance    string `yaml:"inductance"`
		Capacitance   string `yaml:"capacitance"`
	} `yaml:"colors"`
	Lines struct {
		BoldWidth float64 `yaml:"bold_width"` // Width of digit-1 lines in points
		ThinWidth float64 `yaml:"thin_width"` // Width of all other lines in points
	} `yaml:"lines"`
	Samples int `yaml:"samples"`
}

// getDefaultConfig returns the configuration that reproduces the classic
// chart: an A3 landscape PDF named reactancechart.pdf, red frequency grid,
// green impedance grid and inductance lines, blue capacitance lines.
func getDefaultConfig() Config {
	var config Config
	config.Output.Path = DefaultOutputPath
	config.Output.DPI = 150
	config.Viewer.Title = "Reactance chart"
	config.Viewer.DPI = 72

	config.Page.WidthIn = 16.53
	config.Page.HeightIn = 11.69
	config.Page.MarginLeft = 0.05
	config.Page.MarginRight = 0.04
	config.Page.MarginTop = 0.03
	config.Page.MarginBottom = 0.06
	config.Page.AxisPadding = 20

	config.Font.Size = 10

	config.Colors.Background = "#ffffff"
	config.Colors.FrequencyGrid = "#ff0000"
	config.Colors.ImpedanceGrid = "#008000"
	config.Colors.Inductance = "#008000"
	config.Colors.Capacitance = "#0000ff"

	config.Lines.BoldWidth = 1
	config.Lines.ThinWidth = 0.5

	config.Samples = chart.DefaultSamples
	return config
}

// loadConfig reads a YAML file over the defaults, so a file only needs the
// keys it changes. An empty path returns the defaults.
func loadConfig(configPath string) (Config, error) {
	config := getDefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// Validate reports the first setting that cannot produce a chart.
func (c Config) Validate() error {
	if c.Output.Path == "" {
		return errors.New("output.path must not be empty")
	}
	if _, err := chart.FormatFromPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	if c.Output.DPI <= 0 || c.Viewer.DPI <= 0 {
		return errors.New("output.dpi and viewer.dpi must be positive")
	}
	if c.Page.WidthIn <= 0 || c.Page.HeightIn <= 0 {
		return fmt.Errorf("page size %gx%g in must be positive", c.Page.WidthIn, c.Page.HeightIn)
	}
	margins := []float64{c.Page.MarginLeft, c.Page.MarginRight, c.Page.MarginTop, c.Page.MarginBottom}
	for _, m := range margins {
		if m < 0 {
			return fmt.Errorf("page margin %g must not be negative", m)
		}
	}
	if c.Page.MarginLeft+c.Page.MarginRight >= 1 || c.Page.MarginTop+c.Page.MarginBottom >= 1 {
		return errors.New("page margins leave no room for the chart")
	}
	if c.Font.Size <= 0 {
		return errors.New("font.size must be positive")
	}
	if c.Lines.BoldWidth <= 0 || c.Lines.ThinWidth <= 0 {
		return errors.New("line widths must be positive")
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	colors := map[string]string{
		"background":     c.Colors.Background,
		"frequency_grid": c.Colors.FrequencyGrid,
		"impedance_grid": c.Colors.ImpedanceGrid,
		"inductance":     c.Colors.Inductance,
		"capacitance":    c.Colors.Capacitance,
	}
	for name, value := range colors {
		if _, err := parseHexColor(value); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

// Style converts the configuration into drawing parameters. It assumes the
// configuration has been validated; unparsable colours fall back to black.
func (c Config) Style() chart.Style {
	s := chart.DefaultStyle()
	s.PageWidth = vg.Length(c.Page.WidthIn) * vg.Inch
	s.PageHeight = vg.Length(c.Page.HeightIn) * vg.Inch
	s.MarginLeft = c.Page.MarginLeft
	s.MarginRight = c.Page.MarginRight
	s.MarginTop = c.Page.MarginTop
	s.MarginBottom = c.Page.MarginBottom
	s.AxisPadding = vg.Points(c.Page.AxisPadding)
	s.FontSize = vg.Points(c.Font.Size)
	s.Background = colorOrBlack(c.Colors.Background)
	s.FrequencyGrid = colorOrBlack(c.Colors.FrequencyGrid)
	s.ImpedanceGrid = colorOrBlack(c.Colors.ImpedanceGrid)
	s.Inductance = colorOrBlack(c.Colors.Inductance)
	s.Capacitance = colorOrBlack(c.Colors.Capacitance)
	s.BoldWidth = vg.Points(c.Lines.BoldWidth)
	s.ThinWidth = vg.Points(c.Lines.ThinWidth)
	s.DPI = c.Output.DPI
	return s
}

// parseHexColor accepts "#rrggbb" and the short form "#rgb".
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(strings.TrimSpace(s), "#") {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func colorOrBlack(s string) color.Color {
	c, err := parseHexColor(s)
	if err != nil {
		return color.Black
	}
	return c
}
