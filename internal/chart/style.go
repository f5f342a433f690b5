package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style controls how the chart is drawn. It never changes the chart geometry.
type Style struct {
	PageWidth  vg.Length
	PageHeight vg.Length

	// Margins around the plot as fractions of the page size.
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	FontSize vg.Length
	// AxisPadding separates the x axis from the data area so the bottom
	// labels have room between them.
	AxisPadding vg.Length

	Background    color.Color
	FrequencyGrid color.Color
	ImpedanceGrid color.Color
	Inductance    color.Color
	Capacitance   color.Color

	BoldWidth vg.Length
	ThinWidth vg.Length

	// DPI is used for raster output only.
	DPI int
}

// DefaultStyle returns an A3 landscape page with red frequency grid, green
// impedance grid and inductance lines, and blue capacitance lines.
func DefaultStyle() Style {
	return Style{
		PageWidth:     16.53 * vg.Inch,
		PageHeight:    11.69 * vg.Inch,
		MarginLeft:    0.05,
		MarginRight:   0.04,
		MarginTop:     0.03,
		MarginBottom:  0.06,
		FontSize:      vg.Points(10),
		AxisPadding:   vg.Points(20),
		Background:    color.White,
		FrequencyGrid: color.RGBA{R: 255, A: 255},
		ImpedanceGrid: color.RGBA{G: 128, A: 255},
		Inductance:    color.RGBA{G: 128, A: 255},
		Capacitance:   color.RGBA{B: 255, A: 255},
		BoldWidth:     vg.Points(1),
		ThinWidth:     vg.Points(0.5),
		DPI:           72,
	}
}

// LineWidth returns the stroke width for a series.
func (s Style) LineWidth(bold bool) vg.Length {
	if bold {
		return s.BoldWidth
	}
	return s.ThinWidth
}

// FamilyColor returns the stroke colour for a family.
func (s Style) FamilyColor(f Family) color.Color {
	switch f {
	case FrequencyGrid:
		return s.FrequencyGrid
	case ImpedanceGrid:
		return s.ImpedanceGrid
	case Capacitance:
		return s.Capacitance
	default:
		return s.Inductance
	}
}

// RoleColor returns the text colour for an annotation role.
func (s Style) RoleColor(r Role) color.Color {
	if r == RoleCapacitance {
		return s.Capacitance
	}
	return s.Inductance
}
