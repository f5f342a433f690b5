/*
Package chart builds a reactance chart: a log-log plot of frequency against
reactance magnitude with decade grid lines, constant-capacitance and
constant-inductance lines, and component value labels along the edges.

The geometry is fixed. Frequencies run over 10^1..10^9 Hz and reactances over
10^-3..10^7 Ω; only presentation (colours, widths, page) is configurable
through Style.
*/
package chart

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Chart limits as powers of ten.
const (
	FreqMinPow = 1
	FreqMaxPow = 9
	ImpMinPow  = -3
	ImpMaxPow  = 7
)

// Component decades drawn for each family. The ranges are inclusive.
const (
	CapMinPow = -15
	CapMaxPow = 0
	IndMinPow = -12
	IndMaxPow = 3
)

// DefaultSamples is the length of the frequency vector used for curves.
const DefaultSamples = 1000

// Family identifies which set of lines a Series belongs to.
type Family int

const (
	FrequencyGrid Family = iota
	ImpedanceGrid
	Capacitance
	Inductance
)

func (f Family) String() string {
	switch f {
	case FrequencyGrid:
		return "frequency-grid"
	case ImpedanceGrid:
		return "impedance-grid"
	case Capacitance:
		return "capacitance"
	case Inductance:
		return "inductance"
	}
	return "unknown"
}

// Series is one polyline on the chart.
type Series struct {
	Family Family
	Value  float64 // grid position in Hz/Ω, or component value in F/H
	Digit  int     // leading digit of Value
	Bold   bool
	XYs    plotter.XYs
}

// Chart holds everything needed to draw the reactance chart.
type Chart struct {
	Frequencies []float64
	Grid        []Series
	Capacitive  []Series
	Inductive   []Series
	Annotations []Annotation
	XTicks      []Tick
	YTicks      []Tick
}

// View is the visible window in data coordinates.
type View struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultView returns the visible window of the chart. The impedance axis is
// trimmed to 2*10^-3..2*10^6 so the edge labels fall just outside it.
func DefaultView() View {
	return View{
		XMin: pow10(FreqMinPow),
		XMax: pow10(FreqMaxPow),
		YMin: 2 * pow10(ImpMinPow),
		YMax: 2 * pow10(ImpMaxPow-1),
	}
}

// New computes the chart with n frequency samples per curve.
func New(n int) *Chart {
	f := Logspace(FreqMinPow, FreqMaxPow, n)
	return &Chart{
		Frequencies: f,
		Grid:        append(FrequencyGridLines(DefaultView()), ImpedanceGridLines(DefaultView())...),
		Capacitive:  CapacitiveFamily(f),
		Inductive:   InductiveFamily(f),
		Annotations: Annotations(),
		XTicks:      FrequencyTicks(),
		YTicks:      ImpedanceTicks(),
	}
}

// Series returns all series in drawing order: grid first, then capacitance,
// then inductance.
func (c *Chart) Series() []Series {
	all := make([]Series, 0, len(c.Grid)+len(c.Capacitive)+len(c.Inductive))
	all = append(all, c.Grid...)
	all = append(all, c.Capacitive...)
	all = append(all, c.Inductive...)
	return all
}

// Logspace returns n samples spaced evenly on a log scale from 10^start to
// 10^stop. Both end points are included exactly.
func Logspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{math.Pow(10, start)}
	}
	out := make([]float64, n)
	for i := range out {
		e := start + float64(i)*(stop-start)/float64(n-1)
		out[i] = math.Pow(10, e)
	}
	out[0] = math.Pow(10, start)
	out[n-1] = math.Pow(10, stop)
	return out
}

// CapacitiveReactance returns 1/(2πfC). C == 0 gives +Inf.
func CapacitiveReactance(f, c float64) float64 {
	return 1 / (2 * math.Pi * f * c)
}

// InductiveReactance returns 2πfL.
func InductiveReactance(f, l float64) float64 {
	return 2 * math.Pi * f * l
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x <= lo {
		return lo
	}
	if x >= hi {
		return hi
	}
	return x
}

// ReactanceCurve evaluates fn over freqs and clamps the result to the
// impedance bounds of the chart.
func ReactanceCurve(freqs []float64, fn func(f float64) float64) plotter.XYs {
	lo, hi := pow10(ImpMinPow), pow10(ImpMaxPow)
	xys := make(plotter.XYs, len(freqs))
	for i, f := range freqs {
		xys[i].X = f
		xys[i].Y = Clamp(fn(f), lo, hi)
	}
	return xys
}

// CapacitiveFamily computes the constant-capacitance lines for every decade
// in CapMinPow..CapMaxPow and every leading digit 0..9.
func CapacitiveFamily(freqs []float64) []Series {
	out := make([]Series, 0, (CapMaxPow-CapMinPow+1)*10)
	for x := CapMinPow; x <= CapMaxPow; x++ {
		for d := 0; d < 10; d++ {
			c := float64(d) * pow10(x)
			out = append(out, Series{
				Family: Capacitance,
				Value:  c,
				Digit:  d,
				Bold:   d == 1,
				XYs: ReactanceCurve(freqs, func(f float64) float64 {
					return CapacitiveReactance(f, c)
				}),
			})
		}
	}
	return out
}

// InductiveFamily computes the constant-inductance lines for every decade in
// IndMinPow..IndMaxPow and every leading digit 0..9.
func InductiveFamily(freqs []float64) []Series {
	out := make([]Series, 0, (IndMaxPow-IndMinPow+1)*10)
	for x := IndMinPow; x <= IndMaxPow; x++ {
		for d := 0; d < 10; d++ {
			l := float64(d) * pow10(x)
			out = append(out, Series{
				Family: Inductance,
				Value:  l,
				Digit:  d,
				Bold:   d == 1,
				XYs: ReactanceCurve(freqs, func(f float64) float64 {
					return InductiveReactance(f, l)
				}),
			})
		}
	}
	return out
}

// FrequencyGridLines returns a vertical line at every y*10^x for frequency
// decades x in [FreqMinPow, FreqMaxPow) and y in 1..9, spanning the view.
func FrequencyGridLines(v View) []Series {
	var out []Series
	for x := FreqMinPow; x < FreqMaxPow; x++ {
		for y := 1; y < 10; y++ {
			at := float64(y) * pow10(x)
			out = append(out, Series{
				Family: FrequencyGrid,
				Value:  at,
				Digit:  y,
				Bold:   y == 1,
				XYs:    plotter.XYs{{X: at, Y: v.YMin}, {X: at, Y: v.YMax}},
			})
		}
	}
	return out
}

// ImpedanceGridLines returns a horizontal line at every y*10^x for impedance
// decades x in [ImpMinPow, ImpMaxPow) and y in 1..9, spanning the view.
// Lines outside the view are kept; the renderer clips them.
func ImpedanceGridLines(v View) []Series {
	var out []Series
	for x := ImpMinPow; x < ImpMaxPow; x++ {
		for y := 1; y < 10; y++ {
			at := float64(y) * pow10(x)
			out = append(out, Series{
				Family: ImpedanceGrid,
				Value:  at,
				Digit:  y,
				Bold:   y == 1,
				XYs:    plotter.XYs{{X: v.XMin, Y: at}, {X: v.XMax, Y: at}},
			})
		}
	}
	return out
}

// pow10 returns 10^n for integer n. math.Pow10 is exact for the range used here.
func pow10(n int) float64 {
	return math.Pow10(n)
}
