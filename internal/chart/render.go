package chart

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Supported output formats, keyed by file extension without the dot.
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// FormatFromPath derives the output format from a file name. A missing
// extension means PDF.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatSVG, FormatPNG:
		return ext, nil
	}
	return "", fmt.Errorf("unsupported output format %q", ext)
}

// Lines converts every series of the chart into a styled plotter.Line, in
// drawing order.
func (c *Chart) Lines(s Style) ([]*plotter.Line, error) {
	series := c.Series()
	lines := make([]*plotter.Line, 0, len(series))
	for _, sr := range series {
		l, err := plotter.NewLine(sr.XYs)
		if err != nil {
			return nil, fmt.Errorf("error building %s line at %g: %w", sr.Family, sr.Value, err)
		}
		l.LineStyle.Color = s.FamilyColor(sr.Family)
		l.LineStyle.Width = s.LineWidth(sr.Bold)
		lines = append(lines, l)
	}
	return lines, nil
}

// Plot assembles the gonum plot: log axes, constant decade ticks, all lines
// and the edge annotations. Axis limits are the visible window.
func (c *Chart) Plot(s Style) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = s.Background

	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = constantTicks(c.XTicks)
	p.Y.Tick.Marker = constantTicks(c.YTicks)
	p.X.Tick.Label.Font.Size = s.FontSize
	p.Y.Tick.Label.Font.Size = s.FontSize
	p.X.Padding = s.AxisPadding

	lines, err := c.Lines(s)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		p.Add(l)
	}
	p.Add(&edgeLabels{items: c.Annotations, style: s})

	// Set after Add, which widens the ranges to the clamped curve data.
	v := DefaultView()
	p.X.Min, p.X.Max = v.XMin, v.XMax
	p.Y.Min, p.Y.Max = v.YMin, v.YMax
	return p, nil
}

// Draw paints the chart onto dc, leaving the configured page margins free.
func (c *Chart) Draw(dc draw.Canvas, s Style) error {
	p, err := c.Plot(s)
	if err != nil {
		return err
	}
	dc.SetColor(s.Background)
	dc.Fill(dc.Rectangle.Path())

	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	p.Draw(draw.Crop(dc,
		vg.Length(s.MarginLeft)*w, -vg.Length(s.MarginRight)*w,
		vg.Length(s.MarginBottom)*h, -vg.Length(s.MarginTop)*h))
	return nil
}

// Render draws the chart on a single page in the given format and writes it
// to w.
func Render(w io.Writer, format string, c *Chart, s Style) error {
	cv, err := newCanvas(format, s)
	if err != nil {
		return err
	}
	if err := c.Draw(draw.New(cv), s); err != nil {
		return err
	}
	if _, err := cv.WriteTo(w); err != nil {
		return fmt.Errorf("error encoding %s: %w", format, err)
	}
	return nil
}

// Save renders the chart to path, replacing any existing file. The format
// follows the file extension.
func Save(path string, c *Chart, s Style) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Render(&buf, format, c, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// Raster draws the chart into an in-memory image at the style's DPI.
func Raster(c *Chart, s Style) (image.Image, error) {
	img := vgimg.NewWith(
		vgimg.UseWH(s.PageWidth, s.PageHeight),
		vgimg.UseDPI(s.DPI),
		vgimg.UseBackgroundColor(s.Background),
	)
	if err := c.Draw(draw.New(img), s); err != nil {
		return nil, err
	}
	return img.Image(), nil
}

func newCanvas(format string, s Style) (vg.CanvasWriterTo, error) {
	switch format {
	case FormatPDF:
		return vgpdf.New(s.PageWidth, s.PageHeight), nil
	case FormatSVG:
		return vgsvg.New(s.PageWidth, s.PageHeight), nil
	case FormatPNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(s.PageWidth, s.PageHeight),
			vgimg.UseDPI(s.DPI),
			vgimg.UseBackgroundColor(s.Background),
		)}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

func constantTicks(ticks []Tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// edgeLabels draws annotations without dropping those outside the data
// area; plotter.Labels skips them, and every edge label lives there.
type edgeLabels struct {
	items []Annotation
	style Style
}

func (l *edgeLabels) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, a := range l.items {
		pt := vg.Point{X: trX(a.X), Y: trY(a.Y)}
		c.FillText(l.textStyle(a), pt, a.Text)
	}
}

func (l *edgeLabels) textStyle(a Annotation) text.Style {
	sty := text.Style{
		Color:   l.style.RoleColor(a.Role),
		Font:    font.From(plot.DefaultFont, l.style.FontSize),
		XAlign:  text.XLeft,
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	if a.Align == AlignCenter {
		sty.XAlign = text.XCenter
	}
	return sty
}
