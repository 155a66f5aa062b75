package visual

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/datadash-cli/internal/analysis"
)

// Input bundles everything the dashboard draws.
type Input struct {
	Dates []time.Time
	Sales []float64
	Corr  *analysis.CorrMatrix
	// Categories fills the bottom-right bar chart; nil leaves that panel blank.
	Categories []analysis.CategorySummary
	Bins       int
	DPI        int
}

// RenderDashboard writes a 2x2 panel figure to path: sales-over-time line,
// sales histogram, correlation heatmap, and per-category totals bar chart.
func RenderDashboard(path string, in Input) error {
	if in.Bins <= 0 {
		in.Bins = 20
	}
	if in.DPI <= 0 {
		in.DPI = 300
	}

	tl, err := timeSeriesPanel(in.Dates, in.Sales)
	if err != nil {
		return fmt.Errorf("time series panel: %w", err)
	}
	tr, err := histogramPanel(in.Sales, in.Bins)
	if err != nil {
		return fmt.Errorf("histogram panel: %w", err)
	}
	bl := heatmapPanel(in.Corr)
	var br *plot.Plot
	if len(in.Categories) > 0 {
		br, err = barPanel(in.Categories)
		if err != nil {
			return fmt.Errorf("bar panel: %w", err)
		}
	}

	plots := [][]*plot.Plot{
		{tl, tr},
		{bl, br},
	}

	img := vgimg.NewWith(
		vgimg.UseWH(15*vg.Inch, 10*vg.Inch),
		vgimg.UseDPI(in.DPI),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure: %w", err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}

func timeSeriesPanel(dates []time.Time, sales []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sales Over Time"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Sales"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	pts := make(plotter.XYs, len(sales))
	for i := range sales {
		pts[i].X = float64(dates[i].Unix())
		pts[i].Y = sales[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(line)
	return p, nil
}

func histogramPanel(sales []float64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sales Distribution"
	p.X.Label.Text = "Sales"
	p.Y.Label.Text = "Frequency"

	vals := make(plotter.Values, len(sales))
	copy(vals, sales)
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 60, G: 160, B: 60, A: 255}
	h.LineStyle.Color = color.Black
	p.Add(h)
	return p, nil
}

// corrGrid adapts a correlation matrix to the heatmap grid interface. Cell
// (c, r) shows the correlation between columns r and c.
type corrGrid struct{ m *analysis.CorrMatrix }

func (g corrGrid) Dims() (c, r int)   { n := g.m.Dim(); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

func heatmapPanel(m *analysis.CorrMatrix) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	if m == nil || m.Dim() == 0 {
		return p
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	pal := cm.Palette(255)

	h := plotter.NewHeatMap(corrGrid{m: m}, pal)
	h.Min = -1
	h.Max = 1
	p.Add(h)
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)

	// Color scale legend: endpoint and midpoint swatches of the palette.
	legendPal := cm.Palette(9)
	thumbs := plotter.PaletteThumbnailers(legendPal)
	for i := len(thumbs) - 1; i >= 0; i-- {
		var label string
		switch i {
		case 0:
			label = fmt.Sprintf("%.1f", h.Min)
		case len(thumbs) / 2:
			label = "0.0"
		case len(thumbs) - 1:
			label = fmt.Sprintf("%.1f", h.Max)
		}
		p.Legend.Add(label, thumbs[i])
	}
	return p
}

func barPanel(categories []analysis.CategorySummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sales by Category"
	p.X.Label.Text = "Product Category"
	p.Y.Label.Text = "Total Sales"

	vals := make(plotter.Values, len(categories))
	names := make([]string, len(categories))
	for i, c := range categories {
		vals[i] = c.SalesSum
		names[i] = c.Category
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 220, G: 120, B: 40, A: 255}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}
