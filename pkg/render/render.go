package render

import (
	"fmt"
	"image"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"xsplot/pkg/dataset"
)

// Renderer draws a set of slices as semi-log curves on fixed y bounds.
// Width and Height are in pixels.
type Renderer struct {
	Width  int
	Height int
	YMin   float64
	YMax   float64
	Title  string
}

func DefaultRenderer() Renderer {
	return Renderer{
		Width:  800,
		Height: 600,
		YMin:   1e-6,
		YMax:   0.5,
	}
}

// Plot builds a fresh plot holding one line per slice.
func (r Renderer) Plot(slices []dataset.Slice) (*plot.Plot, error) {
	if r.YMin <= 0 || r.YMax <= r.YMin {
		return nil, fmt.Errorf("invalid y bounds [%g, %g] for a log axis", r.YMin, r.YMax)
	}

	p := plot.New()
	p.Title.Text = r.title(slices)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	for i, s := range slices {
		pts := logPoints(s.Rows)
		if dropped := len(s.Rows) - len(pts); dropped > 0 {
			log.Tracef("slice %d: dropped %d points not drawable on a log axis", s.Index, dropped)
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", s.Index, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
	}

	// Add widens the axes to the data, so the bounds go on last.
	p.Y.Min = r.YMin
	p.Y.Max = r.YMax

	return p, nil
}

// Image rasterises the plot at Width x Height pixels.
func (r Renderer) Image(slices []dataset.Slice) (image.Image, error) {
	p, err := r.Plot(slices)
	if err != nil {
		return nil, err
	}

	// At 72 dpi one point is one pixel.
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.Width), vg.Length(r.Height)),
		vgimg.UseDPI(72),
	)
	p.Draw(draw.New(c))

	return c.Image(), nil
}

// Save writes the plot to path; the extension picks the format. Raster
// formats come out at Width x Height pixels.
func (r Renderer) Save(slices []dataset.Slice, path string) error {
	p, err := r.Plot(slices)
	if err != nil {
		return err
	}

	return p.Save(pixels(r.Width), pixels(r.Height), path)
}

// pixels converts a pixel count to the length plot.Save rasterises at
// vgimg.DefaultDPI.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / vgimg.DefaultDPI
}

func (r Renderer) title(slices []dataset.Slice) string {
	if len(slices) == 0 {
		return r.Title
	}

	span := fmt.Sprintf("rows %d-%d", slices[0].Start, slices[len(slices)-1].End()-1)
	if r.Title == "" {
		return span
	}
	return r.Title + ": " + span
}

func logPoints(rows []dataset.Row) plotter.XYs {
	pts := make(plotter.XYs, 0, len(rows))
	for _, row := range rows {
		if row.Y <= 0 || math.IsInf(row.Y, 0) || math.IsNaN(row.Y) ||
			math.IsInf(row.X, 0) || math.IsNaN(row.X) {
			continue
		}
		pts = append(pts, plotter.XY{X: row.X, Y: row.Y})
	}
	return pts
}
