package upset

import (
	"fmt"
	"github.com/carbocation/pfx"
	"github.com/dasnellings/breseqTools/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"strconv"
)

var inactive = color.Gray{Y: 0xdd}

// Render draws an UpSet plot: intersection sizes as bars on top of a dot
// matrix marking the categories of each intersection. Category tick labels
// carry the set sizes. The image format follows the file extension.
func Render(s Sets, inter []Intersection, filename string) error {
	if len(inter) == 0 || len(s.Categories) == 0 {
		return pfx.Err(fmt.Errorf("nothing to plot: no element belongs to any category"))
	}

	bars, err := sizePlot(inter)
	if err != nil {
		return err
	}
	matrix, err := matrixPlot(s, inter)
	if err != nil {
		return err
	}

	w := vg.Length(len(inter))*vg.Points(28) + 2*vg.Inch
	if w < 5*vg.Inch {
		w = 5 * vg.Inch
	}
	h := vg.Length(len(s.Categories))*vg.Points(20)*2 + 2*vg.Inch
	c, err := figure.NewCanvas(w, h, figure.Format(filename), 0)
	if err != nil {
		return err
	}

	tiles := draw.Tiles{Rows: 2, Cols: 1, PadTop: vg.Points(10), PadBottom: vg.Points(10), PadLeft: vg.Points(10), PadRight: vg.Points(10)}
	canvases := plot.Align([][]*plot.Plot{{bars}, {matrix}}, tiles, draw.New(c))
	bars.Draw(canvases[0][0])
	matrix.Draw(canvases[1][0])

	return figure.Save(c, filename)
}

func sizePlot(inter []Intersection) (*plot.Plot, error) {
	p := plot.New()
	values := make(plotter.Values, len(inter))
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(inter)), Labels: make([]string, len(inter))}
	var max float64
	for i := range inter {
		values[i] = float64(inter[i].Size)
		labels.XYs[i] = plotter.XY{X: float64(i), Y: values[i]}
		labels.Labels[i] = strconv.Itoa(inter[i].Size)
		if values[i] > max {
			max = values[i]
		}
	}

	b, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, pfx.Err(err)
	}
	b.Color = color.Black
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, pfx.Err(err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
	}
	l.Offset = vg.Point{Y: vg.Points(3)}

	p.Add(b, l)
	p.HideX()
	p.Y.Label.Text = "Intersection size"
	p.Y.Min = 0
	p.Y.Max = max * 1.15
	p.X.Min = -0.5
	p.X.Max = float64(len(inter)) - 0.5
	return p, nil
}

func matrixPlot(s Sets, inter []Intersection) (*plot.Plot, error) {
	p := plot.New()
	var all, member plotter.XYs
	for i := range inter {
		for j := range s.Categories {
			all = append(all, plotter.XY{X: float64(i), Y: float64(j)})
			if inter[i].Pattern[j] {
				member = append(member, plotter.XY{X: float64(i), Y: float64(j)})
			}
		}
	}

	background, err := plotter.NewScatter(all)
	if err != nil {
		return nil, pfx.Err(err)
	}
	background.GlyphStyle = draw.GlyphStyle{Color: inactive, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(background)

	var lo, hi int
	for i := range inter {
		lo, hi = -1, -1
		for j := range inter[i].Pattern {
			if !inter[i].Pattern[j] {
				continue
			}
			if lo == -1 {
				lo = j
			}
			hi = j
		}
		if hi > lo {
			line, err := plotter.NewLine(plotter.XYs{{X: float64(i), Y: float64(lo)}, {X: float64(i), Y: float64(hi)}})
			if err != nil {
				return nil, pfx.Err(err)
			}
			line.LineStyle.Width = vg.Points(2)
			line.LineStyle.Color = color.Black
			p.Add(line)
		}
	}

	dots, err := plotter.NewScatter(member)
	if err != nil {
		return nil, pfx.Err(err)
	}
	dots.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(dots)

	names := make([]string, len(s.Categories))
	for j := range s.Categories {
		names[j] = fmt.Sprintf("%s (%d)", s.Categories[j], len(s.Members[j]))
	}
	p.NominalY(names...)
	p.HideX()
	p.X.Min = -0.5
	p.X.Max = float64(len(inter)) - 0.5
	p.Y.Min = -0.5
	p.Y.Max = float64(len(s.Categories)) - 0.5
	return p, nil
}
