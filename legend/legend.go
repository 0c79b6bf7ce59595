// Package legend draws a standalone colour key for the condition tracks of
// a Circos plot.
package legend

import (
	"fmt"
	"github.com/carbocation/pfx"
	"github.com/dasnellings/breseqTools/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"strconv"
	"strings"
)

// Entry is one condition and its track colour.
type Entry struct {
	Name  string
	Color color.Color
}

// Default entries. These must match the colours in the Circos config.
var Default = []Entry{
	{"LB", color.RGBA{R: 0xfc, G: 0x92, B: 0x72, A: 0xff}},
	{"Cef", color.RGBA{R: 0x9e, G: 0xca, B: 0xe1, A: 0xff}},
	{"Str", color.RGBA{R: 0xa1, G: 0xd9, B: 0x9b, A: 0xff}},
	{"CefStr", color.RGBA{R: 0xbc, G: 0xbd, B: 0xdc, A: 0xff}},
}

// ParseHex parses a colour in #rrggbb or #rgb form. The leading # is optional.
func ParseHex(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, pfx.Err(fmt.Errorf("malformed colour %q", s))
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("malformed colour %q", s))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParseEntry parses name=#rrggbb.
func ParseEntry(s string) (Entry, error) {
	name, hex, found := strings.Cut(s, "=")
	if !found || name == "" {
		return Entry{}, pfx.Err(fmt.Errorf("expected name=#rrggbb, got %q", s))
	}
	c, err := ParseHex(hex)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Color: c}, nil
}

// swatch is a filled, black edged box.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
	pts = append(pts, pts[0])
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(1)}, c.ClipLinesY(pts)...)
}

const fontSize = 20

// Build returns a legend of the entries with large text and swatches.
func Build(entries []Entry) plot.Legend {
	l := plot.NewLegend()
	l.TextStyle.Font.Size = vg.Points(fontSize)
	l.ThumbnailWidth = vg.Points(2 * fontSize)
	l.Padding = vg.Points(fontSize / 2)
	l.Top, l.Left = true, true
	for _, e := range entries {
		l.Add(e.Name, swatch{color: e.Color})
	}
	return l
}

// Render draws a legend-only figure, 4 inches wide and 1 inch tall per
// entry, to filename. The format follows the extension and raster formats
// are rendered at dpi.
func Render(entries []Entry, filename string, dpi int) error {
	if len(entries) == 0 {
		return pfx.Err(fmt.Errorf("no legend entries"))
	}
	w, h := 4*vg.Inch, vg.Length(len(entries))*vg.Inch
	c, err := figure.NewCanvas(w, h, figure.Format(filename), dpi)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	l := Build(entries)
	r := l.Rectangle(dc)
	l.XOffs = (w - (r.Max.X - r.Min.X)) / 2
	l.YOffs = -(h - (r.Max.Y - r.Min.Y)) / 2
	l.Draw(dc)

	return figure.Save(c, filename)
}
