// Package figure creates gonum/plot canvases for an output file and writes
// them out, honouring a resolution for raster formats.
package figure

import (
	"github.com/carbocation/pfx"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
	"path/filepath"
	"strings"
)

// Format returns the image format implied by the extension of filename.
func Format(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// NewCanvas returns a w x h canvas for format (png, jpg, tiff, svg, pdf or
// eps). Raster formats are rendered at dpi when dpi is positive.
func NewCanvas(w, h vg.Length, format string, dpi int) (vg.CanvasWriterTo, error) {
	if dpi > 0 {
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		case "tif", "tiff":
			return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
		}
	}
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, pfx.Err(err)
	}
	return c, nil
}

// Save writes a drawn canvas to filename.
func Save(c vg.CanvasWriterTo, filename string) error {
	out := fileio.EasyCreate(filename)
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return pfx.Err(err)
	}
	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}
	return nil
}
