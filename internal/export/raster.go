// Package export renders the committed shape list into a standalone
// raster image, independent of the live display surface.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/euba/PaintApp/internal/geom"
	"github.com/euba/PaintApp/internal/state"
)

// DefaultScale is the export magnification relative to the design size.
const DefaultScale = 2.0

// Render rasterizes the shapes over an opaque white background at
// design size times scale. It is deterministic and never fails;
// failures can only happen when the bytes are written out.
//
// Edge policy: dash segments of dashed rectangles and triangles are
// stamped as hard-edged quads with no anti-aliasing, so axis-aligned
// dash boundaries stay sharp at high magnification. Everything else
// is stroked anti-aliased. The policy is applied here, per shape; the
// stored shape data is the same one the live renderer smooths.
func Render(shapes []state.Shape, design geom.Size, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = DefaultScale
	}
	dc := gg.NewContext(int(math.Round(design.W*scale)), int(math.Round(design.H*scale)))
	dc.SetColor(color.White)
	dc.Clear()
	img := dc.Image().(*image.RGBA)
	for _, s := range shapes {
		drawShape(dc, img, s, scale)
	}
	return img
}

func drawShape(dc *gg.Context, img *image.RGBA, s state.Shape, scale float64) {
	if s.Kind == state.KindText {
		drawText(dc, s, scale)
		return
	}
	path, closed := s.StrokePath()
	if len(path) < 2 {
		return
	}

	if s.Style == state.StyleDashed {
		segs := geom.DashSegments(path, closed, s.DashSpec())
		if s.Kind == state.KindRect || s.Kind == state.KindTriangle {
			for _, seg := range segs {
				stampSegment(img, scaleSeg(seg, scale), s.Stroke*scale, s.Color)
			}
			return
		}
		dc.SetColor(s.Color)
		dc.SetLineWidth(s.Stroke * scale)
		dc.SetLineCap(gg.LineCapButt)
		for _, seg := range segs {
			dc.DrawLine(seg.A.X*scale, seg.A.Y*scale, seg.B.X*scale, seg.B.Y*scale)
		}
		dc.Stroke()
		return
	}

	dc.SetColor(s.Color)
	dc.SetLineWidth(s.Stroke * scale)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(path[0].X*scale, path[0].Y*scale)
	for _, p := range path[1:] {
		dc.LineTo(p.X*scale, p.Y*scale)
	}
	if closed {
		dc.ClosePath()
	}
	dc.Stroke()
}

func scaleSeg(s geom.Segment, k float64) geom.Segment {
	return geom.Segment{
		A: geom.Point{X: s.A.X * k, Y: s.A.Y * k},
		B: geom.Point{X: s.B.X * k, Y: s.B.Y * k},
	}
}

// stampSegment fills the rectangle of the given stroke width centered
// on the segment, writing pixels directly with no anti-aliasing. A
// pixel is painted when its center lies inside the quad, so
// axis-aligned segments become exact pixel rectangles.
func stampSegment(img *image.RGBA, seg geom.Segment, width float64, col color.Color) {
	length := seg.Length()
	if length == 0 || width <= 0 {
		return
	}
	half := width / 2
	nx := -(seg.B.Y - seg.A.Y) / length * half
	ny := (seg.B.X - seg.A.X) / length * half
	quad := [4]geom.Point{
		{X: seg.A.X + nx, Y: seg.A.Y + ny},
		{X: seg.B.X + nx, Y: seg.B.Y + ny},
		{X: seg.B.X - nx, Y: seg.B.Y - ny},
		{X: seg.A.X - nx, Y: seg.A.Y - ny},
	}

	minX, minY := quad[0].X, quad[0].Y
	maxX, maxY := minX, minY
	for _, q := range quad[1:] {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	b := img.Bounds()
	x0 := clampInt(int(math.Floor(minX)), b.Min.X, b.Max.X)
	x1 := clampInt(int(math.Ceil(maxX)), b.Min.X, b.Max.X)
	y0 := clampInt(int(math.Floor(minY)), b.Min.Y, b.Max.Y)
	y1 := clampInt(int(math.Ceil(maxY)), b.Min.Y, b.Max.Y)

	c := color.RGBAModel.Convert(col).(color.RGBA)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if insideQuad(quad, float64(x)+0.5, float64(y)+0.5) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// insideQuad tests a point against a convex quad by requiring a
// consistent cross-product sign along all four edges.
func insideQuad(q [4]geom.Point, x, y float64) bool {
	sign := 0
	for i := 0; i < 4; i++ {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	fontOnce   sync.Once
	exportFont *truetype.Font
)

func exportFace(size float64) font.Face {
	fontOnce.Do(func() {
		// goregular.TTF is embedded and always parses
		exportFont, _ = truetype.Parse(goregular.TTF)
	})
	return truetype.NewFace(exportFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawText(dc *gg.Context, s state.Shape, scale float64) {
	if len(s.Points) == 0 || s.Text == "" {
		return
	}
	size := s.Width.FontPx() * scale
	dc.SetFontFace(exportFace(size))
	dc.SetColor(s.Color)
	x := s.Points[0].X * scale
	y := s.Points[0].Y*scale + size
	for i, line := range strings.Split(s.Text, "\n") {
		dc.DrawString(line, x, y+float64(i)*size*1.3)
	}
}

// WritePNG encodes the image to the writer.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG rasterizes the shapes and writes them as a PNG file. The
// only failures are I/O at the destination; drawing state is never
// affected by a failed export.
func ExportPNG(path string, shapes []state.Shape, design geom.Size, scale float64) error {
	img := Render(shapes, design, scale)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
