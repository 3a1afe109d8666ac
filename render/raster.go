package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/polygon"
	"golang.org/x/image/vector"
)

// Raster is a Target painting into an RGBA image. A window in drawing
// coordinates is mapped onto the image, keeping the aspect ratio; y points
// upwards in drawing coordinates and downwards in the image.
type Raster struct {
	Image  *image.RGBA
	window hatchfill.Box
	scale  float64 // pixels per drawing unit
	toPix  hatchfill.AT
	ras    *vector.Rasterizer
}

var _ Target = (*Raster)(nil)

// NewRaster creates a width×height image showing window.
func NewRaster(width, height int, window hatchfill.Box) *Raster {
	r := &Raster{
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		window: window,
		ras:    vector.NewRasterizer(width, height),
	}
	r.scale = 1
	if w, h := window.Width(), window.Height(); w > 0 && h > 0 {
		r.scale = math.Min(float64(width)/w, float64(height)/h)
	}
	r.toPix = hatchfill.Translation(-window.Min).
		Combine(hatchfill.Scaling(r.scale, -r.scale)).
		Combine(hatchfill.Translation(hatchfill.P(0, float64(height))))
	tracer().Debugf("raster %dx%d for window %v, scale %g", width, height, window, r.scale)
	return r
}

// Pixel maps a point in drawing coordinates to image coordinates.
func (r *Raster) Pixel(p hatchfill.Pair) hatchfill.Pair {
	return r.toPix.Transform(p)
}

// ColorAt returns the color of the pixel covering p.
func (r *Raster) ColorAt(p hatchfill.Pair) color.RGBA {
	q := r.Pixel(p)
	return r.Image.RGBAAt(int(math.Floor(q.X())), int(math.Floor(q.Y())))
}

// Stroke draws e as a band of the pen's width, at least one pixel wide.
func (r *Raster) Stroke(e entity.Entity, a entity.Attributes) {
	pts := entity.Approximate(e)
	if len(pts) < 2 {
		return
	}
	half := math.Max(a.Pen.Width*r.scale, 1) / 2
	b := r.Image.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	for i := 1; i < len(pts); i++ {
		p, q := r.Pixel(pts[i-1]), r.Pixel(pts[i])
		n := (q - p).Unit().Perp().Scaled(half)
		if n.IsOrigin() {
			continue
		}
		r.moveTo(p + n)
		r.lineTo(q + n)
		r.lineTo(q - n)
		r.lineTo(p - n)
		r.ras.ClosePath()
	}
	r.ras.Draw(r.Image, b, image.NewUniform(penColor(a)), image.Point{})
}

// Fill paints region, clipped to the window. The rasterizer covers
// polygons by accumulated area, so every polygon is rasterized on its own
// and coverages are combined with exclusive-or, giving the even-odd rule.
func (r *Raster) Fill(region *polygon.Region, a entity.Attributes) {
	if bb := region.BoundingBox(); !r.window.Contains(bb.Min) || !r.window.Contains(bb.Max) {
		region = region.Clip(r.window)
	}
	if region.IsEmpty() {
		return
	}
	b := r.Image.Bounds()
	mask := image.NewAlpha(b)
	acc := make([]float32, len(mask.Pix))
	for _, pg := range region.Polygons() {
		clear(mask.Pix)
		r.ras.Reset(b.Dx(), b.Dy())
		r.moveTo(r.Pixel(pg.Z(0)))
		for i := 1; i < pg.N(); i++ {
			r.lineTo(r.Pixel(pg.Z(i)))
		}
		r.ras.ClosePath()
		r.ras.Draw(mask, b, image.Opaque, image.Point{})
		for i, v := range mask.Pix {
			c := float32(v) / 255
			acc[i] = acc[i] + c - 2*acc[i]*c
		}
	}
	for i := range mask.Pix {
		mask.Pix[i] = uint8(acc[i]*255 + 0.5)
	}
	draw.DrawMask(r.Image, b, image.NewUniform(penColor(a)), image.Point{}, mask, image.Point{}, draw.Over)
}

func (r *Raster) moveTo(p hatchfill.Pair) {
	r.ras.MoveTo(float32(p.X()), float32(p.Y()))
}

func (r *Raster) lineTo(p hatchfill.Pair) {
	r.ras.LineTo(float32(p.X()), float32(p.Y()))
}

// penColor returns the pen's color; the zero color is drawn black.
func penColor(a entity.Attributes) color.RGBA {
	if a.Pen.Color == (color.RGBA{}) {
		return color.RGBA{A: 0xff}
	}
	return a.Pen.Color
}
