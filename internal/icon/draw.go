package icon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type options struct {
	labelAt  *image.Point
	noBorder bool
}

// Option adjusts a single Draw call.
type Option func(*options)

// WithLabelAt places the top-left corner of the label box at p instead of
// centering it.
func WithLabelAt(p image.Point) Option {
	return func(o *options) { o.labelAt = &p }
}

// WithoutBorder skips the edge border.
func WithoutBorder() Option {
	return func(o *options) { o.noBorder = true }
}

// Draw renders a size×size icon in style s.
func Draw(size int, s Style, opts ...Option) *image.RGBA {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: s.Background}, image.Point{}, draw.Src)

	origin := LabelBox(size, s).Min
	if o.labelAt != nil {
		origin = *o.labelAt
	}
	drawLabel(img, s, origin)

	if !o.noBorder {
		drawBorder(img, s.Border, s.BorderWidth)
	}
	return img
}

// LabelBox returns the rectangle a centered label occupies on a size×size
// icon: horizontally centered, vertically centered then lifted by LabelLift.
func LabelBox(size int, s Style) image.Rectangle {
	bounds, _ := font.BoundString(s.face(), s.Label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (size - w) / 2
	y := (size-h)/2 - s.LabelLift
	return image.Rect(x, y, x+w, y+h)
}

// drawLabel draws s.Label so that its bounding box starts at origin.
// font.Drawer positions glyphs by baseline, so the dot is shifted by the
// box's offset from the baseline.
func drawLabel(img *image.RGBA, s Style, origin image.Point) {
	face := s.face()
	bounds, _ := font.BoundString(face, s.Label)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(s.Foreground),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X) - bounds.Min.X,
			Y: fixed.I(origin.Y) - bounds.Min.Y,
		},
	}
	d.DrawString(s.Label)
}

// drawBorder paints an unfilled rectangle of the given width flush with the
// image edges.
func drawBorder(img *image.RGBA, c color.RGBA, width int) {
	if width <= 0 {
		return
	}
	b := img.Bounds()
	src := &image.Uniform{C: c}
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+width), // top
		image.Rect(b.Min.X, b.Max.Y-width, b.Max.X, b.Max.Y), // bottom
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+width, b.Max.Y), // left
		image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y), // right
	} {
		draw.Draw(img, r.Intersect(b), src, image.Point{}, draw.Src)
	}
}
