// Package verify checks generated icons against the icon set definition:
// container type, dimensions, border and background pixels.
package verify

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/icon"
)

// FileReport lists the problems found in one icon file.
type FileReport struct {
	Name     string
	Problems []string
}

// Report is the outcome of checking a directory.
type Report struct {
	Dir   string
	Files []FileReport
}

// OK reports whether no file has problems.
func (r Report) OK() bool {
	for _, f := range r.Files {
		if len(f.Problems) > 0 {
			return false
		}
	}
	return true
}

func (r Report) String() string {
	var b strings.Builder
	for _, f := range r.Files {
		if len(f.Problems) == 0 {
			fmt.Fprintf(&b, "ok    %s\n", f.Name)
			continue
		}
		fmt.Fprintf(&b, "FAIL  %s\n", f.Name)
		for _, p := range f.Problems {
			fmt.Fprintf(&b, "      - %s\n", p)
		}
	}
	return b.String()
}

// Dir checks every target of the icon set inside dir.
func Dir(dir string) Report {
	s := icon.DefaultStyle()
	r := Report{Dir: dir}
	for _, t := range assets.Targets() {
		r.Files = append(r.Files, FileReport{
			Name:     t.Name,
			Problems: File(filepath.Join(dir, t.Name), t, s),
		})
	}
	return r
}

// File checks a single icon file against target t drawn in style s.
func File(path string, t assets.Target, s icon.Style) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{err.Error()}
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return []string{fmt.Sprintf("sniffing content: %v", err)}
	}
	if kind.Extension != t.Format.String() {
		return []string{fmt.Sprintf("content is %q, want %q", kind.Extension, t.Format)}
	}

	if t.Format == icon.ICO {
		return checkICO(data, t, s)
	}
	frames, err := icon.Decode(bytes.NewReader(data), t.Format)
	if err != nil {
		return []string{fmt.Sprintf("decoding %s: %v", t.Format, err)}
	}
	return checkPixels(frames[0], t, s)
}

func checkICO(data []byte, t assets.Target, s icon.Style) []string {
	frames, err := icon.Decode(bytes.NewReader(data), icon.ICO)
	if err != nil {
		return []string{fmt.Sprintf("decoding ico: %v", err)}
	}
	if len(frames) != 1 {
		return []string{fmt.Sprintf("ico has %d frames, want 1", len(frames))}
	}
	return checkPixels(frames[0], t, s)
}

func checkPixels(img image.Image, t assets.Target, s icon.Style) []string {
	b := img.Bounds()
	if b.Dx() != t.Size || b.Dy() != t.Size {
		return []string{fmt.Sprintf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), t.Size, t.Size)}
	}

	var problems []string
	margin := 0
	if t.Border {
		margin = s.BorderWidth
		if p, ok := firstMismatch(img, s.Border, borderPixels(b, margin)); ok {
			problems = append(problems, fmt.Sprintf("border pixel %v is %s, want %s", p, hexAt(img, p), icon.Hex(s.Border)))
		}
	}

	label := t.LabelRect(s).Add(b.Min)
	inner := b.Inset(margin)
	var interior []image.Point
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			if p := image.Pt(x, y); !p.In(label) {
				interior = append(interior, p)
			}
		}
	}
	if p, ok := firstMismatch(img, s.Background, interior); ok {
		problems = append(problems, fmt.Sprintf("background pixel %v is %s, want %s", p, hexAt(img, p), icon.Hex(s.Background)))
	}
	return problems
}

// borderPixels lists every pixel within width of the edges of b.
func borderPixels(b image.Rectangle, width int) []image.Point {
	var pts []image.Point
	inner := b.Inset(width)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p := image.Pt(x, y); !p.In(inner) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func firstMismatch(img image.Image, want color.RGBA, pts []image.Point) (image.Point, bool) {
	for _, p := range pts {
		if rgbaAt(img, p) != want {
			return p, true
		}
	}
	return image.Point{}, false
}

func rgbaAt(img image.Image, p image.Point) color.RGBA {
	return color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
}

func hexAt(img image.Image, p image.Point) string {
	return icon.Hex(rgbaAt(img, p))
}
