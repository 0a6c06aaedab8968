package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
)

// Format is an output image container.
type Format int

const (
	PNG Format = iota
	ICO
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case ICO:
		return "ico"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFor picks the container from a file name's extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".ico":
		return ICO, nil
	default:
		return 0, fmt.Errorf("unsupported icon extension %q", filepath.Ext(name))
	}
}

// Encode writes img to w in format f. ICO output holds a single frame.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case ICO:
		return ico.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
}

// Decode reads every frame of an image in format f: one for PNG, one per
// directory entry for ICO.
func Decode(r io.Reader, f Format) ([]image.Image, error) {
	switch f {
	case PNG:
		img, err := png.Decode(r)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	case ICO:
		return ico.DecodeAll(r)
	default:
		return nil, fmt.Errorf("unsupported format %v", f)
	}
}
