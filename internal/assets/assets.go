// Package assets defines the app's icon set and writes it to disk.
package assets

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Mavwarf/mkicons/internal/icon"
	"github.com/Mavwarf/mkicons/internal/paths"
)

// SuccessMessage is printed after all icons are written.
const SuccessMessage = "Icons created successfully!"

// Target is one output file of the icon set.
type Target struct {
	Name   string
	Size   int
	Format icon.Format
	Border bool
	// LabelAt fixes the label's top-left corner; nil centers it.
	LabelAt *image.Point
}

// Result describes a written icon.
type Result struct {
	Name   string
	Path   string
	Size   int
	Format icon.Format
	Bytes  int
	SHA256 string
}

// Targets returns the icon set in generation order. The favicon keeps the
// label at a fixed (8, 8) origin and has no border.
func Targets() []Target {
	return []Target{
		{Name: "icon-192x192.png", Size: 192, Format: icon.PNG, Border: true},
		{Name: "icon-512x512.png", Size: 512, Format: icon.PNG, Border: true},
		{Name: "favicon.ico", Size: 32, Format: icon.ICO, LabelAt: &image.Point{X: 8, Y: 8}},
	}
}

// Lookup returns the target with the given file name.
func Lookup(name string) (Target, bool) {
	for _, t := range Targets() {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// LabelRect returns where the label lands on this target's canvas.
func (t Target) LabelRect(s icon.Style) image.Rectangle {
	box := icon.LabelBox(t.Size, s)
	if t.LabelAt != nil {
		return box.Sub(box.Min).Add(*t.LabelAt)
	}
	return box
}

// Render draws and encodes a single target.
func Render(t Target, s icon.Style) ([]byte, error) {
	if t.Size <= 0 {
		return nil, fmt.Errorf("%s: invalid size %d", t.Name, t.Size)
	}
	ext, err := icon.FormatFor(t.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}
	if ext != t.Format {
		return nil, fmt.Errorf("%s: extension says %s, target format is %s", t.Name, ext, t.Format)
	}
	var opts []icon.Option
	if !t.Border {
		opts = append(opts, icon.WithoutBorder())
	}
	if t.LabelAt != nil {
		opts = append(opts, icon.WithLabelAt(*t.LabelAt))
	}
	img := icon.Draw(t.Size, s, opts...)

	var buf bytes.Buffer
	if err := icon.Encode(&buf, img, t.Format); err != nil {
		return nil, fmt.Errorf("%s: encoding %s: %w", t.Name, t.Format, err)
	}
	return buf.Bytes(), nil
}

// Generate renders every target in the default style and writes it into dir,
// overwriting existing files. It stops at the first failure.
func Generate(dir string) ([]Result, error) {
	return GenerateTargets(dir, Targets(), icon.DefaultStyle())
}

// GenerateTargets is Generate with an explicit target list and style.
func GenerateTargets(dir string, targets []Target, s icon.Style) ([]Result, error) {
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		data, err := Render(t, s)
		if err != nil {
			return results, err
		}
		p := filepath.Join(dir, t.Name)
		if err := paths.AtomicWrite(p, data); err != nil {
			return results, fmt.Errorf("writing %s: %w", t.Name, err)
		}
		sum := sha256.Sum256(data)
		r := Result{
			Name:   t.Name,
			Path:   p,
			Size:   t.Size,
			Format: t.Format,
			Bytes:  len(data),
			SHA256: hex.EncodeToString(sum[:]),
		}
		logrus.WithFields(logrus.Fields{
			"file":  r.Name,
			"size":  r.Size,
			"bytes": r.Bytes,
		}).Debug("icon written")
		results = append(results, r)
	}
	return results, nil
}
