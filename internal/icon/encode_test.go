package icon

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#4CAF50", color.RGBA{0x4C, 0xAF, 0x50, 0xFF}, false},
		{"2e7d32", color.RGBA{0x2E, 0x7D, 0x32, 0xFF}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed color")
		}
	}()
	MustParseHex("#12")
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"icon-192x192.png", PNG, false},
		{"favicon.ico", ICO, false},
		{"FAVICON.ICO", ICO, false},
		{"icon.jpg", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFor(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if PNG.String() != "png" || ICO.String() != "ico" {
		t.Errorf("got %q, %q", PNG.String(), ICO.String())
	}
	if got := Format(9).String(); got != "format(9)" {
		t.Errorf("unknown format = %q", got)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(192, DefaultStyle()), PNG); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 192 || b.Dy() != 192 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestEncodeICOSingleFrame(t *testing.T) {
	s := DefaultStyle()
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(32, s, WithoutBorder()), ICO); err != nil {
		t.Fatal(err)
	}
	frames, err := Decode(&buf, ICO)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	b := frames[0].Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("frame size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
	got := color.RGBAModel.Convert(frames[0].At(b.Min.X, b.Min.Y)).(color.RGBA)
	if got != s.Background {
		t.Errorf("corner = %v, want background %v", got, s.Background)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(8, DefaultStyle()), Format(7)); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDecodePNGAsICOFails(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(16, DefaultStyle()), PNG); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf, ICO); err == nil {
		t.Fatal("expected error decoding PNG data as ICO")
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	if _, err := Decode(bytes.NewReader(nil), Format(7)); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
