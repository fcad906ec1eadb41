package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/wobble/internal/assets"
)

// testImage returns a w x h image where the top row is red, the bottom row
// is blue and everything else is green.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{G: 255, A: 255}
			switch y {
			case 0:
				c = color.NRGBA{R: 255, A: 255}
			case h - 1:
				c = color.NRGBA{B: 255, A: 200}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePixelsFlipAndChannelOrder(t *testing.T) {
	data := encodePNG(t, testImage(5, 3))

	p, err := DecodePixels("test.png", data)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if p.Width != 5 || p.Height != 3 {
		t.Fatalf("size = %dx%d, want 5x3", p.Width, p.Height)
	}
	if len(p.BGRA) != 5*3*BytesPerPixel {
		t.Fatalf("buffer length = %d", len(p.BGRA))
	}

	// Row 0 of the upload buffer is the image's bottom row (blue).
	if got := p.At(0, 0); got != [4]byte{255, 0, 0, 200} {
		t.Errorf("bottom-left texel = %v, want blue in BGRA", got)
	}
	// The last row is the image's top row (red).
	if got := p.At(4, 2); got != [4]byte{0, 0, 255, 255} {
		t.Errorf("top-right texel = %v, want red in BGRA", got)
	}
	if got := p.At(2, 1); got != [4]byte{0, 255, 0, 255} {
		t.Errorf("middle texel = %v, want green", got)
	}
}

func TestDecodedDimensionsMatch(t *testing.T) {
	img := testImage(17, 9)

	var jpg, bm bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}
	if err := bmp.Encode(&bm, img); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"body.png", encodePNG(t, img)},
		{"body.jpg", jpg.Bytes()},
		{"body.bmp", bm.Bytes()},
		{"body.tga", encodeTGA(img, false, false)},
		{"body_rle.tga", encodeTGA(img, true, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.name, tt.data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			p := FromImage(decoded)
			if p.Width != decoded.Bounds().Dx() || p.Height != decoded.Bounds().Dy() {
				t.Errorf("pixels %dx%d, decoded %v", p.Width, p.Height, decoded.Bounds())
			}
			if p.Width != 17 || p.Height != 9 {
				t.Errorf("pixels %dx%d, want 17x9", p.Width, p.Height)
			}
		})
	}
}

func TestDecodeTGAOrigins(t *testing.T) {
	img := testImage(4, 4)

	for _, tt := range []struct {
		name        string
		topToBottom bool
		rle         bool
	}{
		{"bottom origin raw", false, false},
		{"top origin raw", true, false},
		{"bottom origin rle", false, true},
		{"top origin rle", true, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeTGA(encodeTGA(img, tt.topToBottom, tt.rle))
			if err != nil {
				t.Fatalf("DecodeTGA: %v", err)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
					want := img.NRGBAAt(x, y)
					if got != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	valid := encodeTGA(testImage(2, 2), false, false)

	colorMapped := append([]byte(nil), valid...)
	colorMapped[1] = 1
	badType := append([]byte(nil), valid...)
	badType[2] = 3
	badDepth := append([]byte(nil), valid...)
	badDepth[16] = 16

	tests := map[string][]byte{
		"short header": valid[:10],
		"color mapped": colorMapped,
		"bad type":     badType,
		"bad depth":    badDepth,
		"truncated":    valid[:len(valid)-3],
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeTGA(data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeTGAOversizedHeader(t *testing.T) {
	for name, imageType := range map[string]byte{"uncompressed": TGATypeUncompressed, "rle": TGATypeRLE} {
		t.Run(name, func(t *testing.T) {
			header := make([]byte, tgaHeaderSize)
			header[2] = imageType
			header[12], header[13] = 0xFF, 0xFF
			header[14], header[15] = 0xFF, 0xFF
			header[16] = 32

			_, err := DecodeTGA(header)
			if err == nil || !strings.Contains(err.Error(), "truncated") {
				t.Errorf("65535x65535 header with no pixels: got %v, want truncation error", err)
			}
		})
	}
}

func TestDecodeTGAFullRLEPacket(t *testing.T) {
	// 16x8 = 128 pixels in a single repeat packet: the smallest valid body.
	data := make([]byte, tgaHeaderSize)
	data[2] = TGATypeRLE
	data[12] = 16
	data[14] = 8
	data[16] = 32
	data = append(data, 0xFF, 10, 20, 30, 255)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if got := img.(*image.NRGBA).NRGBAAt(15, 7); got != (color.NRGBA{R: 30, G: 20, B: 10, A: 255}) {
		t.Errorf("last pixel = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.jpg"))
	var loadErr *assets.AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("missing file: expected *AssetLoadError, got %v", err)
	}

	corrupt := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromFile(corrupt)
	if !errors.As(err, &loadErr) {
		t.Fatalf("corrupt file: expected *AssetLoadError, got %v", err)
	}
	if loadErr.Path != corrupt {
		t.Errorf("error path = %s, want %s", loadErr.Path, corrupt)
	}
}

// encodeTGA writes img as a 32-bit TGA.
func encodeTGA(img *image.NRGBA, topToBottom, rle bool) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	header := make([]byte, tgaHeaderSize)
	header[2] = TGATypeUncompressed
	if rle {
		header[2] = TGATypeRLE
	}
	header[12], header[13] = byte(w), byte(w>>8)
	header[14], header[15] = byte(h), byte(h>>8)
	header[16] = 32
	if topToBottom {
		header[17] = 0x20
	}

	out := append([]byte(nil), header...)
	for row := 0; row < h; row++ {
		y := row
		if !topToBottom {
			y = h - 1 - row
		}
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(x, y)
			if rle {
				// One repeat packet of length 1 per pixel.
				out = append(out, 0x80)
			}
			out = append(out, c.B, c.G, c.R, c.A)
		}
	}
	return out
}
