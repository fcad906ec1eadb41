// Package texture decodes images and uploads them as OpenGL 2D textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// BytesPerPixel is the size of one BGRA texel.
const BytesPerPixel = 4

// Pixels is image data laid out for glTexImage2D: rows run bottom to top and
// every texel is stored as B, G, R, A bytes.
type Pixels struct {
	Width  int
	Height int
	BGRA   []byte
}

// Decode decodes image data. name is only used to pick the TGA decoder,
// which has no magic number for image.Decode to sniff.
func Decode(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// FromImage converts img into upload order. The image's top row becomes the
// last row of the buffer because OpenGL samples with a bottom-left origin.
func FromImage(img image.Image) *Pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := &Pixels{
		Width:  w,
		Height: h,
		BGRA:   make([]byte, w*h*BytesPerPixel),
	}

	nrgba, _ := img.(*image.NRGBA)
	for y := 0; y < h; y++ {
		row := p.BGRA[(h-1-y)*w*BytesPerPixel:]
		for x := 0; x < w; x++ {
			var c color.NRGBA
			if nrgba != nil {
				c = nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			} else {
				c = color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			}
			i := x * BytesPerPixel
			row[i] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			row[i+3] = c.A
		}
	}
	return p
}

// DecodePixels decodes data and converts it into upload order.
func DecodePixels(name string, data []byte) (*Pixels, error) {
	img, err := Decode(name, data)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	return FromImage(img), nil
}

// At returns the BGRA texel at column x, row y counted from the bottom.
func (p *Pixels) At(x, y int) [4]byte {
	i := (y*p.Width + x) * BytesPerPixel
	return [4]byte{p.BGRA[i], p.BGRA[i+1], p.BGRA[i+2], p.BGRA[i+3]}
}
