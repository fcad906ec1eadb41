package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color TGA
// with 24 or 32 bits per pixel. The result always has a top-left origin,
// whatever the origin bit in the file says.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: truncated id field")
	}

	r := &tgaReader{
		data: data[offset:],
		bpp:  bpp / 8,
		rle:  imageType == TGATypeRLE,
	}

	// Reject short files before allocating from header-supplied sizes.
	// An RLE packet covers at most 128 pixels.
	pixels := width * height
	need := pixels * r.bpp
	if r.rle {
		need = (pixels + 127) / 128 * (1 + r.bpp)
	}
	if len(r.data) < need {
		return nil, fmt.Errorf("tga: pixel data truncated: %dx%d needs at least %d bytes, have %d",
			width, height, need, len(r.data))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < pixels; i++ {
		c, err := r.next()
		if err != nil {
			return nil, err
		}
		x, y := i%width, i/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetNRGBA(x, y, c)
	}
	return img, nil
}

// tgaReader yields pixels in file order, expanding RLE packets.
type tgaReader struct {
	data   []byte
	pos    int
	bpp    int
	rle    bool
	count  int  // Pixels left in the current packet
	repeat bool // Current packet repeats one pixel
	last   color.NRGBA
}

func (r *tgaReader) next() (color.NRGBA, error) {
	if !r.rle {
		return r.readPixel()
	}

	if r.count == 0 {
		if r.pos >= len(r.data) {
			return color.NRGBA{}, fmt.Errorf("tga: pixel data truncated")
		}
		header := r.data[r.pos]
		r.pos++
		r.count = int(header&0x7F) + 1
		r.repeat = header&0x80 != 0
		if r.repeat {
			c, err := r.readPixel()
			if err != nil {
				return c, err
			}
			r.last = c
		}
	}

	r.count--
	if r.repeat {
		return r.last, nil
	}
	return r.readPixel()
}

// readPixel reads one BGR(A) pixel.
func (r *tgaReader) readPixel() (color.NRGBA, error) {
	if r.pos+r.bpp > len(r.data) {
		return color.NRGBA{}, fmt.Errorf("tga: pixel data truncated")
	}
	p := r.data[r.pos : r.pos+r.bpp]
	r.pos += r.bpp

	c := color.NRGBA{B: p[0], G: p[1], R: p[2], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}
