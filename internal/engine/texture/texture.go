package texture

import (
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wobble/internal/assets"
)

// Texture is a 2D OpenGL texture owned by the holder until Close.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadFromFile decodes the image at path and uploads it.
// Errors are *assets.AssetLoadError.
func LoadFromFile(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, assets.LoadError(path, err, "read")
	}
	return Load(path, data)
}

// Load decodes image data read from name and uploads it.
// Errors are *assets.AssetLoadError.
func Load(name string, data []byte) (*Texture, error) {
	pixels, err := DecodePixels(name, data)
	if err != nil {
		return nil, assets.LoadError(name, err, "decode")
	}
	return Upload(pixels), nil
}

// Upload creates a texture from pixels already in upload order. It leaves
// the texture bound on unit 0.
func Upload(p *Pixels) *Texture {
	t := &Texture{Width: p.Width, Height: p.Height}

	gl.GenTextures(1, &t.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	// Rows are tightly packed; widths that are not a multiple of 4 are fine.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(p.Width), int32(p.Height), 0,
		gl.BGRA, gl.UNSIGNED_BYTE, unsafe.Pointer(&p.BGRA[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	// The default min filter samples mip levels; without a chain the
	// texture renders black.
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return t
}

// Use binds the texture to the given texture unit (0, 1, ...).
func (t *Texture) Use(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Close deletes the GPU texture. Safe to call more than once.
func (t *Texture) Close() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
