//go:build ignore

// This program writes the six placeholder textures the default config
// expects under resources/. The JPGs are not checked in; create them once
// before the first start with `go generate ./resources` from the module
// root, or `go run generate.go` inside this directory.
package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
)

const size = 256

func main() {
	textures := map[string]func(x, y int) color.Color{
		// Painted body: red with a gold band around the waist.
		"body.jpg": func(x, y int) color.Color {
			if y > size*45/100 && y < size*55/100 {
				return color.RGBA{R: 225, G: 180, B: 40, A: 255}
			}
			return color.RGBA{R: 190, G: 30, B: 35, A: 255}
		},
		"body_specular.jpg": stripes(200, 60),
		// Face: skin tone with two eyes near the front meridian.
		"head.jpg": func(x, y int) color.Color {
			for _, ex := range []int{size * 22 / 100, size * 28 / 100} {
				dx, dy := x-ex, y-size*45/100
				if dx*dx+dy*dy < 36 {
					return color.RGBA{R: 20, G: 20, B: 30, A: 255}
				}
			}
			return color.RGBA{R: 245, G: 205, B: 175, A: 255}
		},
		"head_specular.jpg": stripes(80, 80),
		"hand.jpg": func(x, y int) color.Color {
			return color.RGBA{R: 240, G: 200, B: 170, A: 255}
		},
		"hand_specular.jpg": stripes(120, 40),
	}

	for name, fill := range textures {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.Set(x, y, fill(x, y))
			}
		}

		f, err := os.Create(name)
		if err != nil {
			panic(err)
		}
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
			panic(err)
		}
		if err := f.Close(); err != nil {
			panic(err)
		}
	}
}

// stripes returns a grayscale specular map alternating between two levels.
func stripes(hi, lo uint8) func(x, y int) color.Color {
	return func(x, y int) color.Color {
		if math.Sin(float64(y)/8) > 0 {
			return color.Gray{Y: hi}
		}
		return color.Gray{Y: lo}
	}
}
