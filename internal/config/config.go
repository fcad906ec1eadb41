// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/wobble/pkg/math"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Data     DataConfig     `yaml:"data"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDir string `yaml:"asset_dir"` // Base directory for relative asset paths
}

// SceneConfig describes everything loaded at startup: shader sources,
// textures, the objects that make up the figure and the values pushed to
// the shader's uniforms.
type SceneConfig struct {
	ShaderVert string            `yaml:"shader_vert"` // Empty selects the built-in shader
	ShaderFrag string            `yaml:"shader_frag"`
	Textures   map[string]string `yaml:"textures"` // Texture name -> image path
	Objects    []ObjectConfig    `yaml:"objects"`  // Drawn in this order

	Animation  AnimationConfig `yaml:"animation"`
	Material   MaterialConfig  `yaml:"material"`
	Light      LightConfig     `yaml:"light"`
	ViewPos    math.Vec3       `yaml:"view_pos"`
	ClearColor [4]float32      `yaml:"clear_color"`
}

// ObjectConfig describes one sphere of the figure.
type ObjectConfig struct {
	Name     string    `yaml:"name"`
	Radius   float32   `yaml:"radius"`
	Center   math.Vec3 `yaml:"center"`
	Diffuse  string    `yaml:"diffuse"`  // Key into SceneConfig.Textures
	Specular string    `yaml:"specular"` // Key into SceneConfig.Textures
	Sectors  int       `yaml:"sectors"`  // Longitude segments; 0 uses the default
	Stacks   int       `yaml:"stacks"`   // Latitude segments; 0 uses the default
}

// AnimationConfig holds the swing oscillator parameters.
type AnimationConfig struct {
	Rate  float64 `yaml:"rate"`  // Degrees per second
	Bound float64 `yaml:"bound"` // Degrees; direction flips once |angle| exceeds it
}

// MaterialConfig holds the material.* uniforms.
type MaterialConfig struct {
	Shininess    float32   `yaml:"shininess"`
	SpecularTint math.Vec3 `yaml:"specular_tint"`
}

// LightConfig holds the light.* uniforms.
type LightConfig struct {
	Position  math.Vec3 `yaml:"position"`
	Constant  float32   `yaml:"constant"`
	Linear    float32   `yaml:"linear"`
	Quadratic float32   `yaml:"quadratic"`
	Ambient   math.Vec3 `yaml:"ambient"`
	Diffuse   math.Vec3 `yaml:"diffuse"`
	Specular  math.Vec3 `yaml:"specular"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the stock wobble toy.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:  "Wobble",
			Width:  800,
			Height: 800,
			VSync:  true,
		},
		Data: DataConfig{
			AssetDir: ".",
		},
		Scene: SceneConfig{
			Textures: map[string]string{
				"body":          "resources/body.jpg",
				"body_specular": "resources/body_specular.jpg",
				"head":          "resources/head.jpg",
				"head_specular": "resources/head_specular.jpg",
				"hand":          "resources/hand.jpg",
				"hand_specular": "resources/hand_specular.jpg",
			},
			// The head sphere wears the "head" pair and the body the "body"
			// pair; both hands share one pair.
			Objects: []ObjectConfig{
				{Name: "head", Radius: 0.21, Center: math.Vec3{X: 0, Y: 0.55, Z: 0}, Diffuse: "head", Specular: "head_specular"},
				{Name: "body", Radius: 0.4, Center: math.Vec3{}, Diffuse: "body", Specular: "body_specular"},
				{Name: "left_hand", Radius: 0.1, Center: math.Vec3{X: 0, Y: 0.35, Z: -0.35}, Diffuse: "hand", Specular: "hand_specular"},
				{Name: "right_hand", Radius: 0.1, Center: math.Vec3{X: 0, Y: 0.35, Z: 0.35}, Diffuse: "hand", Specular: "hand_specular"},
			},
			Animation: AnimationConfig{
				Rate:  30,
				Bound: 30,
			},
			Material: MaterialConfig{
				Shininess:    100000,
				SpecularTint: math.Splat(0.5),
			},
			Light: LightConfig{
				Position:  math.Vec3{X: 0, Y: 2.5, Z: -1},
				Constant:  0.1,
				Linear:    0.09,
				Quadratic: 0.032,
				Ambient:   math.Splat(0.2),
				Diffuse:   math.Splat(0.5),
				Specular:  math.Splat(1),
			},
			ViewPos:    math.Vec3{X: 0, Y: 0, Z: -3},
			ClearColor: [4]float32{0.1, 0.2, 0.2, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks cross references inside the scene description.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	anim := c.Scene.Animation
	if !finite(anim.Rate) || anim.Rate < 0 {
		return fmt.Errorf("animation rate must be a non-negative number, got %g", anim.Rate)
	}
	if !finite(anim.Bound) || anim.Bound <= 0 {
		return fmt.Errorf("animation bound must be positive, got %g", anim.Bound)
	}
	if len(c.Scene.Objects) == 0 {
		return fmt.Errorf("scene has no objects")
	}
	for i, obj := range c.Scene.Objects {
		if obj.Radius <= 0 {
			return fmt.Errorf("object %d (%s): radius must be positive", i, obj.Name)
		}
		for _, key := range []string{obj.Diffuse, obj.Specular} {
			if _, ok := c.Scene.Textures[key]; !ok {
				return fmt.Errorf("object %d (%s): unknown texture %q", i, obj.Name, key)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}
