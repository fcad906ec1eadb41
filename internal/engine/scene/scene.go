// Package scene builds the wobble figure from configuration and draws it.
package scene

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/wobble/internal/assets"
	"github.com/Faultbox/wobble/internal/config"
	"github.com/Faultbox/wobble/internal/engine/mesh"
	"github.com/Faultbox/wobble/internal/engine/scene/shaders"
	"github.com/Faultbox/wobble/internal/engine/shader"
	"github.com/Faultbox/wobble/internal/engine/texture"
	"github.com/Faultbox/wobble/internal/logger"
)

// Scene holds the figure's objects, the program and textures they share,
// and the swing animation.
type Scene struct {
	program  *shader.Program
	textures map[string]*texture.Texture
	objects  []*ObjectRenderer
	animator *Animator
	log      *zap.Logger
}

// New loads every asset named by cfg and builds the objects in order.
// Requires a current OpenGL context. Any failure releases whatever was
// already created and returns the error; a partly built scene is never
// returned.
func New(cfg config.SceneConfig, loader *assets.Manager) (_ *Scene, err error) {
	s := &Scene{
		textures: make(map[string]*texture.Texture),
		animator: NewAnimator(cfg.Animation.Rate, cfg.Animation.Bound),
		log:      logger.Named("scene"),
	}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	vertSrc, fragSrc, err := shaderSources(cfg, loader)
	if err != nil {
		return nil, err
	}
	s.program, err = shader.New(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("building shader program: %w", err)
	}
	applyLighting(s.program, cfg)
	s.log.Debug("shader program linked", zap.Uint32("program", s.program.ID))

	if err := s.loadTextures(cfg, loader); err != nil {
		return nil, err
	}

	for _, obj := range cfg.Objects {
		diffuse, specular := s.textures[obj.Diffuse], s.textures[obj.Specular]
		if diffuse == nil || specular == nil {
			return nil, fmt.Errorf("object %s: textures %q/%q not loaded", obj.Name, obj.Diffuse, obj.Specular)
		}

		m := mesh.Sphere(obj.Radius, obj.Center, orDefault(obj.Sectors, mesh.DefaultSectors), orDefault(obj.Stacks, mesh.DefaultStacks))
		r, err := NewObjectRenderer(obj.Name, m, s.program, diffuse, specular)
		if err != nil {
			return nil, err
		}
		s.objects = append(s.objects, r)

		s.log.Debug("object built",
			zap.String("name", obj.Name),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("indices", r.IndexCount()),
		)
	}

	s.log.Info("scene ready",
		zap.Int("objects", len(s.objects)),
		zap.Int("textures", len(s.textures)),
	)
	return s, nil
}

// shaderSources returns the configured shader sources, falling back to the
// embedded ones for empty paths.
func shaderSources(cfg config.SceneConfig, loader *assets.Manager) (string, string, error) {
	vert, frag := shaders.PhongVertexShader, shaders.PhongFragmentShader
	var err error
	if cfg.ShaderVert != "" {
		if vert, err = loader.LoadString(cfg.ShaderVert); err != nil {
			return "", "", err
		}
	}
	if cfg.ShaderFrag != "" {
		if frag, err = loader.LoadString(cfg.ShaderFrag); err != nil {
			return "", "", err
		}
	}
	return vert, frag, nil
}

// loadTextures uploads each texture referenced by an object once. Objects
// naming the same texture share the handle.
func (s *Scene) loadTextures(cfg config.SceneConfig, loader *assets.Manager) error {
	for _, name := range textureKeys(cfg.Objects) {
		path, ok := cfg.Textures[name]
		if !ok {
			return fmt.Errorf("texture %q is not configured", name)
		}
		data, err := loader.Load(path)
		if err != nil {
			return err
		}
		tex, err := texture.Load(path, data)
		if err != nil {
			return err
		}
		s.textures[name] = tex

		s.log.Debug("texture loaded",
			zap.String("name", name),
			zap.String("path", path),
			zap.Int("width", tex.Width),
			zap.Int("height", tex.Height),
		)
	}
	return nil
}

// Update advances the animation by dt seconds.
func (s *Scene) Update(dt float64) {
	s.animator.Update(dt)
}

// Render draws every object, in configuration order, with the current
// model transform.
func (s *Scene) Render() {
	s.program.Use()
	model := s.animator.ModelTransform()
	for _, o := range s.objects {
		o.Draw(model)
	}
}

// Animator returns the scene's swing animator.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Objects returns the object renderers in draw order.
func (s *Scene) Objects() []*ObjectRenderer {
	return s.objects
}

// Close releases every GPU object owned by the scene.
func (s *Scene) Close() {
	for _, o := range s.objects {
		o.Close()
	}
	s.objects = nil
	for _, t := range s.textures {
		if t != nil {
			t.Close()
		}
	}
	s.textures = nil
	if s.program != nil {
		s.program.Close()
		s.program = nil
	}
}

// textureKeys returns the texture keys the objects reference, each once,
// in sorted order.
func textureKeys(objects []config.ObjectConfig) []string {
	seen := make(map[string]bool)
	var names []string
	for _, obj := range objects {
		for _, name := range []string{obj.Diffuse, obj.Specular} {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
