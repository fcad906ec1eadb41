// Package game wires the window, renderer and scene together and runs the
// frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wobble/internal/assets"
	"github.com/Faultbox/wobble/internal/config"
	"github.com/Faultbox/wobble/internal/engine/input"
	"github.com/Faultbox/wobble/internal/engine/renderer"
	"github.com/Faultbox/wobble/internal/engine/scene"
	"github.com/Faultbox/wobble/internal/engine/window"
	"github.com/Faultbox/wobble/internal/logger"
)

// maxFrameTime caps the step fed to the animation after a stall, such as a
// window drag, so the figure does not jump.
const maxFrameTime = 0.25

// Game is the running demo.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
}

// New opens the window and builds the scene. Any failure tears down what
// was already created.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer loads GL entry points, so it must follow the context.
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Scene.ClearColor,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	loader := assets.NewManager(cfg.Data.AssetDir)
	defer loader.Close()

	g.scene, err = scene.New(cfg.Scene, loader)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	logger.Info("initialized successfully")
	return g, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		g.input.Update()
		if g.input.QuitRequested() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(g.window.DrawableSize())
			}
		}

		g.scene.Update(dt)

		g.renderer.Begin()
		g.scene.Render()
		g.renderer.End()

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("angle", g.scene.Animator().Angle()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the scene, then the window and its context.
func (g *Game) Close() {
	logger.Info("closing")

	if g.scene != nil {
		g.scene.Close()
		g.scene = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
