//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	defaultScale  = 10
	bytesPerPixel = 4
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.BackendConfig
	pixels   []byte
	events   []backend.InputEvent

	currentFrame *video.FrameBuffer
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		pixels: make([]byte, video.Width*video.Height*bytesPerPixel),
	}
}

// Init opens the window and creates the screen texture
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config
	scale := config.Scale
	if scale <= 0 {
		scale = defaultScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.Width*scale),
		int32(video.Height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.Width,
		video.Height,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale)

	return nil
}

// Update processes window events and renders the frame
func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	s.events = s.events[:0]

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		s.handleEvent(e)
	}

	events := append([]backend.InputEvent(nil), s.events...)
	if !s.running {
		return events, nil
	}

	if frame != nil {
		s.currentFrame = frame
		if err := s.renderFrame(frame); err != nil {
			return events, err
		}
	}

	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

// HandleAction processes backend-specific actions
func (s *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(s.currentFrame)
	case action.EmulatorDebugToggle:
		s.config.ShowDebug = !s.config.ShowDebug
		if s.config.ShowDebug && s.config.DebugProvider != nil {
			// no debug panels in the window, dump to the log instead
			var b strings.Builder
			if err := debug.Dump(&b, s.config.DebugProvider.ExtractDebugData()); err == nil {
				slog.Info("Debug state", "dump", b.String())
			}
		}
	}
}

func (s *Backend) handleEvent(e sdl.Event) {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		s.running = false
		s.events = append(s.events, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return
		}
		act, ok := mapKey(ev.Keysym.Sym)
		if !ok {
			return
		}
		if act == action.EmulatorQuit {
			s.running = false
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Press})
		case sdl.KEYUP:
			if act.IsKeypad() {
				s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Release})
			}
		}
	}
}

// mapKey resolves an SDL keycode through the shared default key names.
func mapKey(key sdl.Keycode) (action.Action, bool) {
	name := sdl.GetKeyName(key)
	if len(name) == 1 {
		name = strings.ToLower(name)
	}
	return input.GetDefaultMapping(name)
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	for i, c := range frame.ToSlice() {
		idx := i * bytesPerPixel
		// RGBA8888 is packed, little-endian hosts store it as ABGR bytes
		s.pixels[idx] = byte(c)
		s.pixels[idx+1] = byte(c >> 8)
		s.pixels[idx+2] = byte(c >> 16)
		s.pixels[idx+3] = byte(c >> 24)
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.Width*bytesPerPixel); err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	s.renderer.SetDrawColor(0, 0, 0, 0xFF)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}
