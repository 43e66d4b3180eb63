// Package editor implements the landscape viewer application.
package editor

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/nvollmar/landforge/internal/config"
	"github.com/nvollmar/landforge/internal/document"
	"github.com/nvollmar/landforge/internal/engine/camera"
	"github.com/nvollmar/landforge/internal/engine/debug"
	"github.com/nvollmar/landforge/internal/engine/input"
	"github.com/nvollmar/landforge/internal/engine/lighting"
	"github.com/nvollmar/landforge/internal/engine/picking"
	"github.com/nvollmar/landforge/internal/engine/render"
	"github.com/nvollmar/landforge/internal/engine/scene"
	"github.com/nvollmar/landforge/internal/engine/window"
	"github.com/nvollmar/landforge/internal/logger"
	"github.com/nvollmar/landforge/internal/surface"
	"github.com/nvollmar/landforge/internal/terrain"
)

// Editor owns the window, terrain pipeline and frame loop.
type Editor struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.OrbitCamera

	store    *document.Store
	dm       *terrain.DataManager
	rm       *render.ResourceManager
	system   *scene.TerrainSystem
	renderer *scene.LandscapeRenderer
	bounds   *scene.BoundsRenderer
	capture  *debug.ScreenshotCapture

	showBounds bool
}

// Sun angles for the fixed directional light.
const (
	sunAzimuth   = 215
	sunElevation = 55
)

// New creates the editor: window and GL context first, then the
// terrain pipeline on top of them.
func New(cfg *config.Config) (*Editor, error) {
	e := &Editor{cfg: cfg}

	var err error
	e.window, err = window.New(window.Config{
		Title:      "Landforge",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		e.window.Close()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.25, 0.45, 0.65, 1.0)

	e.store, err = document.OpenStore(cfg.Data.StorePath)
	if err != nil {
		e.window.Close()
		return nil, fmt.Errorf("open terrain store: %w", err)
	}

	count, err := e.store.Count()
	if err == nil && count == 0 {
		logger.Info("empty terrain store, seeding demo landscape")
		if err := seedDemoTerrain(e.store); err != nil {
			logger.Warn("demo seeding failed", zap.Error(err))
		}
	}

	region := terrain.DefaultRegion()
	e.dm = terrain.NewDataManager(e.store, region, cfg.Terrain.ChunkSize, cfg.Terrain.ChunkRange)
	sm := surface.NewManager(region)
	e.rm = render.NewResourceManager(render.NewGLDevice())
	e.system = scene.NewTerrainSystem(e.dm, sm, e.rm)

	e.renderer, err = scene.NewLandscapeRenderer()
	if err != nil {
		e.Close()
		return nil, err
	}
	e.bounds, err = scene.NewBoundsRenderer()
	if err != nil {
		e.Close()
		return nil, err
	}
	e.capture = debug.NewScreenshotCapture("screenshots", "landforge")

	e.input = input.New()
	e.camera = camera.NewOrbitCamera()
	e.camera.SetCenter(demoExtent*terrain.LandblockSize/2, demoExtent*terrain.LandblockSize/2, 0)
	e.camera.Distance = 2000

	return e, nil
}

// Run drives the frame loop until quit.
func (e *Editor) Run() error {
	e.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for e.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if e.input.Update() {
			break
		}
		e.handleEvents()
		e.handleHeldKeys(dt)

		e.system.Update(e.camera.Position())

		e.renderFrame()
		e.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugf("fps %d (%.2fms)", frameCount, dt*1000)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (e *Editor) handleEvents() {
	for _, ev := range e.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			gl.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
		case input.EventKeyDown:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				e.running = false
			case sdl.SCANCODE_B:
				e.showBounds = !e.showBounds
			case sdl.SCANCODE_F12:
				e.saveScreenshot()
			}
		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				e.focusTerrainAt(float32(ev.MouseX), float32(ev.MouseY))
			}
		case input.EventMouseMove:
			if e.input.IsButtonHeld(sdl.BUTTON_RIGHT) {
				e.camera.HandleDrag(float32(ev.RelX), float32(ev.RelY))
			}
		case input.EventMouseWheel:
			e.camera.HandleZoom(ev.WheelY)
		}
	}
}

func (e *Editor) handleHeldKeys(dt float32) {
	// Pan speed in camera units per second, scaled inside HandleMovement.
	step := dt * 60
	var forward, right float32
	if e.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward += step
	}
	if e.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward -= step
	}
	if e.input.IsKeyHeld(sdl.SCANCODE_D) {
		right += step
	}
	if e.input.IsKeyHeld(sdl.SCANCODE_A) {
		right -= step
	}
	if forward != 0 || right != 0 {
		e.camera.HandleMovement(forward, right, 0)
	}
}

func (e *Editor) renderFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := e.viewProjection()
	visible := e.system.VisibleChunks(viewProj)

	lightDir := lighting.TravelDirection(sunAzimuth, sunElevation)
	e.renderer.Render(viewProj, lightDir, visible)
	if e.showBounds {
		e.bounds.Render(viewProj, visible)
	}
}

func (e *Editor) viewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(60), e.window.AspectRatio(), 1.0, 40000.0)
	return proj.Mul4(e.camera.ViewMatrix())
}

// focusTerrainAt recenters the orbit camera on the terrain point under
// the given pixel position. Falls back to the zero plane when the ray
// never meets the terrain.
func (e *Editor) focusTerrainAt(screenX, screenY float32) {
	w, h := e.window.GetSize()
	if w == 0 || h == 0 {
		return
	}

	ray := picking.ScreenToRay(screenX, screenY, float32(w), float32(h), e.viewProjection().Inv())
	if hit, ok := ray.IntersectHeightfield(e.dm.GetHeightAtPosition, 40000, 8); ok {
		e.camera.SetCenter(hit.X(), hit.Y(), hit.Z())
		return
	}
	if x, y, ok := ray.IntersectPlaneZ(0); ok {
		e.camera.SetCenter(x, y, 0)
	}
}

func (e *Editor) saveScreenshot() {
	w, h := e.window.GetSize()
	if w <= 0 || h <= 0 {
		return
	}

	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	name, err := e.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close releases GPU resources, the store and the window.
func (e *Editor) Close() {
	if e.bounds != nil {
		e.bounds.Destroy()
	}
	if e.renderer != nil {
		e.renderer.Destroy()
	}
	if e.rm != nil {
		e.rm.Close()
	}
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			logger.Warn("closing terrain store", zap.Error(err))
		}
	}
	if e.window != nil {
		e.window.Close()
	}
}

// demoExtent is the side length in landblocks of the seeded demo area.
const demoExtent = 32

// seedDemoTerrain writes a rolling landscape with a road grid into an
// empty store so a fresh install shows something.
func seedDemoTerrain(store *document.Store) error {
	for lbY := 0; lbY < demoExtent; lbY++ {
		for lbX := 0; lbX < demoExtent; lbX++ {
			id := terrain.NewLandblockID(lbX, lbY)
			entries := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
			for vx := 0; vx < terrain.VertexDim; vx++ {
				for vy := 0; vy < terrain.VertexDim; vy++ {
					gx := lbX*8 + vx
					gy := lbY*8 + vy

					h := 40.0 +
						18.0*gomath.Sin(float64(gx)*0.11) +
						14.0*gomath.Cos(float64(gy)*0.09) +
						6.0*gomath.Sin(float64(gx+gy)*0.23)
					if h < 0 {
						h = 0
					}

					entry := terrain.TerrainEntry{Height: byte(h)}
					entry.Type = byte((gx/16 + gy/16) % 8)
					if gx%32 == 0 || gy%32 == 0 {
						entry.Road = 1
					}
					entries[vx*terrain.VertexDim+vy] = entry
				}
			}
			if err := store.PutLandblock(id, entries); err != nil {
				return err
			}
		}
	}
	return nil
}
