package warp

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	defaultFOV        = 50
	audioSampleRate   = 48000
	orbitSensitivity  = 0.005
	wheelZoomStep     = 0.1
	surfaceScanlines  = 32
	pulseNormalize    = 18 // Base+Amplitude of the stock pulse
	enterButtonWidth  = 220
	enterButtonHeight = 44
)

// Portal frame geometry in model space: an obsidian ring around a
// rectangular surface centred on x=0, standing on y=1.8.
var (
	frameOuter = [4]Vec3{{X: -2, Y: 1.8}, {X: 2, Y: 1.8}, {X: 2, Y: 6.8}, {X: -2, Y: 6.8}}
	frameInner = [4]Vec3{{X: -1.5, Y: 2.3}, {X: 1.5, Y: 2.3}, {X: 1.5, Y: 6.3}, {X: -1.5, Y: 6.3}}

	colorBackground = color.RGBA{R: 5, G: 0, B: 5, A: 255}
	colorFrame      = color.RGBA{R: 75, G: 0, B: 130, A: 255}
	colorButton     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// FOV is the vertical field of view in degrees. Zero means 50.
	FOV     float64
	ShowHUD bool
	// AudioName and AudioData, when set, load a looping ambience whose
	// volume follows the portal's gain. AudioName selects the decoder by
	// extension.
	AudioName string
	AudioData []byte
	// ScreenshotDir is where F12 and scripted screenshots are written.
	ScreenshotDir string
	// Configs, when set, is polled each frame for hot-reloaded configs.
	Configs <-chan Config
}

// Game adapts a Portal to ebiten.Game. Space, Enter or the on-screen button
// enters the portal; Backspace goes back; dragging orbits the camera; the
// wheel zooms; F12 takes a screenshot.
type Game struct {
	portal  *Portal
	view    Viewport
	width   int
	height  int
	configs <-chan Config

	hud             *hud
	screenshotDir   string
	screenshotQueue []string

	dragging     bool
	dragX, dragY int
}

// NewGame creates a Game for p. The portal's scripted screenshot steps are
// routed to the game's screenshot queue.
func NewGame(p *Portal, cfg RunConfig) *Game {
	fov := cfg.FOV
	if fov <= 0 {
		fov = defaultFOV
	}
	g := &Game{
		portal:        p,
		view:          Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height), FOV: fov},
		width:         cfg.Width,
		height:        cfg.Height,
		configs:       cfg.Configs,
		screenshotDir: cfg.ScreenshotDir,
	}
	if g.screenshotDir == "" {
		g.screenshotDir = "screenshots"
	}
	if cfg.ShowHUD {
		g.hud = &hud{}
	}
	p.SetCaptureFunc(g.Screenshot)
	return g
}

// Run opens a window and runs p until the window is closed.
func Run(p *Portal, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	if len(cfg.AudioData) > 0 {
		ctx := audio.NewContext(audioSampleRate)
		player, err := LoadLoop(ctx, cfg.AudioName, cfg.AudioData)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		player.Play()
		p.SetVolume(player)
	}

	if err := ebiten.RunGame(NewGame(p, cfg)); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if g.configs != nil {
		select {
		case cfg, ok := <-g.configs:
			if ok {
				g.portal.SetConfig(cfg)
			} else {
				g.configs = nil
			}
		default:
		}
	}

	g.handleInput()
	g.portal.Update(dt)
	if g.hud != nil {
		g.hud.update(g.portal, dt)
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.portal.Enter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.portal.Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.portal.Scene() == SceneNether && g.buttonRect().contains(x, y) {
			g.portal.Enter()
		} else {
			g.dragging = true
			g.dragX, g.dragY = x, y
		}
	}
	if g.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = false
		} else if x != g.dragX || y != g.dragY {
			g.portal.Orbit(-float64(x-g.dragX)*orbitSensitivity, float64(y-g.dragY)*orbitSensitivity, 1)
			g.dragX, g.dragY = x, y
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.portal.Orbit(0, 0, 1-wy*wheelZoomStep)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cam := g.portal.Camera()
	rot := g.portal.Rotation()
	g.drawSurface(screen, cam, rot)
	g.drawRing(screen, cam, rot, frameOuter)
	g.drawRing(screen, cam, rot, frameInner)

	if a := g.portal.OverlayOpacity(); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height),
			color.RGBA{A: uint8(math.Round(a * 255))}, false)
	}

	if g.portal.Scene() == SceneNether {
		r := g.buttonRect()
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, colorButton, true)
	}

	if g.hud != nil {
		g.hud.draw(screen)
	}

	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// drawRing strokes a closed quad of model-space points.
func (g *Game) drawRing(screen *ebiten.Image, cam Camera, rot Vec3, pts [4]Vec3) {
	for i := range pts {
		a, okA := g.view.Project(cam, rotateEuler(pts[i], rot))
		b, okB := g.view.Project(cam, rotateEuler(pts[(i+1)%len(pts)], rot))
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, colorFrame, true)
	}
}

// drawSurface fills the portal surface with horizontal strokes tinted by the
// current pulse.
func (g *Game) drawSurface(screen *ebiten.Image, cam Camera, rot Vec3) {
	k := Clamp01(g.portal.Pulse() / pulseNormalize)
	tint := color.RGBA{R: uint8(160 + 95*k), G: 0, B: uint8(160 + 80*k), A: 255}

	bl, br, tl := frameInner[0], frameInner[1], frameInner[3]
	height := tl.Y - bl.Y
	for i := 0; i <= surfaceScanlines; i++ {
		y := bl.Y + height*float64(i)/surfaceScanlines
		a, okA := g.view.Project(cam, rotateEuler(Vec3{X: bl.X, Y: y}, rot))
		b, okB := g.view.Project(cam, rotateEuler(Vec3{X: br.X, Y: y}, rot))
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, tint, false)
	}
}

type screenRect struct{ x, y, w, h int }

func (r screenRect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// buttonRect is the "enter" button, bottom-centre like the portal page's.
func (g *Game) buttonRect() screenRect {
	return screenRect{
		x: (g.width - enterButtonWidth) / 2,
		y: g.height*9/10 - enterButtonHeight,
		w: enterButtonWidth,
		h: enterButtonHeight,
	}
}

// rotateEuler rotates p by Euler angles r applied in X, Y, Z order.
func rotateEuler(p, r Vec3) Vec3 {
	if r.X != 0 {
		s, c := math.Sincos(r.X)
		p.Y, p.Z = p.Y*c-p.Z*s, p.Y*s+p.Z*c
	}
	if r.Y != 0 {
		s, c := math.Sincos(r.Y)
		p.X, p.Z = p.X*c+p.Z*s, -p.X*s+p.Z*c
	}
	if r.Z != 0 {
		s, c := math.Sincos(r.Z)
		p.X, p.Y = p.X*c-p.Y*s, p.X*s+p.Y*c
	}
	return p
}
