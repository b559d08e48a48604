package warp

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudInterval is how often the HUD text is rebuilt, in seconds.
const hudInterval = 0.1

// hud prints frame rate and transition state in the top-left corner.
type hud struct {
	text       string
	lastUpdate float64
}

func (h *hud) update(p *Portal, dt float64) {
	h.lastUpdate += dt
	if h.text != "" && h.lastUpdate < hudInterval {
		return
	}
	h.lastUpdate = 0
	h.text = hudText(p, ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (h *hud) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, h.text)
}

// hudText formats the HUD lines.
func hudText(p *Portal, fps, tps float64) string {
	cam := p.Camera()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscene: %s\nprogress: %.2f\ngain: %.2f\noverlay: %.2f\ncamera: (%.2f, %.2f, %.2f)",
		fps, tps, p.Scene(), p.Progress(), p.Gain(), p.OverlayOpacity(),
		cam.Position.X, cam.Position.Y, cam.Position.Z)
}
