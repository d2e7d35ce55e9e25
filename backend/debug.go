package backend

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/hud/ui"
)

// DrawDebugInfo draws frame rates and the controller's state in the corner.
func DrawDebugInfo(screen *ebiten.Image, g *ui.Controller) {
	msg := fmt.Sprintf("FPS: %.2f TPS: %.2f\nItems: %d Modal: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.Items()), len(g.ForegroundItems()))
	if f := g.Focused(); f != nil {
		msg += "\nFocus: " + f.Base().Name()
	}
	ebitenutil.DebugPrint(screen, msg)
}
