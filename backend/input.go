package backend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/hud/ui"
)

// InputPoller builds the per-frame ui.InputState from the mouse, with a
// single touch standing in for the left button.
type InputPoller struct {
	touches []ebiten.TouchID
}

// Poll snapshots the pointer. Call it once per Update.
func (p *InputPoller) Poll() ui.InputState {
	x, y := ebiten.CursorPosition()
	in := ui.InputState{
		Cursor:     ui.Vector{X: float64(x), Y: float64(y)},
		LeftClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		LeftDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) == 1 {
		id := p.touches[0]
		tx, ty := ebiten.TouchPosition(id)
		in.Cursor = ui.Vector{X: float64(tx), Y: float64(ty)}
		in.LeftDown = true
		in.LeftClick = in.LeftClick || inpututil.TouchPressDuration(id) == 1
	}
	return in
}

var cursorShapes = map[ui.CursorShape]ebiten.CursorShapeType{
	ui.CursorDefault:    ebiten.CursorShapeDefault,
	ui.CursorMove:       ebiten.CursorShapeMove,
	ui.CursorEWResize:   ebiten.CursorShapeEWResize,
	ui.CursorNSResize:   ebiten.CursorShapeNSResize,
	ui.CursorNWSEResize: ebiten.CursorShapeNWSEResize,
	ui.CursorNESWResize: ebiten.CursorShapeNESWResize,
}

// SetCursor shows the pointer shape the UI asks for.
func SetCursor(shape ui.CursorShape) {
	s, ok := cursorShapes[shape]
	if !ok {
		s = ebiten.CursorShapeDefault
	}
	ebiten.SetCursorShape(s)
}
