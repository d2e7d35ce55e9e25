package widget

import (
	"errors"
	"image/color"

	"github.com/OpticalFlyer/hud/ui"
)

// fakeFont is 7px per rune and 14px high.
type fakeFont struct{}

func (fakeFont) Measure(s string) (float64, float64) {
	return float64(7 * len([]rune(s))), 14
}

type fakeLoader struct{}

func (fakeLoader) Load(path string) (any, error) {
	if path == FontAsset {
		return fakeFont{}, nil
	}
	return nil, errors.New("no such asset: " + path)
}

type fakeTexture struct {
	width, height int
}

func (t fakeTexture) Size() (int, int) {
	return t.width, t.height
}

type recordingRenderer struct {
	textures int
	draws    []string
}

func (r *recordingRenderer) RectangleTexture(width, height int, fill, border color.Color) ui.Texture {
	r.textures++
	return fakeTexture{width, height}
}

func (r *recordingRenderer) DrawTexture(t ui.Texture, x, y float64) {
	r.draws = append(r.draws, "texture")
}

func (r *recordingRenderer) DrawText(f ui.Font, s string, x, y float64, clr color.Color) {
	r.draws = append(r.draws, s)
}

func (r *recordingRenderer) FillRect(rect ui.Rectangle, clr color.Color) {
	r.draws = append(r.draws, "fill")
}

func press(x, y float64) ui.InputState {
	return ui.InputState{Cursor: ui.Vector{X: x, Y: y}, LeftClick: true, LeftDown: true}
}

func drag(x, y float64) ui.InputState {
	return ui.InputState{Cursor: ui.Vector{X: x, Y: y}, LeftDown: true}
}

func release(x, y float64) ui.InputState {
	return ui.InputState{Cursor: ui.Vector{X: x, Y: y}}
}

func center(r ui.Rectangle) ui.Vector {
	return ui.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
