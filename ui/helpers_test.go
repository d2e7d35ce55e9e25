package ui

import (
	"errors"
	"image/color"
)

type fakeTexture struct {
	width, height int
}

func (t fakeTexture) Size() (int, int) {
	return t.width, t.height
}

// recordingRenderer logs every draw call in order.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) RectangleTexture(width, height int, fill, border color.Color) Texture {
	return fakeTexture{width, height}
}

func (r *recordingRenderer) DrawTexture(t Texture, x, y float64) {
	r.calls = append(r.calls, "texture")
}

func (r *recordingRenderer) DrawText(f Font, s string, x, y float64, clr color.Color) {
	r.calls = append(r.calls, s)
}

func (r *recordingRenderer) FillRect(rect Rectangle, clr color.Color) {
	r.calls = append(r.calls, "fill")
}

var errMissingAsset = errors.New("missing asset")

type fakeLoader struct {
	assets map[string]any
	loads  int
}

func (l *fakeLoader) Load(path string) (any, error) {
	l.loads++
	v, ok := l.assets[path]
	if !ok {
		return nil, errMissingAsset
	}
	return v, nil
}

// testWidget exercises the optional hooks and counts how often each runs.
type testWidget struct {
	Component

	initialized int
	updated     int
	moved       []Vector
	frames      int
	inputs      int
	loaded      int
	loadErr     error
}

func newTestWidget(name string, bounds Rectangle) *testWidget {
	w := &testWidget{}
	w.Init(w, name, bounds)
	return w
}

func (w *testWidget) Initialize() { w.initialized++ }
func (w *testWidget) UpdateComponents() { w.updated++ }
func (w *testWidget) MovePrimitives(dx, dy float64) { w.moved = append(w.moved, Vector{dx, dy}) }
func (w *testWidget) UpdateSelf(float64) { w.frames++ }
func (w *testWidget) HandleSelfInput(InputState) { w.inputs++ }

func (w *testWidget) DrawSelf(r Renderer) {
	r.DrawText(nil, w.Name(), 0, 0, color.White)
}

func (w *testWidget) LoadSelf(ContentLoader) error {
	w.loaded++
	return w.loadErr
}

// painted is a plain component that draws its name.
type painted struct {
	Component
}

func newPainted(name string, bounds Rectangle) *painted {
	p := &painted{}
	p.Init(p, name, bounds)
	return p
}

func (p *painted) DrawSelf(r Renderer) {
	r.DrawText(nil, p.Name(), 0, 0, color.White)
}

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Base().Name()
	}
	return out
}

func click(x, y float64) InputState {
	return InputState{Cursor: Vector{x, y}, LeftClick: true, LeftDown: true}
}
