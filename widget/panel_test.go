package widget

import (
	"errors"
	"testing"

	"github.com/OpticalFlyer/hud/ui"
)

func TestPanelLaysOutChildren(t *testing.T) {
	p := NewPanel(0, 0, 220, 50, "Tools", 2, 1)
	a := NewButton(0, 0, "A", nil)
	b := NewButton(0, 0, "B", nil)
	for _, c := range []ui.Node{a, b} {
		if err := p.Add(c); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	p.Update(0)

	if got := a.Bounds(); got != ui.Rect(0, 20, 110, 30) {
		t.Errorf("a = %v, want {0 20 110 30}", got)
	}
	if got := b.Bounds(); got != ui.Rect(110, 20, 110, 30) {
		t.Errorf("b = %v, want {110 20 110 30}", got)
	}

	// moving the panel moves the grid with it
	p.SetPosition(10, 10)
	if got := a.Bounds(); got != ui.Rect(10, 30, 110, 30) {
		t.Errorf("a after move = %v, want {10 30 110 30}", got)
	}

	if err := p.Add(NewButton(0, 0, "C", nil)); !errors.Is(err, ui.ErrLayoutFull) {
		t.Errorf("Add() to full panel error = %v, want ErrLayoutFull", err)
	}
	if p.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d after failed Add, want 2", p.ChildCount())
	}

	if err := p.Remove(b); err != nil {
		t.Fatal(err)
	}
	if p.Layout().Len() != 1 || p.ChildCount() != 1 {
		t.Errorf("Remove left layout=%d children=%d", p.Layout().Len(), p.ChildCount())
	}
}

func TestPanelAddRollsBack(t *testing.T) {
	p := NewPanel(0, 0, 200, 100, "P", 2, 2)
	other := NewPanel(0, 0, 200, 100, "Other", 1, 1)
	b := NewButton(0, 0, "B", nil)
	if err := other.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(b); !errors.Is(err, ui.ErrAlreadyAttached) {
		t.Errorf("Add() error = %v, want ErrAlreadyAttached", err)
	}
	if p.Layout().Len() != 0 {
		t.Error("failed Add left a layout cell behind")
	}
}

func TestPanelFitToContent(t *testing.T) {
	p := NewPanel(0, 0, 400, 400, "Fit", 2, 1)
	for _, name := range []string{"A", "B"} {
		if err := p.Add(NewButton(0, 0, name, nil)); err != nil {
			t.Fatal(err)
		}
	}
	p.FitToContent()
	if p.Width() != 200 || p.Height() != 50 {
		t.Errorf("size = %vx%v, want 200x50", p.Width(), p.Height())
	}
	if got := p.Layout().Bounds(); got != p.ContentBounds() {
		t.Errorf("layout bounds %v, want content bounds %v", got, p.ContentBounds())
	}
}

func TestPanelDrag(t *testing.T) {
	p := NewPanel(100, 100, 200, 150, "Drag", 1, 1)

	p.HandleInput(press(150, 110))
	if !p.IsInteracting() {
		t.Fatal("title bar press did not start a drag")
	}
	p.HandleInput(drag(250, 210))
	if got := p.Position(); got != (ui.Vector{X: 200, Y: 200}) {
		t.Errorf("position = %v, want {200 200}", got)
	}
	p.HandleInput(release(250, 210))
	if p.IsInteracting() || p.IsDocked() {
		t.Error("drag did not end cleanly")
	}

	// a press in the body does not drag
	p.HandleInput(press(300, 300))
	p.HandleInput(drag(350, 350))
	if got := p.Position(); got != (ui.Vector{X: 200, Y: 200}) {
		t.Errorf("body drag moved the panel to %v", got)
	}
}

func TestPanelDock(t *testing.T) {
	tests := []struct {
		name   string
		to     ui.Vector
		state  DockState
		bounds ui.Rectangle
	}{
		{"left", ui.Vector{X: 10, Y: 300}, DockLeft, ui.Rect(0, 0, 200, 600)},
		{"right", ui.Vector{X: 790, Y: 300}, DockRight, ui.Rect(600, 0, 200, 600)},
		{"top", ui.Vector{X: 400, Y: 10}, DockTop, ui.Rect(0, 0, 800, 200)},
		{"bottom", ui.Vector{X: 400, Y: 590}, DockBottom, ui.Rect(0, 400, 800, 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(300, 200, 200, 150, "Dock", 1, 1)
			p.UpdateWindowSize(800, 600)

			p.HandleInput(press(350, 210))
			p.HandleInput(drag(tt.to.X, tt.to.Y))
			p.HandleInput(release(tt.to.X, tt.to.Y))

			if p.DockState() != tt.state {
				t.Fatalf("DockState() = %v, want %v", p.DockState(), tt.state)
			}
			if got := p.Bounds(); got != tt.bounds {
				t.Errorf("bounds = %v, want %v", got, tt.bounds)
			}

			// docked panels follow the window
			p.UpdateWindowSize(1000, 700)
			if got := p.Bounds(); got.Width != 1000 && got.Height != 700 {
				t.Errorf("bounds after resize = %v", got)
			}
		})
	}
}

func TestPanelUndock(t *testing.T) {
	p := NewPanel(300, 200, 240, 150, "Dock", 1, 1)
	p.UpdateWindowSize(800, 600)
	p.HandleInput(press(350, 210))
	p.HandleInput(drag(10, 300))
	p.HandleInput(release(10, 300))
	if p.DockState() != DockLeft {
		t.Fatalf("DockState() = %v, want left", p.DockState())
	}

	// grab the docked title bar and pull it away
	p.HandleInput(press(100, 10))
	p.HandleInput(drag(400, 300))
	p.HandleInput(release(400, 300))
	if p.IsDocked() {
		t.Fatal("panel still docked")
	}
	if p.Width() != 240 || p.Height() != 150 {
		t.Errorf("size = %vx%v, want the undocked 240x150", p.Width(), p.Height())
	}
}

func TestPanelResize(t *testing.T) {
	tests := []struct {
		name       string
		grab, to   ui.Vector
		wantBounds ui.Rectangle
	}{
		{"bottom right", ui.Vector{X: 300, Y: 250}, ui.Vector{X: 350, Y: 300}, ui.Rect(100, 100, 250, 200)},
		{"right edge", ui.Vector{X: 300, Y: 180}, ui.Vector{X: 320, Y: 400}, ui.Rect(100, 100, 220, 150)},
		{"bottom edge", ui.Vector{X: 200, Y: 250}, ui.Vector{X: 0, Y: 270}, ui.Rect(100, 100, 200, 170)},
		{"minimum size", ui.Vector{X: 300, Y: 250}, ui.Vector{X: 0, Y: 0}, ui.Rect(100, 100, minPanelWidth, minPanelHeight)},
		{"left edge", ui.Vector{X: 100, Y: 180}, ui.Vector{X: 80, Y: 400}, ui.Rect(80, 100, 220, 150)},
		{"top edge", ui.Vector{X: 200, Y: 100}, ui.Vector{X: 0, Y: 90}, ui.Rect(100, 90, 200, 160)},
		{"top left", ui.Vector{X: 100, Y: 100}, ui.Vector{X: 90, Y: 80}, ui.Rect(90, 80, 210, 170)},
		{"top right", ui.Vector{X: 300, Y: 100}, ui.Vector{X: 320, Y: 120}, ui.Rect(100, 120, 220, 130)},
		{"bottom left", ui.Vector{X: 100, Y: 250}, ui.Vector{X: 150, Y: 260}, ui.Rect(150, 100, 150, 160)},
		{"top left minimum", ui.Vector{X: 100, Y: 100}, ui.Vector{X: 400, Y: 400}, ui.Rect(200, 200, minPanelWidth, minPanelHeight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(100, 100, 200, 150, "Resize", 1, 1)
			p.HandleInput(press(tt.grab.X, tt.grab.Y))
			if !p.IsInteracting() {
				t.Fatal("edge press did not start a resize")
			}
			p.HandleInput(drag(tt.to.X, tt.to.Y))
			p.HandleInput(release(tt.to.X, tt.to.Y))
			if got := p.Bounds(); got != tt.wantBounds {
				t.Errorf("bounds = %v, want %v", got, tt.wantBounds)
			}
		})
	}
}

func TestPanelDraw(t *testing.T) {
	p := NewPanel(0, 0, 200, 100, "Title", 1, 1)
	if err := p.LoadContent(fakeLoader{}); err != nil {
		t.Fatal(err)
	}
	r := &recordingRenderer{}
	p.Draw(r)
	want := []string{"fill", "fill", "Title"}
	if len(r.draws) != len(want) {
		t.Fatalf("draws = %v, want %v", r.draws, want)
	}
	for i := range want {
		if r.draws[i] != want[i] {
			t.Errorf("draws = %v, want %v", r.draws, want)
			break
		}
	}

	p.SetFocus(true)
	r = &recordingRenderer{}
	p.Draw(r)
	if len(r.draws) != 4 {
		t.Errorf("focused panel draws = %v, want a focus bar", r.draws)
	}
}

func TestPanelInController(t *testing.T) {
	g := ui.NewController(ui.WithScreenSize(800, 600))
	p := NewPanel(100, 100, 200, 150, "P", 1, 1)
	if err := g.Add(p); err != nil {
		t.Fatal(err)
	}
	g.ManageItems()

	g.Update(0, press(150, 110))
	if !g.IsInteractingWithUI() {
		t.Error("drag not reported as UI interaction")
	}
	if g.Focused() != ui.Node(p) {
		t.Errorf("Focused() = %v, want the panel", g.Focused())
	}
	g.Update(0, drag(160, 120))
	if got := p.Position(); got != (ui.Vector{X: 110, Y: 110}) {
		t.Errorf("position = %v, want {110 110}", got)
	}
}

func TestPanelCursorAt(t *testing.T) {
	tests := []struct {
		name string
		at   ui.Vector
		want ui.CursorShape
	}{
		{"title bar", ui.Vector{X: 150, Y: 110}, ui.CursorMove},
		{"body", ui.Vector{X: 200, Y: 200}, ui.CursorDefault},
		{"right edge", ui.Vector{X: 300, Y: 180}, ui.CursorEWResize},
		{"left edge", ui.Vector{X: 100, Y: 180}, ui.CursorEWResize},
		{"bottom edge", ui.Vector{X: 200, Y: 250}, ui.CursorNSResize},
		{"top edge", ui.Vector{X: 200, Y: 100}, ui.CursorNSResize},
		{"top left", ui.Vector{X: 100, Y: 100}, ui.CursorNWSEResize},
		{"bottom right", ui.Vector{X: 300, Y: 250}, ui.CursorNWSEResize},
		{"top right", ui.Vector{X: 300, Y: 100}, ui.CursorNESWResize},
		{"bottom left", ui.Vector{X: 100, Y: 250}, ui.CursorNESWResize},
		{"outside", ui.Vector{X: 500, Y: 500}, ui.CursorDefault},
	}

	p := NewPanel(100, 100, 200, 150, "Cursor", 1, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CursorAt(tt.at); got != tt.want {
				t.Errorf("CursorAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	// a gesture keeps its cursor wherever the pointer goes
	p.HandleInput(press(300, 180))
	if got := p.CursorAt(ui.Vector{X: 500, Y: 500}); got != ui.CursorEWResize {
		t.Errorf("CursorAt() while resizing = %v, want EW", got)
	}
	p.HandleInput(release(300, 180))
	p.HandleInput(press(150, 110))
	if got := p.CursorAt(ui.Vector{X: 500, Y: 500}); got != ui.CursorMove {
		t.Errorf("CursorAt() while dragging = %v, want move", got)
	}
}

func overlappingPanels(t *testing.T) (*ui.Controller, *Panel, *Panel) {
	t.Helper()
	g := ui.NewController(ui.WithScreenSize(800, 600))
	back := NewPanel(0, 0, 200, 150, "Back", 1, 1)
	front := NewPanel(50, 5, 200, 150, "Front", 1, 1)
	for _, p := range []*Panel{back, front} {
		if err := g.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	g.ManageItems()
	if items := g.Items(); len(items) != 2 || items[1] != ui.Node(front) {
		t.Fatalf("front panel is not in front")
	}
	return g, back, front
}

func TestPanelOverlapDrag(t *testing.T) {
	g, back, front := overlappingPanels(t)

	// both title bars are under the pointer; only the front one moves
	g.Update(0, press(100, 15))
	g.Update(0, drag(150, 65))
	if got := back.Position(); got != (ui.Vector{}) {
		t.Errorf("back moved to %v", got)
	}
	if got := front.Position(); got != (ui.Vector{X: 100, Y: 55}) {
		t.Errorf("front = %v, want {100 55}", got)
	}
	if back.IsInteracting() {
		t.Error("covered panel started a gesture")
	}
	g.Update(0, release(150, 65))

	// the uncovered part of the back title bar still drags it
	g.Update(0, press(10, 10))
	g.Update(0, drag(30, 40))
	if got := back.Position(); got != (ui.Vector{X: 20, Y: 30}) {
		t.Errorf("back = %v, want {20 30}", got)
	}
	if items := g.Items(); items[1] != ui.Node(back) {
		t.Error("dragged panel not brought to the front")
	}
}

func TestControllerCursor(t *testing.T) {
	g, _, _ := overlappingPanels(t)

	tests := []struct {
		name string
		at   ui.Vector
		want ui.CursorShape
	}{
		{"front right edge", ui.Vector{X: 250, Y: 80}, ui.CursorEWResize},
		{"back left edge", ui.Vector{X: 2, Y: 80}, ui.CursorEWResize},
		{"back edge under front", ui.Vector{X: 200, Y: 80}, ui.CursorDefault},
		{"front title", ui.Vector{X: 150, Y: 15}, ui.CursorMove},
		{"empty", ui.Vector{X: 600, Y: 400}, ui.CursorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Update(0, release(tt.at.X, tt.at.Y))
			if got := g.Cursor(); got != tt.want {
				t.Errorf("Cursor() at %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
