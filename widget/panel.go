package widget

import (
	"fmt"

	"github.com/OpticalFlyer/hud/ui"
)

// DockState is the window edge a panel is docked against.
type DockState int

const (
	DockNone DockState = iota
	DockLeft
	DockRight
	DockTop
	DockBottom
)

type ResizeState int

const (
	resizeNone ResizeState = iota
	resizeLeft
	resizeRight
	resizeTop
	resizeBottom
	resizeTopLeft
	resizeTopRight
	resizeBottomLeft
	resizeBottomRight
)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	dockThreshold  = 20.0
	dockedSize     = 200.0
	minPanelWidth  = 100.0
	minPanelHeight = 50.0
)

var _ ui.Node = (*Panel)(nil)

// Panel is a window with a title bar. It can be dragged by the title bar,
// docked against a window edge by dragging it there, resized from its edges,
// and lays its children out in a grid below the title bar.
type Panel struct {
	ui.Component

	title  string
	layout *ui.Layout
	font   ui.Font

	// Docking state
	dockState     DockState
	isDockPreview bool
	undocked      ui.Rectangle

	// Interaction state
	isDragging  bool
	isResizing  bool
	resizeState ResizeState
	dragStart   ui.Vector
	startBounds ui.Rectangle

	windowWidth  int
	windowHeight int
}

// NewPanel creates a panel whose content is a columns x rows grid.
func NewPanel(x, y, width, height float64, title string, columns, rows int) *Panel {
	p := &Panel{}
	p.setup(title, columns, rows)
	p.Init(p, "panel:"+title, ui.Rect(x, y, width, height))
	p.layout.SetBounds(p.ContentBounds())
	return p
}

func (p *Panel) setup(title string, columns, rows int) {
	p.title = title
	p.layout = ui.NewLayout(columns, rows, ui.Rectangle{})
	p.windowWidth, p.windowHeight = 800, 600
}

func (p *Panel) Title() string {
	return p.title
}

// Layout returns the grid holding the panel's children.
func (p *Panel) Layout() *ui.Layout {
	return p.layout
}

// Add places child in the next free grid cell and attaches it to the panel.
func (p *Panel) Add(child ui.Node) error {
	if _, err := p.layout.Add(child); err != nil {
		return fmt.Errorf("adding to %s: %w", p.title, err)
	}
	if err := p.Component.Add(child); err != nil {
		p.layout.Remove(child)
		return err
	}
	return nil
}

// Remove detaches child and frees its cell.
func (p *Panel) Remove(child ui.Node) error {
	p.layout.Remove(child)
	return p.Component.Remove(child)
}

// FitToContent sizes the panel so every child gets its original size.
func (p *Panel) FitToContent() {
	w, h := p.layout.SetToDesiredSize()
	p.SetSize(max(w, minPanelWidth), max(h+titleBarHeight, minPanelHeight))
}

// ContentBounds is the area below the title bar.
func (p *Panel) ContentBounds() ui.Rectangle {
	b := p.Bounds()
	return ui.Rect(b.X, b.Y+titleBarHeight, b.Width, max(b.Height-titleBarHeight, 0))
}

func (p *Panel) UpdateComponents() {
	p.layout.SetBounds(p.ContentBounds())
	p.layout.Update()
}

func (p *Panel) UpdateSelf(float64) {
	p.layout.Update()
}

func (p *Panel) LoadSelf(loader ui.ContentLoader) error {
	font, err := ui.LoadAs[ui.Font](loader, FontAsset)
	if err != nil {
		return err
	}
	p.font = font
	return nil
}

// IsInteracting reports a drag or resize in progress.
func (p *Panel) IsInteracting() bool {
	return p.isDragging || p.isResizing
}

func (p *Panel) IsDocked() bool {
	return p.dockState != DockNone
}

func (p *Panel) DockState() DockState {
	return p.dockState
}

func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height

	w, h := float64(width), float64(height)
	b := p.Bounds()
	switch p.dockState {
	case DockLeft:
		p.SetPosition(0, 0)
		p.SetSize(b.Width, h)
	case DockRight:
		p.SetPosition(w-b.Width, 0)
		p.SetSize(b.Width, h)
	case DockTop:
		p.SetPosition(0, 0)
		p.SetSize(w, b.Height)
	case DockBottom:
		p.SetPosition(0, h-b.Height)
		p.SetSize(w, b.Height)
	}
}

func (p *Panel) checkDocking(x, y float64) {
	prev := p.dockState
	switch {
	case x < dockThreshold:
		p.dockState = DockLeft
	case float64(p.windowWidth)-x < dockThreshold:
		p.dockState = DockRight
	case y < dockThreshold:
		p.dockState = DockTop
	case float64(p.windowHeight)-y < dockThreshold:
		p.dockState = DockBottom
	default:
		p.dockState = DockNone
		if p.isDockPreview {
			b := p.Bounds()
			p.SetSize(p.undocked.Width, p.undocked.Height)
			p.SetPosition(b.X, b.Y)
		}
		p.isDockPreview = false
		return
	}

	if prev == DockNone && !p.isDockPreview {
		p.undocked = p.Bounds()
	}
	if prev != p.dockState {
		// a fresh dock starts at the default docked thickness
		switch p.dockState {
		case DockLeft, DockRight:
			p.SetSize(dockedSize, p.Bounds().Height)
		case DockTop, DockBottom:
			p.SetSize(p.Bounds().Width, dockedSize)
		}
	}
	p.isDockPreview = true
	p.UpdateWindowSize(p.windowWidth, p.windowHeight)
}

func (p *Panel) getResizeArea(x, y float64) ResizeState {
	b := p.Bounds()
	near := func(v, edge float64) bool {
		return v >= edge-resizeArea && v <= edge+resizeArea
	}
	inX := x >= b.X-resizeArea && x <= b.X+b.Width+resizeArea
	inY := y >= b.Y-resizeArea && y <= b.Y+b.Height+resizeArea

	switch p.dockState {
	case DockLeft:
		if inY && near(x, b.X+b.Width) {
			return resizeRight
		}
	case DockRight:
		if inY && near(x, b.X) {
			return resizeLeft
		}
	case DockTop:
		if inX && near(y, b.Y+b.Height) {
			return resizeBottom
		}
	case DockBottom:
		if inX && near(y, b.Y) {
			return resizeTop
		}
	case DockNone:
		left := inY && near(x, b.X)
		right := inY && near(x, b.X+b.Width)
		top := inX && near(y, b.Y)
		bottom := inX && near(y, b.Y+b.Height)
		switch {
		case left && top:
			return resizeTopLeft
		case right && top:
			return resizeTopRight
		case left && bottom:
			return resizeBottomLeft
		case right && bottom:
			return resizeBottomRight
		case left:
			return resizeLeft
		case right:
			return resizeRight
		case top:
			return resizeTop
		case bottom:
			return resizeBottom
		}
	}
	return resizeNone
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	// Don't capture title bar events if in resize area
	if p.getResizeArea(x, y) != resizeNone {
		return false
	}
	b := p.Bounds()
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+titleBarHeight
}

// HandleSelfInput drives dragging and resizing. Both continue while the
// button is held, even with the pointer outside the panel.
func (p *Panel) HandleSelfInput(in ui.InputState) {
	fx, fy := in.Cursor.X, in.Cursor.Y

	if in.LeftClick && !p.occluded(in.Cursor) {
		p.startGesture(fx, fy)
	}
	if !in.LeftDown {
		if p.isDragging && p.isDockPreview {
			p.isDockPreview = false
			if p.dockState != DockNone {
				p.UpdateWindowSize(p.windowWidth, p.windowHeight)
			}
		}
		p.isDragging = false
		p.isResizing = false
		return
	}

	if p.isDragging {
		p.SetPosition(fx-p.dragStart.X, fy-p.dragStart.Y)
		p.checkDocking(fx, fy)
		return
	}
	if p.isResizing {
		p.resize(fx-p.dragStart.X, fy-p.dragStart.Y)
	}
}

// occluded reports whether another top-level item is in front of the panel
// at the given point.
func (p *Panel) occluded(at ui.Vector) bool {
	ctrl := p.Controller()
	if ctrl == nil {
		return false
	}
	top := ctrl.TopmostAt(at)
	return top != nil && top.Base() != p.Topmost()
}

func (p *Panel) startGesture(fx, fy float64) {
	if p.isInTitleBar(fx, fy) {
		p.isDragging = true
		b := p.Bounds()
		if p.dockState == DockNone {
			p.undocked = b
		} else {
			// Undocking - restore previous undocked dimensions
			relativeX := (fx - b.X) / max(b.Width, 1)
			p.dockState = DockNone
			p.isDockPreview = false
			p.SetSize(p.undocked.Width, p.undocked.Height)
			p.SetPosition(fx-p.undocked.Width*relativeX, fy-titleBarHeight/2)
		}
		b = p.Bounds()
		p.dragStart = ui.Vector{X: fx - b.X, Y: fy - b.Y}
		return
	}
	if state := p.getResizeArea(fx, fy); state != resizeNone {
		p.isResizing = true
		p.resizeState = state
		p.dragStart = ui.Vector{X: fx, Y: fy}
		p.startBounds = p.Bounds()
	}
}

func (p *Panel) resize(dx, dy float64) {
	s := p.startBounds
	grow := func(size, d, minimum float64) float64 { return max(minimum, size+d) }
	switch p.resizeState {
	case resizeLeft:
		w := grow(s.Width, -dx, minPanelWidth)
		p.SetBounds(ui.Rect(s.X+s.Width-w, s.Y, w, s.Height))
	case resizeRight:
		p.SetSize(grow(s.Width, dx, minPanelWidth), s.Height)
	case resizeTop:
		h := grow(s.Height, -dy, minPanelHeight)
		p.SetBounds(ui.Rect(s.X, s.Y+s.Height-h, s.Width, h))
	case resizeBottom:
		p.SetSize(s.Width, grow(s.Height, dy, minPanelHeight))
	case resizeTopLeft:
		w, h := grow(s.Width, -dx, minPanelWidth), grow(s.Height, -dy, minPanelHeight)
		p.SetBounds(ui.Rect(s.X+s.Width-w, s.Y+s.Height-h, w, h))
	case resizeTopRight:
		w, h := grow(s.Width, dx, minPanelWidth), grow(s.Height, -dy, minPanelHeight)
		p.SetBounds(ui.Rect(s.X, s.Y+s.Height-h, w, h))
	case resizeBottomLeft:
		w, h := grow(s.Width, -dx, minPanelWidth), grow(s.Height, dy, minPanelHeight)
		p.SetBounds(ui.Rect(s.X+s.Width-w, s.Y, w, h))
	case resizeBottomRight:
		p.SetSize(grow(s.Width, dx, minPanelWidth), grow(s.Height, dy, minPanelHeight))
	}
	if p.dockState == DockNone {
		p.undocked = p.Bounds()
	}
}

// CursorAt returns the pointer shape for p: a resize arrow over an edge or
// corner, a move cursor over the title bar.
func (p *Panel) CursorAt(at ui.Vector) ui.CursorShape {
	state := p.getResizeArea(at.X, at.Y)
	switch {
	case p.isDragging:
		return ui.CursorMove
	case p.isResizing:
		state = p.resizeState
	case p.isInTitleBar(at.X, at.Y):
		return ui.CursorMove
	}
	switch state {
	case resizeLeft, resizeRight:
		return ui.CursorEWResize
	case resizeTop, resizeBottom:
		return ui.CursorNSResize
	case resizeTopLeft, resizeBottomRight:
		return ui.CursorNWSEResize
	case resizeTopRight, resizeBottomLeft:
		return ui.CursorNESWResize
	}
	return ui.CursorDefault
}

func (p *Panel) DrawSelf(r ui.Renderer) {
	bg := panelColor
	if p.isDockPreview {
		bg = previewColor
	}
	b := p.Bounds()
	r.FillRect(b, bg)
	r.FillRect(ui.Rect(b.X, b.Y, b.Width, titleBarHeight), titleColor)
	if p.HasFocus() {
		r.FillRect(ui.Rect(b.X, b.Y+titleBarHeight-2, b.Width, 2), focusBorderColor)
	}
	if p.font != nil && p.title != "" {
		_, h := p.font.Measure(p.title)
		r.DrawText(p.font, p.title, b.X+4, b.Y+(titleBarHeight-h)/2, textColor)
	}
}
