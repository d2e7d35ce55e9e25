package ui

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// WindowSizeHandler is implemented by top-level widgets that follow the
// window size, such as docked panels.
type WindowSizeHandler interface {
	UpdateWindowSize(width, height int)
}

// Interactor is implemented by widgets with gestures that outlive the pointer
// leaving their bounds, such as dragging.
type Interactor interface {
	IsInteracting() bool
}

// itemLink holds the controller's subscriptions on a top-level item.
type itemLink struct {
	order, dispose Subscription
}

// Controller manages all UI elements. It owns the top-level components,
// routes input to them, keeps them sorted by draw order and decides which
// single component holds focus after each frame.
//
// Top-level components live in one of two lists. Foreground items are
// modal: while any exist only they receive input, and everything behind
// them is drawn dimmed.
type Controller struct {
	items      robustList
	foreground robustList
	links      map[*Component]itemLink

	cursor     Vector
	focusQueue []*Component
	focused    *Component
	order      dirtyState

	loader   ContentLoader
	screen   Rectangle
	dimColor color.Color
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDimColor sets the overlay drawn between primary and foreground items.
func WithDimColor(c color.Color) ControllerOption {
	return func(g *Controller) { g.dimColor = c }
}

// WithScreenSize sets the initial window size.
func WithScreenSize(width, height int) ControllerOption {
	return func(g *Controller) { g.screen = Rect(0, 0, float64(width), float64(height)) }
}

// NewController creates a new UI controller
func NewController(opts ...ControllerOption) *Controller {
	g := &Controller{
		links:    make(map[*Component]itemLink),
		screen:   Rect(0, 0, 800, 600),
		dimColor: color.RGBA{A: 128},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Add schedules n as a primary top-level item. It appears on the next
// ManageItems, in front of the existing items.
func (g *Controller) Add(n Node) error {
	c, err := g.checkAdd(n)
	if err != nil {
		return err
	}
	g.items.add(c)
	return nil
}

// AddForeground schedules n as a modal top-level item.
func (g *Controller) AddForeground(n Node) error {
	c, err := g.checkAdd(n)
	if err != nil {
		return err
	}
	g.foreground.add(c)
	return nil
}

func (g *Controller) checkAdd(n Node) (*Component, error) {
	if n == nil || n.Base() == nil {
		return nil, ErrNilComponent
	}
	c := n.Base()
	if c.parent != nil || g.owns(c) || (c.controller != nil && c.controller != g) {
		return nil, fmt.Errorf("adding %s to controller: %w", c.name, ErrAlreadyAttached)
	}
	return c, nil
}

// Remove schedules n for removal from whichever top-level list holds it.
func (g *Controller) Remove(n Node) error {
	if n == nil || n.Base() == nil {
		return ErrNilComponent
	}
	c := n.Base()
	if !g.owns(c) {
		logger.Debug("remove of unknown top-level item", "component", c.name)
		return fmt.Errorf("removing %s from controller: %w", c.name, ErrNotChild)
	}
	g.items.remove(c)
	g.foreground.remove(c)
	return nil
}

// owns reports whether c is, or is about to be, a top-level item. An item
// whose removal is pending is no longer owned and may be added again.
func (g *Controller) owns(c *Component) bool {
	return g.items.owns(c) || g.foreground.owns(c)
}

// RequestFocus queues n for the next arbitration. Nothing is decided here.
func (g *Controller) RequestFocus(n Node) {
	if n == nil || n.Base() == nil {
		return
	}
	g.focusQueue = append(g.focusQueue, n.Base())
}

// Update routes input, updates every item and then manages the lists.
func (g *Controller) Update(dt float64, in InputState) {
	g.cursor = in.Cursor
	targets := g.items.items
	if g.foreground.len() > 0 {
		targets = g.foreground.items
	}
	for _, c := range targets {
		c.HandleInput(in)
	}
	for _, c := range g.items.items {
		c.Update(dt)
	}
	for _, c := range g.foreground.items {
		c.Update(dt)
	}
	g.ManageItems()
}

// ManageItems applies buffered adds and removes, resolves the focus queue and
// re-sorts the top-level lists if a draw order changed, including the focus
// winner moving to the front in this pass.
func (g *Controller) ManageItems() {
	addedItems, removedItems := g.items.apply()
	addedFg, removedFg := g.foreground.apply()
	// removals first, so an item moved between the lists keeps its new link
	g.release(removedItems)
	g.release(removedFg)
	g.adopt(addedItems)
	g.adopt(addedFg)

	if len(g.focusQueue) > 0 {
		g.resolveFocus()
	}

	if g.order.take() {
		g.items.sort()
		g.foreground.sort()
	}
}

func (g *Controller) release(removed []*Component) {
	for _, c := range removed {
		link := g.links[c]
		c.DrawOrderChanged.Unsubscribe(link.order)
		c.Disposed.Unsubscribe(link.dispose)
		delete(g.links, c)
		if g.focused != nil && g.focused.Topmost() == c {
			g.focused = nil
		}
		c.detach()
	}
}

func (g *Controller) adopt(added []*Component) {
	for _, c := range added {
		g.links[c] = itemLink{
			order: c.DrawOrderChanged.Subscribe(func(DrawOrderEvent) {
				g.order.markDirty()
			}),
			dispose: c.Disposed.Subscribe(func(n Node) {
				if err := g.Remove(n); err != nil {
					logger.Warn("dispose", "err", err)
				}
			}),
		}
		c.drawOrder = 0
		g.order.markDirty()
		c.attach(g)
		if h, ok := c.Node().(WindowSizeHandler); ok {
			h.UpdateWindowSize(int(g.screen.Width), int(g.screen.Height))
		}
		if g.loader != nil {
			if err := c.LoadContent(g.loader); err != nil {
				logger.Warn("loading top-level item", "component", c.name, "err", err)
			}
		}
	}
}

// resolveFocus picks the front-most requester, brings it to the front and
// tells every component whether it won.
func (g *Controller) resolveFocus() {
	queue := g.focusQueue
	g.focusQueue = nil
	slices.SortStableFunc(queue, CompareComponents)
	winner := queue[len(queue)-1]

	if winner.controller == g {
		for p := winner; p != nil; p = p.parent {
			p.SetDrawOrder(0)
		}
		g.focused = winner
	} else {
		logger.Debug("focus won by component outside the controller", "component", winner.name)
		g.focused = nil
	}

	for _, c := range g.items.items {
		c.resolveFocus(winner)
	}
	for _, c := range g.foreground.items {
		c.resolveFocus(winner)
	}
}

// Draw draws all UI elements: primary items, then, if any modal item exists,
// a dimming overlay and the foreground items on top.
func (g *Controller) Draw(r Renderer) {
	if r == nil {
		return
	}
	for _, c := range g.items.items {
		c.Draw(r)
	}
	if g.foreground.len() == 0 {
		return
	}
	r.FillRect(g.screen, g.dimColor)
	for _, c := range g.foreground.items {
		c.Draw(r)
	}
}

// LoadContent hands the loader to every item. Items added later are loaded
// when they are attached.
func (g *Controller) LoadContent(loader ContentLoader) error {
	if loader == nil {
		return errors.New("ui: nil content loader")
	}
	g.loader = loader
	var errs []error
	for _, l := range []*robustList{&g.items, &g.foreground} {
		for _, c := range l.items {
			if err := c.LoadContent(loader); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// UpdateWindowSize updates the window size for all top-level items
func (g *Controller) UpdateWindowSize(width, height int) {
	g.screen = Rect(0, 0, float64(width), float64(height))
	for _, l := range []*robustList{&g.items, &g.foreground} {
		for _, c := range l.items {
			if h, ok := c.Node().(WindowSizeHandler); ok {
				h.UpdateWindowSize(width, height)
			}
		}
	}
}

// IsInteractingWithUI returns true if the pointer is over, pressing or
// dragging any UI element, or a modal item is open.
func (g *Controller) IsInteractingWithUI() bool {
	if g.foreground.len() > 0 {
		return true
	}
	for _, c := range g.items.items {
		if c.hovering || c.pressed {
			return true
		}
		if i, ok := c.Node().(Interactor); ok && i.IsInteracting() {
			return true
		}
	}
	return false
}

// HasModal reports whether foreground items currently gate input.
func (g *Controller) HasModal() bool {
	return g.foreground.len() > 0
}

// Focused returns the component that won the last arbitration, if it is
// still attached.
func (g *Controller) Focused() Node {
	if g.focused == nil || g.focused.controller != g {
		return nil
	}
	return g.focused.Node()
}

// Items returns the primary items back to front.
func (g *Controller) Items() []Node {
	return g.items.nodes()
}

// ForegroundItems returns the modal items back to front.
func (g *Controller) ForegroundItems() []Node {
	return g.foreground.nodes()
}

// TopmostAt returns the front-most visible top-level item under p, or nil.
// While a modal item is open only foreground items are considered.
func (g *Controller) TopmostAt(p Vector) Node {
	items := g.items.items
	if g.foreground.len() > 0 {
		items = g.foreground.items
	}
	for i := len(items) - 1; i >= 0; i-- {
		c := items[i]
		if !c.hidden && !c.disabled && c.bounds.Contains(p) {
			return c.Node()
		}
	}
	return nil
}

// Cursor returns the pointer shape for the last input. An item in a gesture
// decides; otherwise the front-most item under the pointer does, and items
// it covers are not asked.
func (g *Controller) Cursor() CursorShape {
	items := g.items.items
	if g.foreground.len() > 0 {
		items = g.foreground.items
	}
	for _, c := range items {
		if i, ok := c.Node().(Interactor); ok && i.IsInteracting() {
			if s, ok := c.Node().(CursorShaper); ok {
				return s.CursorAt(g.cursor)
			}
		}
	}
	for i := len(items) - 1; i >= 0; i-- {
		c := items[i]
		if c.hidden || c.disabled {
			continue
		}
		if s, ok := c.Node().(CursorShaper); ok {
			if shape := s.CursorAt(g.cursor); shape != CursorDefault {
				return shape
			}
		}
		if c.bounds.Contains(g.cursor) {
			return CursorDefault
		}
	}
	return CursorDefault
}

// Screen returns the window bounds.
func (g *Controller) Screen() Rectangle {
	return g.screen
}
