package ui

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNilComponent    = errors.New("ui: nil component")
	ErrSelfAdd         = errors.New("ui: component cannot be its own child")
	ErrCycle           = errors.New("ui: add would make a component its own ancestor")
	ErrAlreadyAttached = errors.New("ui: component already has a parent")
	ErrNotChild        = errors.New("ui: component is not a child")
)

var _ Node = (*Component)(nil)

// Component is the composition base of every widget. It owns its children,
// its bounds and its state flags, and publishes every state change through
// events. Widgets embed it and call Init from their constructor:
//
//	func NewButton(x, y float64) *Button {
//		b := &Button{}
//		b.Init(b, "button", ui.Rect(x, y, 100, 30))
//		return b
//	}
//
// The zero value is an active, visible, parentless component.
type Component struct {
	self Node
	name string

	bounds    Rectangle
	disabled  bool
	hidden    bool
	focused   bool
	hovering  bool
	pressed   bool
	drawOrder int

	parent     *Component
	parentLink parentLink
	children   []*Component
	order      dirtyState

	controller  *Controller
	loader      ContentLoader
	initialized bool

	BoundsChanged    Event[BoundsEvent]
	PositionChanged  Event[BoundsEvent]
	FocusChanged     Event[FocusEvent]
	DrawOrderChanged Event[DrawOrderEvent]
	Clicked          Event[MouseEvent]
	RightClicked     Event[MouseEvent]
	Pressed          Event[MouseEvent]
	Hovered          Event[MouseEvent]
	Disposed         Event[Node]
}

// parentLink holds the parent's subscriptions on a child.
type parentLink struct {
	bounds, focus, order, dispose Subscription
}

// NewComponent creates a plain container component.
func NewComponent(name string, bounds Rectangle) *Component {
	c := &Component{}
	c.Init(c, name, bounds)
	return c
}

// Init stores identity and geometry and runs the widget's Initialize hook.
// self is the widget embedding c; hooks are looked up on it.
func (c *Component) Init(self Node, name string, bounds Rectangle) {
	if self == nil || self.Base() != c {
		self = c
	}
	c.self = self
	c.name = name
	c.bounds = bounds
	if c.initialized {
		return
	}
	c.initialized = true
	if i, ok := self.(Initializer); ok {
		i.Initialize()
	}
}

// Base implements Node.
func (c *Component) Base() *Component {
	return c
}

// Node returns the widget that embeds c, or c itself.
func (c *Component) Node() Node {
	if c.self == nil {
		return c
	}
	return c.self
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) String() string {
	return c.name
}

func (c *Component) Bounds() Rectangle {
	return c.bounds
}

func (c *Component) Position() Vector {
	return c.bounds.Position()
}

func (c *Component) Width() float64 {
	return c.bounds.Width
}

func (c *Component) Height() float64 {
	return c.bounds.Height
}

func (c *Component) IsActive() bool {
	return !c.disabled
}

func (c *Component) SetActive(active bool) {
	c.disabled = !active
}

func (c *Component) IsVisible() bool {
	return !c.hidden
}

func (c *Component) SetVisible(visible bool) {
	c.hidden = !visible
}

func (c *Component) HasFocus() bool {
	return c.focused
}

// IsHovering reports whether the pointer was over the component last frame.
func (c *Component) IsHovering() bool {
	return c.hovering
}

// IsPressed reports whether the left button was held over the component
// last frame.
func (c *Component) IsPressed() bool {
	return c.pressed
}

func (c *Component) DrawOrder() int {
	return c.drawOrder
}

// Parent returns the owning widget, or nil for a root.
func (c *Component) Parent() Node {
	if c.parent == nil {
		return nil
	}
	return c.parent.Node()
}

// Topmost returns the root of the tree c belongs to.
func (c *Component) Topmost() *Component {
	top := c
	for top.parent != nil {
		top = top.parent
	}
	return top
}

// Children returns the children in their current paint order.
func (c *Component) Children() []Node {
	nodes := make([]Node, len(c.children))
	for i, ch := range c.children {
		nodes[i] = ch.Node()
	}
	return nodes
}

func (c *Component) ChildCount() int {
	return len(c.children)
}

// Controller returns the user interface the component is attached to, if any.
func (c *Component) Controller() *Controller {
	return c.controller
}

// IsLoaded reports whether LoadContent has run.
func (c *Component) IsLoaded() bool {
	return c.loader != nil
}

// SetWidth changes the width, keeping the height.
func (c *Component) SetWidth(width float64) bool {
	return c.SetSize(width, c.bounds.Height)
}

// SetHeight changes the height, keeping the width.
func (c *Component) SetHeight(height float64) bool {
	return c.SetSize(c.bounds.Width, height)
}

// SetSize changes width and height. It returns false and notifies nobody
// when both are unchanged.
func (c *Component) SetSize(width, height float64) bool {
	width, height = max(width, 0), max(height, 0)
	if width == c.bounds.Width && height == c.bounds.Height {
		return false
	}
	old := c.bounds
	c.bounds.Width, c.bounds.Height = width, height
	if u, ok := c.Node().(ComponentUpdater); ok {
		u.UpdateComponents()
	}
	c.BoundsChanged.Emit(BoundsEvent{Sender: c.Node(), Old: old, New: c.bounds})
	return true
}

// SetPosition moves the component. Owned primitives move first, then the
// widget repositions its children; without an UpdateComponents hook the
// children are translated by the same offset.
func (c *Component) SetPosition(x, y float64) bool {
	if x == c.bounds.X && y == c.bounds.Y {
		return false
	}
	old := c.bounds
	dx, dy := x-old.X, y-old.Y
	c.bounds.X, c.bounds.Y = x, y
	self := c.Node()
	if m, ok := self.(PrimitiveMover); ok {
		m.MovePrimitives(dx, dy)
	}
	if u, ok := self.(ComponentUpdater); ok {
		u.UpdateComponents()
	} else {
		for _, ch := range c.children {
			ch.SetPosition(ch.bounds.X+dx, ch.bounds.Y+dy)
		}
	}
	c.PositionChanged.Emit(BoundsEvent{Sender: self, Old: old, New: c.bounds})
	return true
}

// SetBounds applies position and size as two separate notifications.
func (c *Component) SetBounds(r Rectangle) {
	c.SetPosition(r.X, r.Y)
	c.SetSize(r.Width, r.Height)
}

// SetFocus changes the focus flag, returning false when unchanged.
func (c *Component) SetFocus(focused bool) bool {
	if focused == c.focused {
		return false
	}
	c.focused = focused
	c.FocusChanged.Emit(FocusEvent{Sender: c.Node(), Focused: focused})
	return true
}

// SetDrawOrder requests a paint priority; 0 is front-most. Negative values
// are clamped to 0.
func (c *Component) SetDrawOrder(order int) bool {
	order = max(order, 0)
	if order == c.drawOrder {
		return false
	}
	old := c.drawOrder
	c.drawOrder = order
	c.DrawOrderChanged.Emit(DrawOrderEvent{Sender: c.Node(), Old: old, New: order})
	return true
}

// MarkOrderDirty schedules a re-sort of the children on the next Update.
func (c *Component) MarkOrderDirty() {
	c.order.markDirty()
}

// RequestFocus queues c for focus arbitration on the next frame.
func (c *Component) RequestFocus() {
	if c.controller == nil {
		logger.Debug("focus request from detached component", "component", c.name)
		return
	}
	c.controller.RequestFocus(c.Node())
}

// Add attaches child at the back of the draw order.
func (c *Component) Add(child Node) error {
	if child == nil || child.Base() == nil {
		return ErrNilComponent
	}
	ch := child.Base()
	if ch == c {
		return ErrSelfAdd
	}
	if ch.parent != nil || (ch.controller != nil && ch.controller.owns(ch)) {
		return fmt.Errorf("adding %s to %s: %w", ch.name, c.name, ErrAlreadyAttached)
	}
	for p := c; p != nil; p = p.parent {
		if p == ch {
			return fmt.Errorf("adding %s to %s: %w", ch.name, c.name, ErrCycle)
		}
	}

	ch.parent = c
	c.children = append(c.children, ch)
	ch.drawOrder = len(c.children)
	ch.parentLink = c.subscribeTo(ch)
	c.order.markDirty()
	ch.attach(c.controller)

	if c.loader != nil {
		if err := ch.LoadContent(c.loader); err != nil {
			logger.Warn("loading added component", "component", ch.name, "err", err)
		}
	}
	return nil
}

// Remove detaches child and its subtree from c.
func (c *Component) Remove(child Node) error {
	if child == nil || child.Base() == nil {
		return ErrNilComponent
	}
	ch := child.Base()
	i := slices.Index(c.children, ch)
	if i < 0 {
		logger.Debug("remove of unknown child", "parent", c.name, "child", ch.name)
		return fmt.Errorf("removing %s from %s: %w", ch.name, c.name, ErrNotChild)
	}

	ch.BoundsChanged.Unsubscribe(ch.parentLink.bounds)
	ch.FocusChanged.Unsubscribe(ch.parentLink.focus)
	ch.DrawOrderChanged.Unsubscribe(ch.parentLink.order)
	ch.Disposed.Unsubscribe(ch.parentLink.dispose)
	ch.parentLink = parentLink{}
	ch.parent = nil

	// new slice: a traversal in progress keeps iterating the old one
	c.children = slices.Delete(slices.Clone(c.children), i, i+1)
	c.order.markDirty()
	ch.detach()
	return nil
}

// Dispose announces that c wants to be destroyed. Whoever owns c removes it.
func (c *Component) Dispose() {
	c.Disposed.Emit(c.Node())
}

func (c *Component) subscribeTo(ch *Component) parentLink {
	return parentLink{
		bounds: ch.BoundsChanged.Subscribe(func(e BoundsEvent) {
			if h, ok := c.Node().(ItemBoundsHandler); ok {
				h.OnItemBoundsChange(e.Sender)
			}
		}),
		focus: ch.FocusChanged.Subscribe(func(e FocusEvent) {
			if h, ok := c.Node().(ItemFocusHandler); ok {
				h.OnItemFocusChange(e.Sender, e.Focused)
			}
		}),
		order: ch.DrawOrderChanged.Subscribe(func(e DrawOrderEvent) {
			if h, ok := c.Node().(DrawOrderHandler); ok {
				h.OnDrawOrderChange(e.Sender)
				return
			}
			c.order.markDirty()
		}),
		dispose: ch.Disposed.Subscribe(func(n Node) {
			if err := c.Remove(n); err != nil {
				logger.Warn("dispose", "parent", c.name, "err", err)
			}
		}),
	}
}

// attach propagates the controller reference through the subtree.
func (c *Component) attach(ctrl *Controller) {
	c.controller = ctrl
	for _, ch := range c.children {
		ch.attach(ctrl)
	}
}

// detach drops controller, focus and pointer state across the subtree.
func (c *Component) detach() {
	c.controller = nil
	c.hovering = false
	c.pressed = false
	c.SetFocus(false)
	for _, ch := range c.children {
		ch.detach()
	}
}

// Update re-sorts the children if a draw order changed, runs the widget's
// UpdateSelf hook and updates the children.
func (c *Component) Update(dt float64) {
	if c.disabled || c.hidden {
		return
	}
	if c.order.take() {
		c.children = sortByDrawOrder(c.children)
	}
	if u, ok := c.Node().(SelfUpdater); ok {
		u.UpdateSelf(dt)
	}
	for _, ch := range c.children {
		ch.Update(dt)
	}
}

// HandleInput hit-tests the pointer against the bounds, publishes the
// matching events and then hands the input to every child.
func (c *Component) HandleInput(in InputState) {
	if c.disabled || c.hidden {
		return
	}
	self := c.Node()
	hit := c.bounds.Contains(in.Cursor)
	ev := MouseEvent{Sender: self, Cursor: in.Cursor}

	if in.LeftClick {
		if hit {
			c.Clicked.Emit(ev)
			c.RequestFocus()
		} else {
			c.SetFocus(false)
		}
	}
	if in.RightClick {
		if hit {
			c.RightClicked.Emit(ev)
			c.RequestFocus()
		} else {
			c.SetFocus(false)
		}
	}

	c.pressed = hit && in.LeftDown
	if c.pressed {
		c.Pressed.Emit(ev)
	}
	c.hovering = hit
	if hit {
		c.Hovered.Emit(ev)
	}

	if h, ok := self.(SelfInputHandler); ok {
		h.HandleSelfInput(in)
	}
	for _, ch := range c.children {
		ch.HandleInput(in)
	}
}

// Draw paints the widget, then its children in list order. The list is kept
// sorted back to front.
func (c *Component) Draw(r Renderer) {
	if c.disabled || c.hidden || r == nil {
		return
	}
	if p, ok := c.Node().(Painter); ok {
		p.DrawSelf(r)
	}
	for _, ch := range c.children {
		ch.Draw(r)
	}
}

// LoadContent runs the LoadSelf hook once, then loads the children. A failing
// component does not stop its siblings; all failures are returned joined.
func (c *Component) LoadContent(loader ContentLoader) error {
	if loader == nil {
		return fmt.Errorf("loading %s: nil content loader", c.name)
	}
	var errs []error
	if c.loader == nil {
		c.loader = loader
		if u, ok := c.Node().(ContentUser); ok {
			if err := u.LoadSelf(loader); err != nil {
				logger.Warn("load content", "component", c.name, "err", err)
				errs = append(errs, fmt.Errorf("loading %s: %w", c.name, err))
			}
		}
	}
	for _, ch := range c.children {
		if err := ch.LoadContent(loader); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// resolveFocus gives focus to the winner and takes it from everybody else.
func (c *Component) resolveFocus(winner *Component) {
	c.SetFocus(c == winner)
	for _, ch := range c.children {
		ch.resolveFocus(winner)
	}
}
