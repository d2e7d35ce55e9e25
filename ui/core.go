package ui

// Node is anything that can live in the component tree.
// Widgets satisfy it by embedding Component.
type Node interface {
	Base() *Component
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Rect is shorthand for building a Rectangle.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rectangle) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Position returns the top-left corner.
func (r Rectangle) Position() Vector {
	return Vector{X: r.X, Y: r.Y}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Vector is a point or offset in screen space.
type Vector struct {
	X, Y float64
}

// The hook interfaces below are optional. Component looks them up on the
// widget passed to Init and calls whichever the widget implements.

// Initializer creates a widget's sub-components. Called once from Init.
type Initializer interface {
	Initialize()
}

// ComponentUpdater repositions a widget's own children after its bounds or
// position changed.
type ComponentUpdater interface {
	UpdateComponents()
}

// PrimitiveMover moves directly owned drawables before UpdateComponents runs.
type PrimitiveMover interface {
	MovePrimitives(dx, dy float64)
}

// SelfUpdater runs per-frame widget logic before children are updated.
type SelfUpdater interface {
	UpdateSelf(dt float64)
}

// SelfInputHandler sees the raw input snapshot after the standard hit tests.
type SelfInputHandler interface {
	HandleSelfInput(in InputState)
}

// Painter draws a widget's own visuals. Children are drawn afterwards.
type Painter interface {
	DrawSelf(r Renderer)
}

// ContentUser creates visual resources once a ContentLoader is available.
type ContentUser interface {
	LoadSelf(loader ContentLoader) error
}

// ItemBoundsHandler reacts to a child's size change.
type ItemBoundsHandler interface {
	OnItemBoundsChange(child Node)
}

// ItemFocusHandler reacts to a child gaining or losing focus.
type ItemFocusHandler interface {
	OnItemFocusChange(child Node, focused bool)
}

// DrawOrderHandler replaces the default reaction to a child's draw order
// change, which is to re-sort the children on the next Update.
type DrawOrderHandler interface {
	OnDrawOrderChange(child Node)
}
