package ui

import "math"

// Default clamps for a cell's size.
const (
	DefaultCellMin = 0.0
	DefaultCellMax = 500.0
)

type axis int

const (
	axisX axis = iota
	axisY
)

// LayoutCell wraps one component placed in a Layout. The cell is the
// authority on the component's size once the layout has run: the component
// is resized to the cell, never the other way round, except when the
// component is resized from outside, which the cell adopts as its new
// starting point.
type LayoutCell struct {
	node        Node
	column, row int
	boundsSub   Subscription
	disposeSub  Subscription

	x, y                  float64
	width, height         float64
	goalWidth, goalHeight float64

	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

func newLayoutCell(n Node, column, row int) *LayoutCell {
	b := n.Base().Bounds()
	c := &LayoutCell{
		node:       n,
		column:     column,
		row:        row,
		x:          b.X,
		y:          b.Y,
		goalWidth:  b.Width,
		goalHeight: b.Height,
		MinWidth:   DefaultCellMin,
		MaxWidth:   DefaultCellMax,
		MinHeight:  DefaultCellMin,
		MaxHeight:  DefaultCellMax,
	}
	c.width = c.clamp(axisX, b.Width)
	c.height = c.clamp(axisY, b.Height)
	return c
}

// Node returns the wrapped component.
func (c *LayoutCell) Node() Node {
	return c.node
}

// Slot returns the grid coordinates of the cell.
func (c *LayoutCell) Slot() (column, row int) {
	return c.column, c.row
}

func (c *LayoutCell) Bounds() Rectangle {
	return Rect(c.x, c.y, c.width, c.height)
}

func (c *LayoutCell) Width() float64 {
	return c.width
}

func (c *LayoutCell) Height() float64 {
	return c.height
}

// Goal returns the size the component had when it was placed.
func (c *LayoutCell) Goal() (width, height float64) {
	return c.goalWidth, c.goalHeight
}

// ProposeWidth offers the cell a new width. Shrinking is always accepted;
// growing only when it brings the width strictly closer to the goal.
func (c *LayoutCell) ProposeWidth(width float64) bool {
	return c.propose(axisX, width)
}

// ProposeHeight is ProposeWidth for the vertical axis.
func (c *LayoutCell) ProposeHeight(height float64) bool {
	return c.propose(axisY, height)
}

func (c *LayoutCell) propose(a axis, v float64) bool {
	v = c.clamp(a, v)
	cur, goal := c.size(a), c.goal(a)
	if v < cur || math.Abs(v-goal) < math.Abs(cur-goal) {
		c.setSize(a, v)
		return true
	}
	return false
}

// force sets the size regardless of the goal, within the clamps.
func (c *LayoutCell) force(a axis, v float64) {
	c.setSize(a, c.clamp(a, v))
}

func (c *LayoutCell) clamp(a axis, v float64) float64 {
	lo, hi := c.limits(a)
	return math.Max(lo, math.Min(hi, v))
}

func (c *LayoutCell) limits(a axis) (lo, hi float64) {
	if a == axisX {
		return c.MinWidth, c.MaxWidth
	}
	return c.MinHeight, c.MaxHeight
}

func (c *LayoutCell) size(a axis) float64 {
	if a == axisX {
		return c.width
	}
	return c.height
}

func (c *LayoutCell) goal(a axis) float64 {
	if a == axisX {
		return c.goalWidth
	}
	return c.goalHeight
}

func (c *LayoutCell) setSize(a axis, v float64) {
	if a == axisX {
		c.width = v
	} else {
		c.height = v
	}
}

func (c *LayoutCell) place(a axis, v float64) {
	if a == axisX {
		c.x = v
	} else {
		c.y = v
	}
}

// adopt takes over a size the component was given from outside the layout.
func (c *LayoutCell) adopt() {
	b := c.node.Base().Bounds()
	c.width = c.clamp(axisX, b.Width)
	c.height = c.clamp(axisY, b.Height)
}

// apply pushes the cell's geometry to the component.
func (c *LayoutCell) apply() {
	comp := c.node.Base()
	comp.SetPosition(c.x, c.y)
	comp.SetSize(c.width, c.height)
}
