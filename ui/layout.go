package ui

import (
	"errors"
	"math"
)

// ErrLayoutFull is returned when every cell of a layout is occupied. The grid
// has a fixed capacity.
var ErrLayoutFull = errors.New("ui: layout has no free cell")

// Flow selects the order in which free cells are filled.
type Flow int

const (
	FlowHorizontal Flow = iota // row by row
	FlowVertical               // column by column
)

// HorizontalAlignment selects the column scan direction.
type HorizontalAlignment int

const (
	LeftToRight HorizontalAlignment = iota
	RightToLeft
)

// VerticalAlignment selects the row scan direction.
type VerticalAlignment int

const (
	TopDown VerticalAlignment = iota
	BottomUp
)

// Sizing selects how a row's width (or a column's height) is shared out.
type Sizing int

const (
	// SizingEvenly offers every cell the same share, then lets cells below
	// their goal take up what the others turned down.
	SizingEvenly Sizing = iota
	// SizingFirstInLine offers the first cell everything the others do not
	// occupy. Known to produce poor results when goals differ a lot.
	SizingFirstInLine
)

// maxSettleRounds bounds the negotiation per line.
const maxSettleRounds = 64

// Layout places components into a fixed columns x rows grid and sizes them
// row by row (widths) and column by column (heights).
//
// The layout is lazy: Add, Remove, RequestUpdate and any configuration change
// mark it dirty, and the next Update runs a full pass.
type Layout struct {
	bounds        Rectangle
	columns, rows int
	cells         [][]*LayoutCell // [column][row]

	flow    Flow
	hAlign  HorizontalAlignment
	vAlign  VerticalAlignment
	sizing  Sizing
	padding float64
	margin  float64

	state    dirtyState
	applying bool
}

// NewLayout creates an empty grid covering bounds.
func NewLayout(columns, rows int, bounds Rectangle) *Layout {
	columns, rows = max(columns, 1), max(rows, 1)
	cells := make([][]*LayoutCell, columns)
	for i := range cells {
		cells[i] = make([]*LayoutCell, rows)
	}
	return &Layout{
		bounds:  bounds,
		columns: columns,
		rows:    rows,
		cells:   cells,
	}
}

func (l *Layout) Columns() int {
	return l.columns
}

func (l *Layout) Rows() int {
	return l.rows
}

func (l *Layout) Bounds() Rectangle {
	return l.bounds
}

// SetBounds moves or resizes the area the grid is laid out in.
func (l *Layout) SetBounds(r Rectangle) {
	if r == l.bounds {
		return
	}
	l.bounds = r
	l.state.markDirty()
}

func (l *Layout) SetFlow(f Flow) {
	l.flow = f
	l.state.markDirty()
}

func (l *Layout) SetAlignment(h HorizontalAlignment, v VerticalAlignment) {
	l.hAlign, l.vAlign = h, v
	l.state.markDirty()
}

func (l *Layout) SetSizing(s Sizing) {
	l.sizing = s
	l.state.markDirty()
}

// SetSpacing sets the padding around the grid and the margin between cells.
func (l *Layout) SetSpacing(padding, margin float64) {
	l.padding, l.margin = max(padding, 0), max(margin, 0)
	l.state.markDirty()
}

func (l *Layout) Padding() float64 {
	return l.padding
}

func (l *Layout) Margin() float64 {
	return l.margin
}

// IsDirty reports whether the next Update will lay the grid out again.
func (l *Layout) IsDirty() bool {
	return l.state.isDirty()
}

// RequestUpdate marks the layout dirty. Requests made while the layout is
// pushing sizes to its own components are ignored.
func (l *Layout) RequestUpdate() {
	if l.applying {
		return
	}
	l.state.markDirty()
}

// Add places n into the first free cell of the scan order. The component's
// current size becomes the cell's goal.
func (l *Layout) Add(n Node) (*LayoutCell, error) {
	if n == nil || n.Base() == nil {
		return nil, ErrNilComponent
	}
	if cell := l.CellOf(n); cell != nil {
		return cell, nil
	}
	col, row, ok := l.firstFree()
	if !ok {
		logger.Warn("layout full", "component", n.Base().Name(), "columns", l.columns, "rows", l.rows)
		return nil, ErrLayoutFull
	}
	cell := newLayoutCell(n, col, row)
	cell.boundsSub = n.Base().BoundsChanged.Subscribe(func(BoundsEvent) {
		if l.applying {
			return
		}
		cell.adopt()
		l.RequestUpdate()
	})
	cell.disposeSub = n.Base().Disposed.Subscribe(func(n Node) {
		l.Remove(n)
	})
	l.cells[col][row] = cell
	l.state.markDirty()
	return cell, nil
}

// Remove frees the cell holding n. Disposing a component frees its cell too.
func (l *Layout) Remove(n Node) bool {
	cell := l.CellOf(n)
	if cell == nil {
		return false
	}
	n.Base().BoundsChanged.Unsubscribe(cell.boundsSub)
	n.Base().Disposed.Unsubscribe(cell.disposeSub)
	l.cells[cell.column][cell.row] = nil
	l.state.markDirty()
	return true
}

// Cell returns the cell at column, row, or nil when empty or out of range.
func (l *Layout) Cell(column, row int) *LayoutCell {
	if column < 0 || column >= l.columns || row < 0 || row >= l.rows {
		return nil
	}
	return l.cells[column][row]
}

// CellOf returns the cell holding n.
func (l *Layout) CellOf(n Node) *LayoutCell {
	if n == nil {
		return nil
	}
	var found *LayoutCell
	l.scan(func(col, row int) bool {
		if c := l.cells[col][row]; c != nil && c.node.Base() == n.Base() {
			found = c
			return false
		}
		return true
	})
	return found
}

// Cells returns the occupied cells in scan order.
func (l *Layout) Cells() []*LayoutCell {
	var cells []*LayoutCell
	l.scan(func(col, row int) bool {
		if c := l.cells[col][row]; c != nil {
			cells = append(cells, c)
		}
		return true
	})
	return cells
}

// Len returns the number of occupied cells.
func (l *Layout) Len() int {
	return len(l.Cells())
}

// Update lays the grid out if it is dirty and reports whether it did.
func (l *Layout) Update() bool {
	if !l.state.take() {
		return false
	}
	l.UpdateLayout()
	return true
}

// UpdateLayout runs a full pass regardless of the dirty state: every row
// shares out width, every column shares out height, then the components are
// resized and moved to their cells.
func (l *Layout) UpdateLayout() {
	for row := 0; row < l.rows; row++ {
		l.distribute(l.rowCells(row), axisX)
	}
	for col := 0; col < l.columns; col++ {
		l.distribute(l.columnCells(col), axisY)
	}

	l.applying = true
	defer func() { l.applying = false }()
	for _, c := range l.Cells() {
		c.apply()
	}
	l.state = clean
}

// SetToDesiredSize resizes the layout to what it would need if every cell got
// its goal size, and returns that size.
func (l *Layout) SetToDesiredSize() (width, height float64) {
	for row := 0; row < l.rows; row++ {
		width = math.Max(width, l.desired(l.rowCells(row), axisX))
	}
	for col := 0; col < l.columns; col++ {
		height = math.Max(height, l.desired(l.columnCells(col), axisY))
	}
	l.SetBounds(Rect(l.bounds.X, l.bounds.Y, width, height))
	return width, height
}

func (l *Layout) desired(cells []*LayoutCell, a axis) float64 {
	if len(cells) == 0 {
		return 0
	}
	sum := 2*l.padding + float64(len(cells)-1)*l.margin
	for _, c := range cells {
		sum += c.goal(a)
	}
	return sum
}

// distribute sizes and positions one line of cells along axis a.
func (l *Layout) distribute(cells []*LayoutCell, a axis) {
	n := len(cells)
	if n == 0 {
		return
	}
	origin, extent := l.bounds.X, l.bounds.Width
	reverse := l.hAlign == RightToLeft
	if a == axisY {
		origin, extent = l.bounds.Y, l.bounds.Height
		reverse = l.vAlign == BottomUp
	}
	available := math.Max(extent-2*l.padding-float64(n-1)*l.margin, 0)

	switch l.sizing {
	case SizingFirstInLine:
		firstInLine(cells, a, available)
	default:
		evenly(cells, a, available)
	}

	if reverse {
		pos := origin + extent - l.padding
		for _, c := range cells {
			pos -= c.size(a)
			c.place(a, pos)
			pos -= l.margin
		}
		return
	}
	pos := origin + l.padding
	for _, c := range cells {
		c.place(a, pos)
		pos += c.size(a) + l.margin
	}
}

// evenly proposes equal shares, then settles the line so it fills available.
func evenly(cells []*LayoutCell, a axis, available float64) {
	for i, share := range splitEven(available, len(cells)) {
		cells[i].propose(a, share)
	}
	settle(cells, a, available)
}

// settle closes the gap between the line's total size and available. Space
// goes first to cells below their goal, then to anyone under their maximum;
// a deficit is taken back by shrink proposals, which are always accepted.
func settle(cells []*LayoutCell, a axis, available float64) {
	for round := 0; round < maxSettleRounds; round++ {
		before := total(cells, a)
		left := available - before
		if left == 0 {
			return
		}
		if left > 0 {
			growers := filter(cells, func(c *LayoutCell) bool {
				_, hi := c.limits(a)
				return c.size(a) < c.goal(a) && c.size(a) < hi
			})
			progressed := false
			for i, share := range splitEven(left, len(growers)) {
				c := growers[i]
				if c.propose(a, math.Min(c.size(a)+share, c.goal(a))) {
					progressed = true
				}
			}
			if progressed {
				continue
			}
			stretchable := filter(cells, func(c *LayoutCell) bool {
				_, hi := c.limits(a)
				return c.size(a) < hi
			})
			for i, share := range splitEven(left, len(stretchable)) {
				c := stretchable[i]
				c.force(a, c.size(a)+share)
			}
		} else {
			shrinkable := filter(cells, func(c *LayoutCell) bool {
				lo, _ := c.limits(a)
				return c.size(a) > lo
			})
			for i, share := range splitEven(-left, len(shrinkable)) {
				c := shrinkable[i]
				c.propose(a, c.size(a)-share)
			}
		}
		if total(cells, a) == before {
			return
		}
	}
}

// firstInLine offers the first cell all space the other cells leave free.
func firstInLine(cells []*LayoutCell, a axis, available float64) {
	rest := total(cells[1:], a)
	cells[0].propose(a, available-rest)
}

// splitEven splits total into n whole-pixel shares that add up to total. The
// first shares take the leftover pixels and the first one any fraction.
func splitEven(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	shares := make([]float64, n)
	base := math.Floor(total / float64(n))
	rest := total - base*float64(n)
	for i := range shares {
		shares[i] = base
		if rest >= 1 {
			shares[i]++
			rest--
		}
	}
	shares[0] += rest
	return shares
}

func total(cells []*LayoutCell, a axis) float64 {
	var sum float64
	for _, c := range cells {
		sum += c.size(a)
	}
	return sum
}

func filter(cells []*LayoutCell, keep func(*LayoutCell) bool) []*LayoutCell {
	var out []*LayoutCell
	for _, c := range cells {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// rowCells returns a row's occupied cells in column scan order.
func (l *Layout) rowCells(row int) []*LayoutCell {
	var cells []*LayoutCell
	for _, col := range l.columnOrder() {
		if c := l.cells[col][row]; c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}

// columnCells returns a column's occupied cells in row scan order.
func (l *Layout) columnCells(col int) []*LayoutCell {
	var cells []*LayoutCell
	for _, row := range l.rowOrder() {
		if c := l.cells[col][row]; c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}

func (l *Layout) columnOrder() []int {
	return order(l.columns, l.hAlign == RightToLeft)
}

func (l *Layout) rowOrder() []int {
	return order(l.rows, l.vAlign == BottomUp)
}

func order(n int, reverse bool) []int {
	idx := make([]int, n)
	for i := range idx {
		if reverse {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

// scan visits every slot in flow order until fn returns false.
func (l *Layout) scan(fn func(col, row int) bool) {
	if l.flow == FlowVertical {
		for _, col := range l.columnOrder() {
			for _, row := range l.rowOrder() {
				if !fn(col, row) {
					return
				}
			}
		}
		return
	}
	for _, row := range l.rowOrder() {
		for _, col := range l.columnOrder() {
			if !fn(col, row) {
				return
			}
		}
	}
}

func (l *Layout) firstFree() (col, row int, ok bool) {
	l.scan(func(c, r int) bool {
		if l.cells[c][r] == nil {
			col, row, ok = c, r, true
			return false
		}
		return true
	})
	return col, row, ok
}
