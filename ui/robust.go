package ui

import "slices"

type pendingOp struct {
	c      *Component
	remove bool
}

// robustList buffers adds and removes until apply, so a traversal of items
// is never invalidated by a handler that mutates the list.
type robustList struct {
	items   []*Component
	pending []pendingOp
}

func (l *robustList) add(c *Component) {
	l.pending = append(l.pending, pendingOp{c: c})
}

func (l *robustList) remove(c *Component) {
	l.pending = append(l.pending, pendingOp{c: c, remove: true})
}

// apply performs the buffered operations in order and reports the net
// change against the previous contents.
func (l *robustList) apply() (added, removed []*Component) {
	if len(l.pending) == 0 {
		return nil, nil
	}
	ops := l.pending
	l.pending = nil
	before := l.items
	items := slices.Clone(before)
	for _, op := range ops {
		i := slices.Index(items, op.c)
		switch {
		case op.remove && i >= 0:
			items = slices.Delete(items, i, i+1)
		case !op.remove && i < 0:
			items = append(items, op.c)
		}
	}
	l.items = items
	for _, c := range items {
		if !slices.Contains(before, c) {
			added = append(added, c)
		}
	}
	for _, c := range before {
		if !slices.Contains(items, c) {
			removed = append(removed, c)
		}
	}
	return added, removed
}

func (l *robustList) contains(c *Component) bool {
	return slices.Contains(l.items, c)
}

// pendingAdd reports whether c's last buffered operation is an add.
func (l *robustList) pendingAdd(c *Component) bool {
	op, ok := l.lastOp(c)
	return ok && !op.remove
}

// pendingRemove reports whether c's last buffered operation is a remove.
func (l *robustList) pendingRemove(c *Component) bool {
	op, ok := l.lastOp(c)
	return ok && op.remove
}

func (l *robustList) lastOp(c *Component) (pendingOp, bool) {
	for i := len(l.pending) - 1; i >= 0; i-- {
		if l.pending[i].c == c {
			return l.pending[i], true
		}
	}
	return pendingOp{}, false
}

// owns reports whether c will be in the list once the pending operations
// are applied.
func (l *robustList) owns(c *Component) bool {
	if op, ok := l.lastOp(c); ok {
		return !op.remove
	}
	return l.contains(c)
}

func (l *robustList) len() int {
	return len(l.items)
}

func (l *robustList) sort() {
	l.items = sortByDrawOrder(l.items)
}

func (l *robustList) nodes() []Node {
	nodes := make([]Node, len(l.items))
	for i, c := range l.items {
		nodes[i] = c.Node()
	}
	return nodes
}
