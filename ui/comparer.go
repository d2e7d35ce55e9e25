package ui

import "slices"

// HierarchicalDrawOrder returns the draw orders from c's topmost ancestor
// down to c itself.
func HierarchicalDrawOrder(c *Component) []int {
	var orders []int
	for p := c; p != nil; p = p.parent {
		orders = append(orders, p.drawOrder)
	}
	slices.Reverse(orders)
	return orders
}

// CompareComponents orders components back to front. The hierarchical draw
// orders are compared root first and the first difference decides, larger
// values sorting earlier. When one sequence is a prefix of the other the
// deeper component sorts later. A component sorted last is the front-most
// one: it is drawn last and wins focus arbitration.
func CompareComponents(a, b *Component) int {
	if a == b {
		return 0
	}
	sa, sb := HierarchicalDrawOrder(a), HierarchicalDrawOrder(b)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if sa[i] != sb[i] {
			if sa[i] > sb[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	}
	return 0
}

// sortByDrawOrder returns a sorted copy of list renumbered count..1, back to
// front. Renumbering is silent so it does not re-trigger sorting.
func sortByDrawOrder(list []*Component) []*Component {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, CompareComponents)
	for i, c := range sorted {
		c.drawOrder = len(sorted) - i
	}
	return sorted
}
