package ui

// dirtyState tracks pending work: Clean -> Dirty -> (next Update) -> Clean.
type dirtyState bool

const (
	clean dirtyState = false
	dirty dirtyState = true
)

func (d *dirtyState) markDirty() {
	*d = dirty
}

func (d dirtyState) isDirty() bool {
	return d == dirty
}

// take reports whether work was pending and clears the flag.
func (d *dirtyState) take() bool {
	was := *d == dirty
	*d = clean
	return was
}
