package ui

// InputState is the per-frame pointer snapshot the tree is polled with.
type InputState struct {
	Cursor     Vector
	LeftClick  bool // left button went down this frame
	RightClick bool // right button went down this frame
	LeftDown   bool // left button is held
}

// Clicked reports whether either button went down this frame.
func (in InputState) Clicked() bool {
	return in.LeftClick || in.RightClick
}

// CursorShape is a pointer shape hint for the backend.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorMove
	CursorEWResize
	CursorNSResize
	CursorNWSEResize
	CursorNESWResize
)

// CursorShaper is implemented by widgets that change the pointer over parts
// of themselves.
type CursorShaper interface {
	CursorAt(p Vector) CursorShape
}
