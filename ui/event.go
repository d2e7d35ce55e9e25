package ui

// Subscription identifies a handler registered on an Event.
type Subscription int

type handler[T any] struct {
	id Subscription
	fn func(T)
}

// Event is a multicast notification. Handlers run in subscription order and
// return nothing; a handler may subscribe or unsubscribe during Emit.
type Event[T any] struct {
	handlers []handler[T]
	nextID   Subscription
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (e *Event[T]) Subscribe(fn func(T)) Subscription {
	e.nextID++
	e.handlers = append(e.handlers, handler[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe removes the handler. Unknown handles are ignored.
func (e *Event[T]) Unsubscribe(id Subscription) {
	for i, h := range e.handlers {
		if h.id == id {
			// copy so an Emit in progress keeps its own view
			next := make([]handler[T], 0, len(e.handlers)-1)
			next = append(next, e.handlers[:i]...)
			e.handlers = append(next, e.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered at the time of the call.
func (e *Event[T]) Emit(v T) {
	for _, h := range e.handlers {
		h.fn(v)
	}
}

// Len returns the number of registered handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// BoundsEvent is emitted when a component's size or position changes.
type BoundsEvent struct {
	Sender   Node
	Old, New Rectangle
}

// FocusEvent is emitted when a component gains or loses focus.
type FocusEvent struct {
	Sender  Node
	Focused bool
}

// DrawOrderEvent is emitted when a component's draw order request changes.
type DrawOrderEvent struct {
	Sender   Node
	Old, New int
}

// MouseEvent is emitted for clicks, presses and hovering over a component.
type MouseEvent struct {
	Sender Node
	Cursor Vector
}
