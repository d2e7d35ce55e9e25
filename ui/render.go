package ui

import "image/color"

// Texture is a backend image handle.
type Texture interface {
	Size() (width, height int)
}

// Font measures and identifies a face for text drawing.
type Font interface {
	Measure(s string) (width, height float64)
}

// Renderer is the drawing backend the component tree paints through.
// Implementations batch submissions themselves.
type Renderer interface {
	// RectangleTexture builds a filled rectangle texture with a 1px border.
	RectangleTexture(width, height int, fill, border color.Color) Texture
	DrawTexture(t Texture, x, y float64)
	DrawText(f Font, s string, x, y float64, clr color.Color)
	FillRect(r Rectangle, clr color.Color)
}
