// Package backend implements the ui collaborator interfaces on Ebitengine.
package backend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/hud/ui"
)

var (
	_ ui.Renderer = (*Renderer)(nil)
	_ ui.Texture  = (*Texture)(nil)
	_ ui.Font     = (*Font)(nil)
)

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Font is a sized text face.
type Font struct {
	face *text.GoTextFace
}

func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.face.Size*1.2)
}

// Face returns the underlying text face.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// Renderer draws onto the screen image handed to Begin each frame. Ebitengine
// batches the submissions.
type Renderer struct {
	screen *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Begin sets the target for this frame's draws.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) RectangleTexture(width, height int, fill, border color.Color) ui.Texture {
	if width <= 0 || height <= 0 {
		return nil
	}
	img := ebiten.NewImage(width, height)
	img.Fill(fill)
	vector.StrokeRect(img, 0.5, 0.5, float32(width)-1, float32(height)-1, 1, border, false)
	return &Texture{img: img}
}

func (r *Renderer) DrawTexture(t ui.Texture, x, y float64) {
	tex, ok := t.(*Texture)
	if !ok || tex == nil || r.screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(tex.img, op)
}

func (r *Renderer) DrawText(f ui.Font, s string, x, y float64, clr color.Color) {
	font, ok := f.(*Font)
	if !ok || font == nil || r.screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = font.face.Size * 1.2
	text.Draw(r.screen, s, font.face, op)
}

func (r *Renderer) FillRect(rect ui.Rectangle, clr color.Color) {
	if r.screen == nil {
		return
	}
	vector.DrawFilledRect(r.screen, float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height), clr, false)
}
