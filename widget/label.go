package widget

import (
	"image/color"

	"github.com/OpticalFlyer/hud/ui"
)

// Label draws a single line of text and sizes itself to it once its font is
// loaded.
type Label struct {
	ui.Component

	text  string
	color color.Color
	font  ui.Font
}

func NewLabel(x, y float64, text string) *Label {
	l := &Label{text: text, color: textColor}
	l.Init(l, "label", ui.Rect(x, y, 0, 0))
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.fit()
}

func (l *Label) SetColor(c color.Color) {
	l.color = c
}

func (l *Label) LoadSelf(loader ui.ContentLoader) error {
	font, err := ui.LoadAs[ui.Font](loader, FontAsset)
	if err != nil {
		return err
	}
	l.font = font
	l.fit()
	return nil
}

func (l *Label) fit() {
	if l.font == nil {
		return
	}
	l.SetSize(l.font.Measure(l.text))
}

func (l *Label) DrawSelf(r ui.Renderer) {
	if l.font == nil {
		return
	}
	b := l.Bounds()
	r.DrawText(l.font, l.text, b.X, b.Y, l.color)
}
