package widget

import (
	"image/color"

	"github.com/OpticalFlyer/hud/ui"
)

var _ ui.Node = (*Button)(nil)

type buttonLook struct {
	fill    color.Color
	focused bool
}

// Button fires its callback when the left button is released over it after
// being pressed on it.
type Button struct {
	ui.Component

	text    string
	onClick func()
	font    ui.Font

	armed    bool
	textures map[buttonLook]ui.Texture
}

func NewButton(x, y float64, text string, onClick func()) *Button {
	b := &Button{
		text:    text,
		onClick: onClick,
	}
	b.Init(b, "button:"+text, ui.Rect(x, y, 100, 30))
	return b
}

func (b *Button) Initialize() {
	b.Clicked.Subscribe(func(ui.MouseEvent) {
		b.armed = true
	})
}

func (b *Button) Text() string {
	return b.text
}

// SetOnClick replaces the callback.
func (b *Button) SetOnClick(fn func()) {
	b.onClick = fn
}

// LoadSelf loads the label font. A missing font only hides the label.
func (b *Button) LoadSelf(loader ui.ContentLoader) error {
	font, err := ui.LoadAs[ui.Font](loader, FontAsset)
	if err != nil {
		return err
	}
	b.font = font
	return nil
}

// UpdateComponents drops textures built for the old size.
func (b *Button) UpdateComponents() {
	b.textures = nil
}

func (b *Button) HandleSelfInput(in ui.InputState) {
	if !b.armed || in.LeftDown {
		return
	}
	b.armed = false
	if b.IsHovering() && b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) DrawSelf(r ui.Renderer) {
	look := buttonLook{fill: buttonColor, focused: b.HasFocus()}
	if b.IsPressed() {
		look.fill = buttonPressedColor
	} else if b.IsHovering() {
		look.fill = buttonHoverColor
	}

	if b.textures == nil {
		b.textures = make(map[buttonLook]ui.Texture)
	}
	tex, ok := b.textures[look]
	if !ok {
		border := color.Color(borderColor)
		if look.focused {
			border = focusBorderColor
		}
		tex = r.RectangleTexture(int(b.Width()), int(b.Height()), look.fill, border)
		b.textures[look] = tex
	}
	if tex != nil {
		r.DrawTexture(tex, b.Bounds().X, b.Bounds().Y)
	}

	if b.font == nil || b.text == "" {
		return
	}
	w, h := b.font.Measure(b.text)
	bounds := b.Bounds()
	r.DrawText(b.font, b.text, bounds.X+(bounds.Width-w)/2, bounds.Y+(bounds.Height-h)/2, textColor)
}
