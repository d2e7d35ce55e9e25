// Package widget provides the stock widgets built on the ui component tree:
// buttons, labels, panels and modal dialogs.
package widget

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// FontAsset is the font every stock widget loads.
var FontAsset = "builtin:goregular"

const (
	previewAlpha = 84
	panelAlpha   = 200
)

var (
	buttonColor        = color.RGBA{150, 150, 150, 255}
	buttonHoverColor   = color.RGBA{180, 180, 180, 255}
	buttonPressedColor = color.RGBA{100, 100, 100, 255}
	borderColor        = colornames.Black
	focusBorderColor   = colornames.Dodgerblue
	textColor          = colornames.White

	panelColor   = color.RGBA{100, 100, 100, panelAlpha}
	titleColor   = color.RGBA{60, 60, 60, panelAlpha}
	previewColor = color.RGBA{33, 150, 243, previewAlpha}
)
