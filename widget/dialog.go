package widget

import "github.com/OpticalFlyer/hud/ui"

const (
	dialogWidth  = 320.0
	dialogHeight = 140.0
)

// Dialog is a modal panel holding a message and a row of choice buttons.
// Add it with Controller.AddForeground; choosing a button closes it.
type Dialog struct {
	Panel

	message string
	choices []string
	onClose func(choice string)

	label   *Label
	buttons []*Button
}

// NewDialog creates a dialog. Its message spans the first row and the
// buttons share the second.
func NewDialog(title, message string, onClose func(choice string), choices ...string) *Dialog {
	if len(choices) == 0 {
		choices = []string{"OK"}
	}
	d := &Dialog{
		message: message,
		choices: choices,
		onClose: onClose,
	}
	d.setup(title, len(choices), 2)
	d.layout.SetSpacing(8, 8)
	d.Init(d, "dialog:"+title, ui.Rect(0, 0, dialogWidth, dialogHeight))
	d.layout.SetBounds(d.ContentBounds())
	return d
}

// Initialize builds the message label and the buttons.
func (d *Dialog) Initialize() {
	d.label = NewLabel(0, 0, d.message)
	d.label.SetSize(dialogWidth, 20)
	if err := d.Add(d.label); err != nil {
		logger.Warn("dialog label", "dialog", d.title, "err", err)
	}
	// the message owns row 0; buttons go to row 1
	for col := 1; col < d.layout.Columns(); col++ {
		spacer := ui.NewComponent("spacer", ui.Rect(0, 0, 0, 0))
		spacer.SetVisible(false)
		if err := d.Add(spacer); err != nil {
			logger.Warn("dialog spacer", "dialog", d.title, "err", err)
		}
	}
	for _, choice := range d.choices {
		b := NewButton(0, 0, choice, func() { d.Close(choice) })
		if err := d.Add(b); err != nil {
			logger.Warn("dialog button", "dialog", d.title, "err", err)
			continue
		}
		d.buttons = append(d.buttons, b)
	}
}

func (d *Dialog) Message() string {
	return d.message
}

// Buttons returns the choice buttons in order.
func (d *Dialog) Buttons() []*Button {
	return d.buttons
}

// Close reports the choice and disposes the dialog.
func (d *Dialog) Close(choice string) {
	if d.onClose != nil {
		d.onClose(choice)
	}
	d.Dispose()
}

// UpdateWindowSize keeps the dialog centred.
func (d *Dialog) UpdateWindowSize(width, height int) {
	d.windowWidth, d.windowHeight = width, height
	b := d.Bounds()
	d.SetPosition((float64(width)-b.Width)/2, (float64(height)-b.Height)/2)
}
