package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts numeric input.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// MaxLength caps the number of digits; zero means unlimited.
	MaxLength int

	// OnComplete fires when a typed digit fills the entry to MaxLength.
	OnComplete func()
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// newDateEntry builds a fixed width entry for one date component.
func newDateEntry(placeholder string, digits int) *NumericalEntry {
	entry := NewNumericalEntry()
	entry.PlaceHolder = placeholder
	entry.MaxLength = digits
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9) up to MaxLength.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxLength > 0 && len(e.Text) >= e.MaxLength && e.SelectedText() == "" {
		return
	}

	e.Entry.TypedRune(r)

	// Pasted text bypasses this filter; the validator reports it instead.
	if e.MaxLength > 0 && len(e.Text) == e.MaxLength && e.OnComplete != nil {
		e.OnComplete()
	}
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
