// Package input is a single line text editor for the search line.
package input

import (
	tea "charm.land/bubbletea/v2"

	"upnext/style"
)

// TextInput is an editable line of text with a cursor
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
}

func NewTextInput(value string, maxLength int) TextInput {

	if maxLength <= 0 {
		maxLength = 256
	}

	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

// Update applies a key press, reporting whether the value changed
func (ti TextInput) Update(msg tea.KeyPressMsg) (TextInput, bool) {

	before := string(ti.value)

	switch msg.String() {
	case "backspace":
		if ti.cursor > 0 {
			ti.value = splice(ti.value, ti.cursor-1, ti.cursor, nil)
			ti.cursor--
		}
	case "delete", "ctrl+d":
		if ti.cursor < len(ti.value) {
			ti.value = splice(ti.value, ti.cursor, ti.cursor+1, nil)
		}
	case "left", "ctrl+b":
		if ti.cursor > 0 {
			ti.cursor--
		}
	case "right", "ctrl+f":
		if ti.cursor < len(ti.value) {
			ti.cursor++
		}
	case "home", "ctrl+a":
		ti.cursor = 0
	case "end", "ctrl+e":
		ti.cursor = len(ti.value)
	case "ctrl+u":
		ti.value = splice(ti.value, 0, ti.cursor, nil)
		ti.cursor = 0
	case "ctrl+k":
		ti.value = ti.value[:ti.cursor]
	default:
		text := []rune(msg.Text)
		if len(text) > 0 && len(ti.value)+len(text) <= ti.maxLength {
			ti.value = splice(ti.value, ti.cursor, ti.cursor, text)
			ti.cursor += len(text)
		}
	}

	return ti, string(ti.value) != before
}

// SetValue replaces the text, leaving the cursor at the end
func (ti TextInput) SetValue(value string) TextInput {

	ti.value = []rune(value)
	ti.cursor = len(ti.value)
	return ti
}

func (ti TextInput) Value() string {
	return string(ti.value)
}

func (ti TextInput) Cursor() int {
	return ti.cursor
}

// Render renders the text, showing the cursor when focused
func (ti TextInput) Render(focused bool) string {

	if !focused {
		return string(ti.value)
	}

	under := " "
	rest := ""
	if ti.cursor < len(ti.value) {
		under = string(ti.value[ti.cursor])
		rest = string(ti.value[ti.cursor+1:])
	}

	return string(ti.value[:ti.cursor]) + style.CursorStyle.Render(under) + rest
}

// unexported

func splice(runes []rune, from, to int, insert []rune) []rune {

	out := make([]rune, 0, len(runes)-(to-from)+len(insert))
	out = append(out, runes[:from]...)
	out = append(out, insert...)
	out = append(out, runes[to:]...)
	return out
}
