package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is a focused text input that notifies subscribers whenever its value
// changes, like the input event of a browser text box
type Field struct {
	textInput textinput.Model
	handlers  []func()
}

// NewField creates a focused field with the given placeholder
func NewField(placeholder string) *Field {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = placeholder
	ti.Focus()
	return &Field{textInput: ti}
}

// Value returns the current text
func (f *Field) Value() string {
	return f.textInput.Value()
}

// OnChange registers handler to run after every change of the value
func (f *Field) OnChange(handler func()) {
	f.handlers = append(f.handlers, handler)
}

// SetValue replaces the text and notifies if it changed
func (f *Field) SetValue(s string) {
	old := f.textInput.Value()
	f.textInput.SetValue(s)
	f.notifyIfChanged(old)
}

// Update forwards msg to the text input. Handlers run synchronously, before
// Update returns, when the message changed the value.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	old := f.textInput.Value()
	var cmd tea.Cmd
	f.textInput, cmd = f.textInput.Update(msg)
	f.notifyIfChanged(old)
	return cmd
}

func (f *Field) notifyIfChanged(old string) {
	if f.textInput.Value() == old {
		return
	}
	for _, h := range f.handlers {
		h()
	}
}

// View renders the input line
func (f *Field) View() string {
	return f.textInput.View()
}

// Blink starts the cursor blinking
func (f *Field) Blink() tea.Cmd {
	return textinput.Blink
}
