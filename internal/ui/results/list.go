package results

import "tickerpick/internal/domain"

// List is the selectable results container shown under the input
type List struct {
	options []domain.Option
	cursor  int
}

// NewList creates an empty list
func NewList() *List {
	return &List{}
}

// Clear removes every option and resets the cursor
func (l *List) Clear() {
	l.options = nil
	l.cursor = 0
}

// Append adds opt at the end of the list
func (l *List) Append(opt domain.Option) {
	l.options = append(l.options, opt)
}

// Options returns the current options in display order
func (l *List) Options() []domain.Option {
	return l.options
}

// Len returns the number of options
func (l *List) Len() int {
	return len(l.options)
}

// Cursor returns the highlighted row
func (l *List) Cursor() int {
	return l.cursor
}

// Next moves the cursor down, wrapping to the top
func (l *List) Next() {
	if len(l.options) == 0 {
		return
	}
	l.cursor = (l.cursor + 1) % len(l.options)
}

// Prev moves the cursor up, wrapping to the bottom
func (l *List) Prev() {
	if len(l.options) == 0 {
		return
	}
	l.cursor--
	if l.cursor < 0 {
		l.cursor = len(l.options) - 1
	}
}

// Selected returns the highlighted option
func (l *List) Selected() (domain.Option, bool) {
	if len(l.options) == 0 {
		return domain.Option{}, false
	}
	return l.options[l.cursor], true
}
