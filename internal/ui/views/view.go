package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tickerpick/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Input       string // rendered text input
	Options     []domain.Option
	Cursor      int
	Query       string
	CatalogSize int
	Limit       int
	ShowSymbols bool
	Status      string
	StatusIsErr bool
	Help        string // rendered help line or full help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("tickerpick"))
	content.WriteString("\n")

	content.WriteString(r.styles.Prompt.Render("Search: "))
	content.WriteString(state.Input)
	content.WriteString("\n\n")

	if len(state.Options) == 0 {
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No tickers match %q", state.Query)))
	} else {
		content.WriteString(r.renderOptions(state))
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Count.Render(r.countLine(state)))

	if state.Status != "" {
		style := r.styles.Status
		if state.StatusIsErr {
			style = r.styles.StatusError.MarginTop(1)
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.Status))
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderOptions renders one line per option, marking the cursor row
func (r *Renderer) renderOptions(state ViewState) string {
	lines := make([]string, 0, len(state.Options))
	for i, opt := range state.Options {
		line := r.renderOption(opt, state.ShowSymbols)
		if i == state.Cursor {
			line = r.styles.Cursor.Render("> ") + r.styles.SelectionBg.Render(line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) renderOption(opt domain.Option, showSymbols bool) string {
	if !showSymbols {
		return r.styles.Name.Render(opt.Label)
	}
	return r.styles.Symbol.Render(opt.Value) + r.styles.Name.Render(opt.Label)
}

func (r *Renderer) countLine(state ViewState) string {
	if len(state.Options) == state.Limit && state.Limit > 0 {
		return fmt.Sprintf("showing first %d of %d tickers", len(state.Options), state.CatalogSize)
	}
	return fmt.Sprintf("%d of %d tickers", len(state.Options), state.CatalogSize)
}

// RenderCatalogPlain renders every record for the pager, one per line
func RenderCatalogPlain(records []domain.TickerRecord) string {
	styles := NewStyles()
	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Ticker catalog (%d)", len(records))))
	b.WriteString("\n")
	for _, rec := range records {
		b.WriteString(styles.Symbol.Render(rec.Symbol))
		b.WriteString(rec.Name)
		b.WriteString("\n")
	}
	return b.String()
}
