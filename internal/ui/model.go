package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tickerpick/internal/catalog"
	"tickerpick/internal/config"
	"tickerpick/internal/domain"
	"tickerpick/internal/eventbus"
	"tickerpick/internal/search"
	"tickerpick/internal/tickersearch"
	"tickerpick/internal/ui/input"
	"tickerpick/internal/ui/results"
	"tickerpick/internal/ui/views"
)

// ReadyMarker is printed with every frame when TICKERPICK_E2E_TEST=1
const ReadyMarker = "__READY__"

// Model represents the UI state
type Model struct {
	config  *config.Config
	catalog *catalog.Catalog
	bus     eventbus.EventBus
	logger  *zap.Logger

	input    *input.Field
	list     *results.List
	search   *tickersearch.TickerSearch
	renderer *views.Renderer
	pager    Pager
	keys     keyMap
	help     help.Model

	width     int
	height    int
	status    string
	statusErr bool
	selected  *domain.Option
	e2e       bool
}

// NewModel wires the text input and the results list to the catalog and
// renders the results for the empty query
func NewModel(cat *catalog.Catalog, cfg *config.Config, bus eventbus.EventBus, logger *zap.Logger, pager Pager) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if bus == nil {
		bus = eventbus.New(logger)
	}

	m := &Model{
		config:   cfg,
		catalog:  cat,
		bus:      bus,
		logger:   logger,
		input:    input.NewField(cfg.UISettings.Placeholder),
		list:     results.NewList(),
		renderer: views.NewRenderer(),
		pager:    pager,
		keys:     defaultKeyMap(),
		help:     help.New(),
		e2e:      os.Getenv("TICKERPICK_E2E_TEST") == "1",
	}

	m.input.OnChange(func() {
		m.bus.Publish(domain.QueryChangedEvent{Query: m.input.Value()})
	})

	ts, err := tickersearch.New(cat.Records(), m.input, m.list,
		tickersearch.WithLimit(cfg.ResultLimit),
		tickersearch.WithBus(bus),
		tickersearch.WithSearch(search.WithLogging(logger, search.Search)),
	)
	if err != nil {
		return nil, err
	}
	ts.Bind()
	ts.OnInputChanged()
	m.search = ts

	return m, nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.input.Blink()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Error("pager failed", zap.Error(msg.err))
			m.setError(fmt.Sprintf("Pager failed: %v", msg.err))
		} else {
			m.clearStatus()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.input.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		opt, ok := m.list.Selected()
		if !ok {
			m.setError("Nothing to pick")
			return m, nil
		}
		m.selected = &opt
		m.bus.Publish(domain.SymbolSelectedEvent{Symbol: opt.Value, Name: opt.Label})
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.list.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.Next()
		return m, nil

	case key.Matches(msg, m.keys.Catalog):
		if m.pager == nil {
			m.setError("Pager not available")
			return m, nil
		}
		m.status = "Opening catalog..."
		m.statusErr = false
		return m, showInPager(m.pager, views.RenderCatalogPlain(m.catalog.Records()))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Everything else edits the query
	m.clearStatus()
	return m, m.input.Update(msg)
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// View renders the picker
func (m *Model) View() string {
	out := m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Input:       m.input.View(),
		Options:     m.list.Options(),
		Cursor:      m.list.Cursor(),
		Query:       m.input.Value(),
		CatalogSize: m.catalog.Len(),
		Limit:       m.search.Limit(),
		ShowSymbols: m.config.UISettings.ShowSymbols,
		Status:      m.status,
		StatusIsErr: m.statusErr,
		Help:        m.help.View(m.keys),
	})
	if m.e2e {
		out += "\n" + ReadyMarker
	}
	return out
}

// Selected returns the option picked with enter, if any
func (m *Model) Selected() (domain.Option, bool) {
	if m.selected == nil {
		return domain.Option{}, false
	}
	return *m.selected, true
}

// Results returns the records currently listed
func (m *Model) Results() []domain.TickerRecord {
	return m.search.Results()
}
