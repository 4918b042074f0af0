// Package tickersearch binds a text input to a results container: every change
// of the input re-runs the search and repopulates the container from scratch.
package tickersearch

import (
	"github.com/pkg/errors"

	"tickerpick/internal/domain"
	"tickerpick/internal/eventbus"
	"tickerpick/internal/search"
)

var (
	// ErrMissingInput means no input widget was supplied at setup
	ErrMissingInput = errors.New("tickersearch: input widget is missing")
	// ErrMissingContainer means no results container was supplied at setup
	ErrMissingContainer = errors.New("tickersearch: results container is missing")
)

// InputField is the text widget the user types the query into.
//
//go:generate mockgen -source tickersearch.go -destination=mock/widget_mock.go -package=mock
type InputField interface {
	Value() string
	OnChange(handler func())
}

// ResultsContainer is the list widget the matches are rendered into
type ResultsContainer interface {
	Clear()
	Append(opt domain.Option)
}

// TickerSearch keeps a results container in step with an input field
type TickerSearch struct {
	records   []domain.TickerRecord
	input     InputField
	container ResultsContainer
	limit     int
	search    search.Func
	bus       eventbus.EventBus

	bound   bool
	results []domain.TickerRecord
}

// Option configures a TickerSearch
type Option func(*TickerSearch)

// WithLimit caps the number of rendered results
func WithLimit(n int) Option {
	return func(ts *TickerSearch) {
		ts.limit = n
	}
}

// WithSearch replaces the search routine, typically with a decorated one
func WithSearch(fn search.Func) Option {
	return func(ts *TickerSearch) {
		if fn != nil {
			ts.search = fn
		}
	}
}

// WithBus publishes a ResultsRenderedEvent after every render
func WithBus(bus eventbus.EventBus) Option {
	return func(ts *TickerSearch) {
		ts.bus = bus
	}
}

// New wires records to the given widgets. Both widgets are required.
func New(records []domain.TickerRecord, input InputField, container ResultsContainer, opts ...Option) (*TickerSearch, error) {
	if input == nil {
		return nil, ErrMissingInput
	}
	if container == nil {
		return nil, ErrMissingContainer
	}

	ts := &TickerSearch{
		records:   records,
		input:     input,
		container: container,
		limit:     search.DefaultLimit,
		search:    search.Search,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts, nil
}

// Bind subscribes OnInputChanged to the input field. Later calls do nothing.
func (ts *TickerSearch) Bind() {
	if ts.bound {
		return
	}
	ts.bound = true
	ts.input.OnChange(ts.OnInputChanged)
}

// OnInputChanged re-runs the search for the current input value and replaces
// the container contents with one option per result
func (ts *TickerSearch) OnInputChanged() {
	query := ts.input.Value()
	results := ts.search(query, ts.records, ts.limit)

	ts.container.Clear()
	for _, r := range results {
		ts.container.Append(domain.OptionFor(r))
	}
	ts.results = results

	if ts.bus != nil {
		ts.bus.Publish(domain.ResultsRenderedEvent{Query: query, Count: len(results)})
	}
}

// Results returns the result set of the latest render
func (ts *TickerSearch) Results() []domain.TickerRecord {
	return ts.results
}

// Limit returns the configured result cap
func (ts *TickerSearch) Limit() int {
	return ts.limit
}
