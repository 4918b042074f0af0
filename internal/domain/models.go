package domain

// TickerRecord is one entry of the ticker catalog
type TickerRecord struct {
	Symbol string `json:"symbol" toml:"symbol"`
	Name   string `json:"name" toml:"name"`
}

// Option is one selectable entry of a results container
type Option struct {
	Value string // machine value, the ticker symbol
	Label string // display label, the company or asset name
}

// OptionFor builds the results container entry for a record
func OptionFor(r TickerRecord) Option {
	return Option{Value: r.Symbol, Label: r.Name}
}
