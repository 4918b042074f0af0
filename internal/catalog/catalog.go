// Package catalog loads the static ticker list that searches run against.
// A Catalog is validated once when it is built and is read-only afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"tickerpick/internal/domain"
)

//go:embed tickers.json
var defaultTickers []byte

// DefaultSource names the embedded dataset in logs and events
const DefaultSource = "embedded"

var (
	// ErrInvalidRecord is returned when a record lacks a symbol or a name
	ErrInvalidRecord = errors.New("invalid ticker record")
	// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor TOML
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Catalog is an ordered, immutable list of ticker records
type Catalog struct {
	records []domain.TickerRecord
	source  string
}

// tomlCatalog is the on-disk shape of a TOML catalog
type tomlCatalog struct {
	Tickers []domain.TickerRecord `toml:"tickers"`
}

// New validates records and builds a catalog over a private copy of them
func New(records []domain.TickerRecord) (*Catalog, error) {
	for i, r := range records {
		if strings.TrimSpace(r.Symbol) == "" {
			return nil, errors.Wrapf(ErrInvalidRecord, "record %d: empty symbol", i)
		}
		if strings.TrimSpace(r.Name) == "" {
			return nil, errors.Wrapf(ErrInvalidRecord, "record %d (%s): empty name", i, r.Symbol)
		}
	}

	owned := make([]domain.TickerRecord, len(records))
	copy(owned, records)
	return &Catalog{records: owned}, nil
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	c, err := parseJSON(defaultTickers)
	if err != nil {
		return nil, errors.Wrap(err, "embedded catalog")
	}
	c.source = DefaultSource
	return c, nil
}

// LoadFile reads a catalog from a .json or .toml file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	var c *Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err = parseJSON(data)
	case ".toml":
		c, err = parseTOML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	c.source = path
	return c, nil
}

// Load returns the catalog at path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func parseJSON(data []byte) (*Catalog, error) {
	var records []domain.TickerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON catalog")
	}
	return New(records)
}

func parseTOML(data []byte) (*Catalog, error) {
	var doc tomlCatalog
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse TOML catalog")
	}
	return New(doc.Tickers)
}

// Records returns the records in catalog order. Callers must not modify the slice.
func (c *Catalog) Records() []domain.TickerRecord {
	return c.records
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

// Source describes where the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}

// Lookup finds the first record whose symbol equals symbol, ignoring case and
// surrounding whitespace
func (c *Catalog) Lookup(symbol string) (domain.TickerRecord, bool) {
	want := strings.ToUpper(strings.TrimSpace(symbol))
	if want == "" {
		return domain.TickerRecord{}, false
	}
	for _, r := range c.records {
		if strings.ToUpper(r.Symbol) == want {
			return r, true
		}
	}
	return domain.TickerRecord{}, false
}
