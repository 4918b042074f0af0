package search

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"tickerpick/internal/domain"
)

// DefaultLimit is the number of matches surfaced per query
const DefaultLimit = 10

// Func is the shape of a search routine, so callers can decorate it
type Func func(query string, records []domain.TickerRecord, limit int) []domain.TickerRecord

// Search returns the records whose symbol or name contains query, ignoring case.
// Matches keep their catalog order and at most limit of them are returned.
// An empty query matches every record. A non-positive limit yields no results.
func Search(query string, records []domain.TickerRecord, limit int) []domain.TickerRecord {
	results := make([]domain.TickerRecord, 0, capacity(len(records), limit))
	if limit <= 0 {
		return results
	}

	q := strings.ToLower(query)
	for _, r := range records {
		if Matches(r, q) {
			results = append(results, r)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// SearchDefault is Search capped at DefaultLimit
func SearchDefault(query string, records []domain.TickerRecord) []domain.TickerRecord {
	return Search(query, records, DefaultLimit)
}

// Matches reports whether the record matches an already lowercased query
func Matches(r domain.TickerRecord, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(r.Symbol), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Name), lowerQuery)
}

func capacity(n, limit int) int {
	if limit <= 0 {
		return 0
	}
	if n < limit {
		return n
	}
	return limit
}

// WithLogging wraps fn so that every call is logged at debug level
func WithLogging(logger *zap.Logger, fn Func) Func {
	if logger == nil {
		return fn
	}
	return func(query string, records []domain.TickerRecord, limit int) []domain.TickerRecord {
		start := time.Now()
		results := fn(query, records, limit)
		logger.Debug("search completed",
			zap.String("query", query),
			zap.Int("limit", limit),
			zap.Int("catalog_size", len(records)),
			zap.Int("matches", len(results)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return results
	}
}
