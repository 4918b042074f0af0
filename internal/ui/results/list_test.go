package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickerpick/internal/domain"
)

var (
	aapl = domain.Option{Value: "AAPL", Label: "Apple Inc."}
	msft = domain.Option{Value: "MSFT", Label: "Microsoft Corp."}
	amzn = domain.Option{Value: "AMZN", Label: "Amazon.com, Inc."}
)

func TestClearDiscardsEverything(t *testing.T) {
	l := NewList()
	l.Append(aapl)
	l.Append(msft)
	l.Next()

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cursor())
	_, ok := l.Selected()
	assert.False(t, ok)

	l.Append(amzn)
	assert.Equal(t, []domain.Option{amzn}, l.Options())
}

func TestCursorWraps(t *testing.T) {
	l := NewList()
	for _, o := range []domain.Option{aapl, msft, amzn} {
		l.Append(o)
	}

	l.Prev()
	sel, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, amzn, sel)

	l.Next()
	sel, _ = l.Selected()
	assert.Equal(t, aapl, sel)

	l.Next()
	sel, _ = l.Selected()
	assert.Equal(t, msft, sel)
}

func TestCursorOnEmptyList(t *testing.T) {
	l := NewList()
	l.Next()
	l.Prev()
	assert.Equal(t, 0, l.Cursor())
}
