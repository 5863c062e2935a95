package services

import (
	"sync/atomic"

	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// QuoteCell is a last-writer-wins slot holding the most recently fetched
// quote. The whole snapshot is swapped atomically, so readers never observe
// a partially written value and never block the poller.
type QuoteCell struct {
	v atomic.Pointer[models.Quote]
}

// NewQuoteCell creates an empty cell.
func NewQuoteCell() *QuoteCell {
	return &QuoteCell{}
}

// Store replaces the held quote unconditionally.
func (c *QuoteCell) Store(q models.Quote) {
	c.v.Store(&q)
}

// Load returns a copy of the held quote. The second return value is false
// until the first Store.
func (c *QuoteCell) Load() (models.Quote, bool) {
	p := c.v.Load()
	if p == nil {
		return models.Quote{}, false
	}
	return *p, true
}

// PairCell holds the symbol pair the poller currently targets. The applet's
// input field writes it, the poller and the read path load it.
type PairCell struct {
	v atomic.Pointer[models.SymbolPair]
}

// NewPairCell creates a cell holding the initial pair.
func NewPairCell(pair models.SymbolPair) *PairCell {
	c := &PairCell{}
	c.v.Store(&pair)
	return c
}

// Store replaces the held pair.
func (c *PairCell) Store(pair models.SymbolPair) {
	c.v.Store(&pair)
}

// Load returns the held pair.
func (c *PairCell) Load() models.SymbolPair {
	return *c.v.Load()
}
