package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

func TestQuoteCell_EmptyBeforeFirstStore(t *testing.T) {
	cell := NewQuoteCell()

	q, ok := cell.Load()
	assert.False(t, ok)
	assert.Empty(t, q.Bid)
}

func TestQuoteCell_ReadAfterWrite(t *testing.T) {
	cell := NewQuoteCell()

	first := models.Quote{Pair: "USDBRL", Bid: "5.32", FetchedAt: time.Now()}
	cell.Store(first)

	q, ok := cell.Load()
	assert.True(t, ok)
	assert.Equal(t, first, q)

	// Every read returns exactly the last written value until the next write.
	q, _ = cell.Load()
	assert.Equal(t, first, q)

	second := models.Quote{Pair: "USDBRL", Bid: "5.40", FetchedAt: time.Now()}
	cell.Store(second)

	q, ok = cell.Load()
	assert.True(t, ok)
	assert.Equal(t, second, q)
}

func TestQuoteCell_ConcurrentReadersNeverSeePartialWrite(t *testing.T) {
	cell := NewQuoteCell()
	cell.Store(models.Quote{Pair: "USDBRL", Bid: "1"})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				cell.Store(models.Quote{Pair: "USDBRL", Bid: "5.32"})
			}
		}
	}()

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				q, ok := cell.Load()
				assert.True(t, ok)
				// A snapshot is either the initial or the replacement, never a mix.
				if q.Bid != "1" && q.Bid != "5.32" {
					t.Errorf("torn read: %+v", q)
					return
				}
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(stop)
	wg.Wait()
}

func TestPairCell(t *testing.T) {
	cell := NewPairCell("USDBRL")
	assert.Equal(t, models.SymbolPair("USDBRL"), cell.Load())

	cell.Store("USDEUR")
	assert.Equal(t, models.SymbolPair("USDEUR"), cell.Load())
}
