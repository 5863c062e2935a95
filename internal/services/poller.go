package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/logger"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/metrics"
	"github.com/xfalcox/cosmic-applet-exchange-rate/internal/models"
)

// RateFetcher fetches the current rate for a symbol pair from the upstream provider.
type RateFetcher interface {
	FetchRate(ctx context.Context, pair models.SymbolPair) (models.Quote, error)
}

// RateCacheWriter caches the latest bid for a pair.
type RateCacheWriter interface {
	SetRate(ctx context.Context, pair models.SymbolPair, bid string) error
}

// RateHistoryWriter appends a successfully fetched quote to storage.
type RateHistoryWriter interface {
	Save(ctx context.Context, quote models.Quote) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RatePoller periodically fetches the rate for the current symbol pair and
// publishes the result into the quote cell. Cache, history and Kafka writes
// are best-effort: their failures are logged and never prevent the cell write.
type RatePoller struct {
	fetcher     RateFetcher
	cell        *QuoteCell
	pairs       *PairCell
	cache       RateCacheWriter
	history     RateHistoryWriter
	kafkaWriter KafkaWriter
	metrics     *metrics.PollerMetrics

	interval time.Duration
	timeout  time.Duration

	refreshCh chan struct{}
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewRatePoller creates a new poller. cache, history, kafkaWriter and m may be
// nil, which disables the corresponding side effect.
func NewRatePoller(
	fetcher RateFetcher,
	cell *QuoteCell,
	pairs *PairCell,
	cache RateCacheWriter,
	history RateHistoryWriter,
	kafkaWriter KafkaWriter,
	m *metrics.PollerMetrics,
	interval, timeout time.Duration,
) *RatePoller {
	return &RatePoller{
		fetcher:     fetcher,
		cell:        cell,
		pairs:       pairs,
		cache:       cache,
		history:     history,
		kafkaWriter: kafkaWriter,
		metrics:     m,
		interval:    interval,
		timeout:     timeout,
		refreshCh:   make(chan struct{}, 1),
	}
}

// Start launches the polling loop. The first fetch happens immediately.
func (p *RatePoller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run(ctx)

	logger.Log.Infow("rate poller started", "pair", p.pairs.Load(), "interval", p.interval)
}

// Stop cancels the polling loop and waits for it to exit.
func (p *RatePoller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	logger.Log.Info("rate poller stopped")
}

// Refresh requests an immediate out-of-schedule fetch, coalescing concurrent
// requests into one.
func (p *RatePoller) Refresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

func (p *RatePoller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.refreshCh:
			p.poll(ctx)
			ticker.Reset(p.interval)
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll performs a single fetch for the current pair. On success it writes the
// cell exactly once; on failure the cell keeps its prior value.
func (p *RatePoller) poll(ctx context.Context) {
	pair := p.pairs.Load()
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	quote, err := p.fetcher.FetchRate(fetchCtx, pair)
	if err != nil {
		logger.Log.Errorw("poll failed", "pair", pair, "error", err)
		if p.metrics != nil {
			p.metrics.RecordFetch(pair.String(), "error", time.Since(start).Seconds())
		}
		return
	}

	p.cell.Store(quote)
	if p.metrics != nil {
		p.metrics.RecordFetch(pair.String(), "success", time.Since(start).Seconds())
		p.metrics.RecordLastFetch(quote.FetchedAt)
	}
	logger.Log.Infow("rate updated", "pair", quote.Pair, "bid", quote.Bid)

	if p.cache != nil {
		if err := p.cache.SetRate(ctx, quote.Pair, quote.Bid); err != nil {
			logger.Log.Errorw("failed to cache rate", "pair", quote.Pair, "error", err)
		}
	}

	if p.history != nil {
		if err := p.history.Save(ctx, quote); err != nil {
			logger.Log.Errorw("failed to save rate history", "pair", quote.Pair, "error", err)
		}
	}

	p.publishQuote(ctx, quote)
}

// publishQuote publishes a fetched quote to Kafka.
func (p *RatePoller) publishQuote(ctx context.Context, quote models.Quote) {
	if p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "pair", quote.Pair)
		return
	}

	event := models.RateEvent{
		EventID:   uuid.NewString(),
		Pair:      quote.Pair.String(),
		Bid:       quote.Bid,
		FetchedAt: quote.FetchedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal rate event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Pair),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish rate event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("rate event published", "event_id", event.EventID, "pair", event.Pair)
	}
}
