package desa

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DefaultViewQueueSize = 256
	viewIncrementTimeout = 5 * time.Second
)

var viewEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "desa",
	Subsystem: "news_views",
	Name:      "events_total",
	Help:      "News view increments by outcome.",
}, []string{"outcome"})

// ViewIncrementer bumps the view counter of a published article.
type ViewIncrementer interface {
	IncrementNewsViews(ctx context.Context, id uuid.UUID) error
}

// ViewCounter applies view increments on a background goroutine. Record
// never blocks: when the queue is full the increment is dropped, and store
// errors are logged and dropped.
type ViewCounter struct {
	store  ViewIncrementer
	logger *slog.Logger

	queue chan uuid.UUID
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewViewCounter starts the worker. Close must be called to stop it.
func NewViewCounter(store ViewIncrementer, logger *slog.Logger, queueSize int) *ViewCounter {
	if queueSize <= 0 {
		queueSize = DefaultViewQueueSize
	}

	v := &ViewCounter{
		store:  store,
		logger: logger,
		queue:  make(chan uuid.UUID, queueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go v.run()

	return v
}

// Record enqueues one view of newsID and reports whether it was accepted.
func (v *ViewCounter) Record(newsID uuid.UUID) bool {
	select {
	case <-v.quit:
		viewEvents.WithLabelValues("dropped").Inc()
		return false
	default:
	}

	select {
	case v.queue <- newsID:
		return true
	default:
		viewEvents.WithLabelValues("dropped").Inc()
		v.logger.Warn("view queue full, dropping increment", "newsId", newsID)
		return false
	}
}

// Close stops accepting views, applies the ones already queued and waits
// for the worker to exit.
func (v *ViewCounter) Close() {
	v.once.Do(func() {
		close(v.quit)
	})
	<-v.done
}

func (v *ViewCounter) run() {
	defer close(v.done)

	for {
		select {
		case id := <-v.queue:
			v.increment(id)
		case <-v.quit:
			v.drain()
			return
		}
	}
}

func (v *ViewCounter) drain() {
	for {
		select {
		case id := <-v.queue:
			v.increment(id)
		default:
			return
		}
	}
}

func (v *ViewCounter) increment(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), viewIncrementTimeout)
	defer cancel()

	if err := v.store.IncrementNewsViews(ctx, id); err != nil {
		viewEvents.WithLabelValues("failed").Inc()
		v.logger.Warn("failed to increment news views", "newsId", id, "error", err)
		return
	}

	viewEvents.WithLabelValues("recorded").Inc()
}
