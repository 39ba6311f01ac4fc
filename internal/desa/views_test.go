package desa

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// blockingIncrementer holds every increment until release is closed.
type blockingIncrementer struct {
	mu      sync.Mutex
	started chan struct{}
	release chan struct{}
	counts  map[uuid.UUID]int
	err     error
	once    sync.Once
}

func newBlockingIncrementer() *blockingIncrementer {
	return &blockingIncrementer{
		started: make(chan struct{}),
		release: make(chan struct{}),
		counts:  make(map[uuid.UUID]int),
	}
}

func (b *blockingIncrementer) IncrementNewsViews(_ context.Context, id uuid.UUID) error {
	b.once.Do(func() { close(b.started) })
	<-b.release

	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[id]++
	return b.err
}

func (b *blockingIncrementer) count(id uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[id]
}

func TestViewCounter_DrainsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingIncrementer()
	close(store.release)

	counter := NewViewCounter(store, noOpLogger(), 16)
	id := uuid.New()
	for range 5 {
		assert.True(t, counter.Record(id))
	}

	counter.Close()
	assert.Equal(t, 5, store.count(id))

	// closed counters reject views and Close stays idempotent
	assert.False(t, counter.Record(id))
	counter.Close()
}

func TestViewCounter_DropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingIncrementer()
	counter := NewViewCounter(store, noOpLogger(), 2)
	id := uuid.New()

	// the worker takes the first view and blocks on it
	assert.True(t, counter.Record(id))
	<-store.started

	assert.True(t, counter.Record(id))
	assert.True(t, counter.Record(id))
	assert.False(t, counter.Record(id), "queue is full")

	close(store.release)
	counter.Close()

	assert.Equal(t, 3, store.count(id))
}

func TestViewCounter_StoreErrorsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newBlockingIncrementer()
	store.err = errors.New("connection reset")
	close(store.release)

	counter := NewViewCounter(store, noOpLogger(), 4)
	id := uuid.New()
	assert.True(t, counter.Record(id))
	assert.True(t, counter.Record(id))

	counter.Close()
	assert.Equal(t, 2, store.count(id))
}

func TestViewCounter_DefaultQueueSize(t *testing.T) {
	defer goleak.VerifyNone(t)

	counter := NewViewCounter(newBlockingIncrementer(), noOpLogger(), 0)
	assert.Equal(t, DefaultViewQueueSize, cap(counter.queue))

	counter.Close()
}
