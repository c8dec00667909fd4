package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles a published change.
type Handler func(context.Context, Change) error

// Bus delivers change notifications to subscribers within the process.
type Bus interface {
	Emit(ctx context.Context, change Change) error
	Subscribe(topic Topic, handler Handler) (unsubscribe func())
}

type subscription struct {
	id      uint64
	handler Handler
}

// inMemoryBus is a synchronous bus.
type inMemoryBus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[Topic][]subscription
	logger    *zap.Logger
}

// NewInMemoryBus creates a bus instance. A nil logger disables panic logging.
func NewInMemoryBus(logger *zap.Logger) Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inMemoryBus{
		listeners: make(map[Topic][]subscription),
		logger:    logger,
	}
}

// Emit synchronously invokes the handlers subscribed to change.Topic. Every handler
// runs even when an earlier one fails; the failures are joined.
func (b *inMemoryBus) Emit(ctx context.Context, change Change) error {
	if change.ID == "" {
		change.ID = uuid.NewString()
	}
	if change.Timestamp.IsZero() {
		change.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	subs := append([]subscription{}, b.listeners[change.Topic]...)
	b.mu.RUnlock()

	var errs []error
	for _, sub := range subs {
		if err := b.invoke(ctx, sub.handler, change); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *inMemoryBus) invoke(ctx context.Context, handler Handler, change Change) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("change handler panicked",
				zap.String("topic", string(change.Topic)),
				zap.Any("panic", r))
			err = fmt.Errorf("handler for %s panicked: %v", change.Topic, r)
		}
	}()
	return handler(ctx, change)
}

// Subscribe registers a handler for topic and returns a func that removes it.
func (b *inMemoryBus) Subscribe(topic Topic, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.listeners[topic] = append(b.listeners[topic], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *inMemoryBus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.listeners[topic]
	for i, sub := range subs {
		if sub.id == id {
			b.listeners[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
