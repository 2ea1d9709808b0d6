// Package pubsub is a small in-memory publish/subscribe bus used for process lifecycle events.
package pubsub

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPublisherClosed  = errors.New("publisher is closed")
	ErrSubscriberClosed = errors.New("subscriber is closed")
)

// PubSub delivers messages of type T to every subscriber of a topic.
type PubSub[T any] interface {
	// Publish never blocks; subscribers with a full buffer miss the message.
	Publish(ctx context.Context, topic string, message T) error

	// Subscribe returns the delivery channel and an unsubscribe func. The subscription
	// also ends when ctx is done.
	Subscribe(ctx context.Context, topic string) (<-chan Message[T], func(), error)

	Close() error
}

type Message[T any] struct {
	ID        string
	Topic     string
	Payload   T
	Timestamp time.Time
}

type memoryPubSub[T any] struct {
	mu         sync.RWMutex
	topics     map[string]map[string]*subscriber[T]
	bufferSize int
	closed     bool
}

type subscriber[T any] struct {
	channel chan Message[T]
	cancel  context.CancelFunc
	once    sync.Once
}

// Option represents a functional option for configuring the PubSub system.
type Option[T any] func(*memoryPubSub[T])

// WithBufferSize sets the buffer size for subscriber channels.
func WithBufferSize[T any](size int) Option[T] {
	return func(p *memoryPubSub[T]) {
		if size > 0 {
			p.bufferSize = size
		}
	}
}

func NewPubSub[T any](opts ...Option[T]) PubSub[T] {
	p := &memoryPubSub[T]{
		topics:     make(map[string]map[string]*subscriber[T]),
		bufferSize: 64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *memoryPubSub[T]) Publish(ctx context.Context, topic string, message T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg := Message[T]{
		ID:        uuid.NewString(),
		Topic:     topic,
		Payload:   message,
		Timestamp: time.Now(),
	}

	for _, sub := range p.topics[topic] {
		select {
		case sub.channel <- msg:
		default:
			// full buffer, drop for this subscriber
		}
	}
	return nil
}

func (p *memoryPubSub[T]) Subscribe(ctx context.Context, topic string) (<-chan Message[T], func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, nil, ErrSubscriberClosed
	}

	subCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()
	sub := &subscriber[T]{
		channel: make(chan Message[T], p.bufferSize),
		cancel:  cancel,
	}

	if p.topics[topic] == nil {
		p.topics[topic] = make(map[string]*subscriber[T])
	}
	p.topics[topic][id] = sub

	unsubscribe := func() {
		cancel()
		p.mu.Lock()
		defer p.mu.Unlock()
		if subs, ok := p.topics[topic]; ok {
			if _, exists := subs[id]; exists {
				delete(subs, id)
				sub.close()
			}
			if len(subs) == 0 {
				delete(p.topics, topic)
			}
		}
	}

	go func() {
		<-subCtx.Done()
		unsubscribe()
	}()

	return sub.channel, unsubscribe, nil
}

// Close ends every subscription; their channels are closed.
func (p *memoryPubSub[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	for _, subs := range p.topics {
		for _, sub := range subs {
			sub.cancel()
			sub.close()
		}
	}
	p.topics = make(map[string]map[string]*subscriber[T])
	return nil
}

func (s *subscriber[T]) close() {
	s.once.Do(func() { close(s.channel) })
}
