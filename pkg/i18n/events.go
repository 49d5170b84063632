package i18n

import (
	"context"
	"sync"
)

// Change is the language-change notification delivered to subscribers after
// every successful language switch.
type Change struct {
	// Lang is the newly active language code.
	Lang string
	// Dir is the newly active text direction.
	Dir Direction
}

// broadcaster fans Change events out to subscribers. Delivery is
// non-blocking: a subscriber that has not drained its buffered slot misses
// the event rather than stalling the switch.
type broadcaster struct {
	mu       sync.Mutex
	watchers map[uint64]chan Change
	nextID   uint64
}

func newBroadcaster() *broadcaster {
	return &broadcaster{watchers: make(map[uint64]chan Change)}
}

// subscribe registers a watcher removed automatically when ctx ends. The
// returned channel is closed on removal.
func (b *broadcaster) subscribe(ctx context.Context) <-chan Change {
	ch := make(chan Change, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.watchers[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if cur, ok := b.watchers[id]; ok && cur == ch {
			delete(b.watchers, id)
			close(ch)
		}
		b.mu.Unlock()
	}()

	return ch
}

// broadcast delivers evt to every watcher without blocking.
func (b *broadcaster) broadcast(evt Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.watchers {
		select {
		case ch <- evt:
		default:
		}
	}
}
