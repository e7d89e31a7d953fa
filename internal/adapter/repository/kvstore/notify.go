package kvstore

import (
	"sync"
	"time"
)

// notifier replaces the original fixed-interval polling with explicit
// change callbacks. Delivery is synchronous with the write; throttled
// subscribers silently drop notifications inside their interval, which
// reproduces the at-most-every-N freshness of a polling loop.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	key         string
	minInterval time.Duration
	fn          func(key string)
	lastFired   time.Time
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]*subscription)}
}

func (n *notifier) subscribe(key string, minInterval time.Duration, fn func(key string)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.subs[id] = &subscription{key: key, minInterval: minInterval, fn: fn}
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify(key string) {
	n.mu.Lock()
	var fire []func(string)
	now := time.Now()
	for _, sub := range n.subs {
		if sub.key != key && sub.key != "" {
			continue
		}
		if sub.minInterval > 0 && now.Sub(sub.lastFired) < sub.minInterval {
			continue
		}
		sub.lastFired = now
		fire = append(fire, sub.fn)
	}
	n.mu.Unlock()

	for _, fn := range fire {
		fn(key)
	}
}
