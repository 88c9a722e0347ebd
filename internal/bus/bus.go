package bus

import "log"

// SubscriptionID identifies a registered callback. 0 means "no subscription"
// and is returned when registration is rejected.
type SubscriptionID uint16

// Callback receives an event during Emit, synchronously on the caller's stack.
type Callback func(Event)

// Bus is a fixed-capacity publish/subscribe registry keyed by (category, type).
//
// Capacities match the embedded memory budget: at most MaxEventKeys distinct
// keys and MaxCallbacksPerEvent subscribers per key. Subscribe returns 0 when
// either limit is hit; the caller decides whether that matters.
//
// Emit is synchronous and single-threaded. A callback may emit further events
// (the MIDI mapper republishes CC traffic this way), but it must not subscribe
// or unsubscribe: the bus detects that and rejects the nested mutation instead
// of corrupting the in-progress iteration.
type Bus struct {
	subscribers map[uint32][]subscription
	nextID      SubscriptionID
	emitDepth   int
}

type subscription struct {
	id SubscriptionID
	cb Callback
}

const (
	// MaxEventKeys caps the number of distinct (category, type) keys.
	MaxEventKeys = 96
	// MaxCallbacksPerEvent caps subscribers on a single key.
	MaxCallbacksPerEvent = 16
)

// New creates an empty bus. Subscription IDs start at 1.
func New() *Bus {
	return &Bus{
		subscribers: make(map[uint32][]subscription, MaxEventKeys),
		nextID:      1,
	}
}

// key packs category and type into one collision-free key space.
func key(category Category, typ Type) uint32 {
	return uint32(category)<<16 | uint32(typ)
}

// Subscribe registers a callback for the exact (category, type) pair and
// returns its subscription ID, or 0 if the callback is nil, a capacity limit
// is reached, or an Emit is in progress.
func (b *Bus) Subscribe(category Category, typ Type, cb Callback) SubscriptionID {
	if cb == nil {
		return 0
	}
	if b.emitDepth > 0 {
		log.Printf("[Bus] Subscribe during emit rejected (category=%d type=%d)", category, typ)
		return 0
	}

	k := key(category, typ)
	list, ok := b.subscribers[k]
	if !ok && len(b.subscribers) >= MaxEventKeys {
		log.Printf("[Bus] Event key capacity exhausted (category=%d type=%d)", category, typ)
		return 0
	}
	if len(list) >= MaxCallbacksPerEvent {
		log.Printf("[Bus] Subscriber capacity exhausted (category=%d type=%d)", category, typ)
		return 0
	}

	id := b.nextID
	b.nextID++
	b.subscribers[k] = append(list, subscription{id: id, cb: cb})
	return id
}

// Emit invokes every callback registered for the event's (category, type)
// key, in registration order, on the calling goroutine.
func (b *Bus) Emit(e Event) {
	list, ok := b.subscribers[key(e.Category(), e.Type())]
	if !ok {
		return
	}

	b.emitDepth++
	for _, sub := range list {
		sub.cb(e)
	}
	b.emitDepth--
}

// Unsubscribe removes the first subscription matching id across all keys.
// Unknown IDs (including 0) are a no-op.
func (b *Bus) Unsubscribe(id SubscriptionID) {
	if id == 0 {
		return
	}
	if b.emitDepth > 0 {
		log.Printf("[Bus] Unsubscribe during emit rejected (id=%d)", id)
		return
	}
	for k, list := range b.subscribers {
		for i, sub := range list {
			if sub.id == id {
				b.subscribers[k] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Clear drops every subscription and restarts the ID sequence.
func (b *Bus) Clear() {
	b.subscribers = make(map[uint32][]subscription, MaxEventKeys)
	b.nextID = 1
}

// SubscriberCount reports the total number of registered callbacks.
func (b *Bus) SubscriberCount() int {
	count := 0
	for _, list := range b.subscribers {
		count += len(list)
	}
	return count
}
