// Package input turns terminal mouse events into pointer events and
// fans motion and release out to the listeners tracking a gesture.
package input

import (
	"context"
	"sync"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/logging"
)

// PointerKind identifies the phase of a pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// String returns a human-readable kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMotion:
		return "motion"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PointerButton is the physical button behind a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a mouse event in screen pixels.
type PointerEvent struct {
	Kind   PointerKind
	Point  entity.Point
	Button PointerButton
}

// PointerHandler receives board-wide pointer events while it is tracked.
type PointerHandler interface {
	PointerMove(p entity.Point)
	PointerUp(p entity.Point)
}

// Subscription is a held pointer listener. Release is idempotent.
type Subscription interface {
	Release()
}

// Tracker hands out board-wide pointer listeners.
type Tracker interface {
	Track(h PointerHandler) Subscription
}

// Bus delivers motion and release events to every tracked handler,
// regardless of where the pointer is. Handlers only receive events between
// Track and Release, so nothing listens while idle.
type Bus struct {
	listeners []*listener
	nextID    uint64

	ctx context.Context
	mu  sync.Mutex
}

type listener struct {
	id      uint64
	handler PointerHandler
	bus     *Bus
	once    sync.Once
}

// NewBus creates an empty pointer bus.
func NewBus(ctx context.Context) *Bus {
	return &Bus{ctx: ctx}
}

// Track subscribes h to motion and release events.
func (b *Bus) Track(h PointerHandler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	l := &listener{id: b.nextID, handler: h, bus: b}
	b.listeners = append(b.listeners, l)

	logging.FromContext(b.ctx).Trace().
		Uint64("listener_id", l.id).
		Int("active", len(b.listeners)).
		Msg("pointer listener attached")
	return l
}

// Release detaches the listener from its bus.
func (l *listener) Release() {
	l.once.Do(func() {
		l.bus.remove(l)
	})
}

func (b *Bus) remove(l *listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, candidate := range b.listeners {
		if candidate == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			break
		}
	}

	logging.FromContext(b.ctx).Trace().
		Uint64("listener_id", l.id).
		Int("active", len(b.listeners)).
		Msg("pointer listener detached")
}

// Active returns the number of attached listeners.
func (b *Bus) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Dispatch routes a motion or release event to the tracked handlers.
// Press events are not broadcast; they belong to the element under the pointer.
// It reports whether any handler received the event.
func (b *Bus) Dispatch(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerMotion:
		return b.each(func(h PointerHandler) { h.PointerMove(ev.Point) })
	case PointerRelease:
		return b.each(func(h PointerHandler) { h.PointerUp(ev.Point) })
	default:
		return false
	}
}

// each calls fn for a snapshot of the listeners, skipping any released
// while the dispatch is in progress.
func (b *Bus) each(fn func(PointerHandler)) bool {
	b.mu.Lock()
	snapshot := make([]*listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	delivered := false
	for _, l := range snapshot {
		if !b.attached(l) {
			continue
		}
		fn(l.handler)
		delivered = true
	}
	return delivered
}

func (b *Bus) attached(l *listener) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, candidate := range b.listeners {
		if candidate == l {
			return true
		}
	}
	return false
}
