package input

import (
	"context"
	"testing"

	"github.com/bnema/corkboard/internal/domain/entity"
)

type recordingHandler struct {
	moves []entity.Point
	ups   []entity.Point
	onUp  func()
}

func (h *recordingHandler) PointerMove(p entity.Point) { h.moves = append(h.moves, p) }

func (h *recordingHandler) PointerUp(p entity.Point) {
	h.ups = append(h.ups, p)
	if h.onUp != nil {
		h.onUp()
	}
}

func TestBus_DispatchesOnlyWhileTracked(t *testing.T) {
	bus := NewBus(context.Background())
	h := &recordingHandler{}

	bus.Dispatch(PointerEvent{Kind: PointerMotion, Point: entity.Point{X: 1, Y: 1}})
	if len(h.moves) != 0 {
		t.Fatalf("untracked handler received %d moves", len(h.moves))
	}

	sub := bus.Track(h)
	if bus.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", bus.Active())
	}
	bus.Dispatch(PointerEvent{Kind: PointerMotion, Point: entity.Point{X: 2, Y: 3}})
	sub.Release()
	bus.Dispatch(PointerEvent{Kind: PointerMotion, Point: entity.Point{X: 4, Y: 5}})

	if len(h.moves) != 1 || h.moves[0] != (entity.Point{X: 2, Y: 3}) {
		t.Errorf("moves = %v, want [{2 3}]", h.moves)
	}
	if bus.Active() != 0 {
		t.Errorf("Active() after release = %d, want 0", bus.Active())
	}
}

func TestBus_ReleaseIsIdempotent(t *testing.T) {
	bus := NewBus(context.Background())
	first := bus.Track(&recordingHandler{})
	second := bus.Track(&recordingHandler{})

	first.Release()
	first.Release()

	if bus.Active() != 1 {
		t.Errorf("Active() = %d, want 1 (second listener must survive)", bus.Active())
	}
	second.Release()
	if bus.Active() != 0 {
		t.Errorf("Active() = %d, want 0", bus.Active())
	}
}

func TestBus_HandlerMayReleaseDuringDispatch(t *testing.T) {
	bus := NewBus(context.Background())

	var sub Subscription
	h := &recordingHandler{}
	h.onUp = func() { sub.Release() }
	sub = bus.Track(h)

	other := &recordingHandler{}
	bus.Track(other)

	delivered := bus.Dispatch(PointerEvent{Kind: PointerRelease})

	if !delivered {
		t.Error("Dispatch() = false, want true")
	}
	if len(h.ups) != 1 || len(other.ups) != 1 {
		t.Errorf("ups = %d/%d, want 1/1", len(h.ups), len(other.ups))
	}
	if bus.Active() != 1 {
		t.Errorf("Active() = %d, want 1", bus.Active())
	}
}

func TestBus_SkipsListenerReleasedByEarlierHandler(t *testing.T) {
	bus := NewBus(context.Background())

	victim := &recordingHandler{}
	var victimSub Subscription

	killer := &recordingHandler{}
	killer.onUp = func() { victimSub.Release() }

	bus.Track(killer)
	victimSub = bus.Track(victim)

	bus.Dispatch(PointerEvent{Kind: PointerRelease})

	if len(victim.ups) != 0 {
		t.Errorf("released listener received %d ups", len(victim.ups))
	}
}

func TestBus_PressIsNotBroadcast(t *testing.T) {
	bus := NewBus(context.Background())
	h := &recordingHandler{}
	bus.Track(h)

	if bus.Dispatch(PointerEvent{Kind: PointerPress}) {
		t.Error("press event was broadcast")
	}
	if len(h.moves)+len(h.ups) != 0 {
		t.Error("handler received a press event")
	}
}
