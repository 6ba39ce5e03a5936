// Package interaction turns raw pointer events into drag and resize
// behavior for a single movable element.
package interaction

import (
	"context"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/logging"
	"github.com/bnema/corkboard/internal/ui/input"
)

// State is the interaction mode of a controller.
type State int

const (
	// StateIdle means no interaction is in progress and no listener is held.
	StateIdle State = iota
	// StateDragging moves the element with the pointer.
	StateDragging
	// StateResizing grows or shrinks the element from its bottom-right corner.
	StateResizing
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Role is the part an element region plays when it is pressed.
// The rendering element classifies its regions; the controller never
// inspects the element itself.
type Role int

const (
	RoleOther Role = iota
	RoleDragRegion
	RoleResizeRegion
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleOther:
		return "other"
	case RoleDragRegion:
		return "drag"
	case RoleResizeRegion:
		return "resize"
	default:
		return "unknown"
	}
}

// PositionFunc receives a new element position while dragging.
// It is called synchronously once per pointer move, without throttling.
type PositionFunc func(entity.Point)

// ResizeAnchor is the reference captured when a resize begins.
type ResizeAnchor struct {
	Pointer entity.Point
	Size    entity.Size
}

// Controller is the drag/resize state machine of one element.
// It is driven from the UI event loop and is not safe for concurrent use.
type Controller struct {
	tracker          input.Tracker
	constraints      entity.SizeConstraints
	onPositionChange PositionFunc

	state      State
	dragOffset entity.Point
	anchor     ResizeAnchor
	dimensions entity.Size

	// sub is non-nil exactly while state != StateIdle.
	sub    input.Subscription
	closed bool

	ctx context.Context
}

// New creates an idle controller. Dimensions start at the minimum size.
// A nil tracker is allowed; pointer moves must then be fed directly.
func New(
	ctx context.Context,
	tracker input.Tracker,
	constraints entity.SizeConstraints,
	onPositionChange PositionFunc,
) *Controller {
	return &Controller{
		tracker:          tracker,
		constraints:      constraints,
		onPositionChange: onPositionChange,
		dimensions:       constraints.MinSize(),
		ctx:              ctx,
	}
}

// State returns the current interaction mode.
func (c *Controller) State() State {
	return c.state
}

// IsDragging reports whether a drag is in progress.
func (c *Controller) IsDragging() bool {
	return c.state == StateDragging
}

// IsResizing reports whether a resize is in progress.
func (c *Controller) IsResizing() bool {
	return c.state == StateResizing
}

// Dimensions returns the most recently computed element size.
func (c *Controller) Dimensions() entity.Size {
	return c.dimensions
}

// Constraints returns the minimum size configuration.
func (c *Controller) Constraints() entity.SizeConstraints {
	return c.constraints
}

// DragOffset returns the pointer offset captured when the current drag began.
func (c *Controller) DragOffset() entity.Point {
	return c.dragOffset
}

// Anchor returns the reference captured when the current resize began.
func (c *Controller) Anchor() ResizeAnchor {
	return c.anchor
}

// Begin starts an interaction from a pointer press on a region with the
// given role. rect is the element's current rendered bounds; nil means the
// bounds are not available yet and nothing starts. Begin is a no-op unless
// the controller is idle, and reports whether an interaction started.
func (c *Controller) Begin(pointer entity.Point, role Role, rect *entity.Rect) bool {
	log := logging.FromContext(c.ctx)

	if c.closed || c.state != StateIdle {
		return false
	}
	if role != RoleResizeRegion && role != RoleDragRegion {
		return false
	}
	if rect == nil {
		log.Debug().Str("role", role.String()).Msg("interaction skipped: bounds unavailable")
		return false
	}

	switch role {
	case RoleResizeRegion:
		c.anchor = ResizeAnchor{Pointer: pointer, Size: rect.Size}
		c.state = StateResizing
	case RoleDragRegion:
		c.dragOffset = pointer.Sub(rect.TopLeft())
		c.state = StateDragging
	}

	if c.tracker != nil {
		c.sub = c.tracker.Track(c)
	}

	log.Debug().
		Str("state", c.state.String()).
		Float64("x", pointer.X).
		Float64("y", pointer.Y).
		Msg("interaction started")
	return true
}

// PointerMove updates the interaction with a new pointer position.
func (c *Controller) PointerMove(pointer entity.Point) {
	switch c.state {
	case StateDragging:
		pos := pointer.Sub(c.dragOffset)
		if c.onPositionChange != nil {
			c.onPositionChange(pos)
		}
	case StateResizing:
		delta := pointer.Sub(c.anchor.Pointer)
		c.dimensions = c.constraints.Clamp(c.anchor.Size.Grow(delta))
	case StateIdle:
	}
}

// PointerUp ends the interaction wherever the pointer is released.
func (c *Controller) PointerUp(_ entity.Point) {
	c.End()
}

// End returns to idle and releases the pointer listener. It is idempotent.
func (c *Controller) End() {
	if c.sub != nil {
		c.sub.Release()
		c.sub = nil
	}
	if c.state == StateIdle {
		return
	}

	logging.FromContext(c.ctx).Debug().
		Str("state", c.state.String()).
		Float64("width", c.dimensions.Width).
		Float64("height", c.dimensions.Height).
		Msg("interaction ended")
	c.state = StateIdle
}

// Close tears the controller down when its element goes away, ending any
// interaction in progress. A closed controller never starts again.
func (c *Controller) Close() {
	c.End()
	c.closed = true
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	return c.closed
}
