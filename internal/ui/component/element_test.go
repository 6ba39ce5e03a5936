package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/ui/canvas"
	"github.com/bnema/corkboard/internal/ui/component"
	"github.com/bnema/corkboard/internal/ui/input"
	"github.com/bnema/corkboard/internal/ui/interaction"
)

type fixture struct {
	board *canvas.Board
	bus   *input.Bus
	grid  input.MouseTranslator
	deps  component.Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	opts := canvas.OptionsFromConfig(config.DefaultConfig())
	opts.Rand = func() float64 { return 0 }
	board := canvas.NewBoard(ctx, opts)
	bus := input.NewBus(ctx)
	grid := input.NewMouseTranslator(8, 16)
	return &fixture{
		board: board,
		bus:   bus,
		grid:  grid,
		deps:  component.Deps{Board: board, Tracker: bus, Grid: grid},
	}
}

// cell returns the pixel at the top-left of a terminal cell, nudged inside it.
func (f *fixture) cell(col, row int) entity.Point {
	return f.grid.ToScreen(col, row).Add(entity.Point{X: 1, Y: 1})
}

func (f *fixture) sticky(t *testing.T, pos entity.Point) *component.StickyNote {
	t.Helper()
	note := f.board.Insert(entity.Note{Kind: entity.NoteKindSticky, Content: "hello", Position: pos})
	el := component.NewStickyNote(context.Background(), note.ID, f.deps)
	t.Cleanup(el.Close)
	return el
}

func (f *fixture) press(t *testing.T, el component.Element, p entity.Point) bool {
	t.Helper()
	rect, ok := el.Bounds()
	require.True(t, ok)
	return el.Controller().Begin(p, el.Classify(p), &rect)
}

func (f *fixture) move(p entity.Point) {
	f.bus.Dispatch(input.PointerEvent{Kind: input.PointerMotion, Point: p, Button: input.ButtonPrimary})
}

func (f *fixture) release(p entity.Point) {
	f.bus.Dispatch(input.PointerEvent{Kind: input.PointerRelease, Point: p})
}

func TestNew_PicksElementByKind(t *testing.T) {
	f := newFixture(t)
	audio := f.board.Insert(entity.Note{Kind: entity.NoteKindAudio})
	sticky := f.board.Insert(entity.Note{Kind: entity.NoteKindSticky})

	a := component.New(context.Background(), audio, f.deps)
	s := component.New(context.Background(), sticky, f.deps)
	defer a.Close()
	defer s.Close()

	assert.IsType(t, &component.AudioNote{}, a)
	assert.IsType(t, &component.StickyNote{}, s)
	assert.Equal(t, entity.AudioConstraints(), a.Controller().Constraints())
	assert.Equal(t, entity.DefaultConstraints(), s.Controller().Constraints())
}

func TestElement_BoundsAndBox(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{X: 80, Y: 160})

	rect, ok := el.Bounds()
	require.True(t, ok)
	assert.Equal(t, entity.Rect{Point: entity.Point{X: 80, Y: 160}, Size: entity.Size{Width: 192, Height: 192}}, rect)

	box, ok := el.Box()
	require.True(t, ok)
	assert.Equal(t, component.CellBox{Col: 10, Row: 10, Width: 24, Height: 12}, box)

	assert.True(t, el.Hit(f.cell(10, 10)))
	assert.True(t, el.Hit(f.cell(33, 21)))
	assert.False(t, el.Hit(f.cell(34, 21)))
	assert.False(t, el.Hit(f.cell(9, 10)))
}

func TestElement_BoundsUnavailable(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{})

	require.NoError(t, f.board.Delete(el.ID()))

	_, ok := el.Bounds()
	assert.False(t, ok)
	_, ok = el.Box()
	assert.False(t, ok)
	assert.Empty(t, el.View(nil))
}

func TestElement_DragThroughBus(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{X: 80, Y: 160})
	grab := f.grid.ToScreen(12, 10) // top strip, two cells in

	require.True(t, f.press(t, el, grab))
	assert.Equal(t, interaction.StateDragging, el.Controller().State())
	assert.Equal(t, entity.Point{X: 16, Y: 0}, el.Controller().DragOffset())
	assert.Equal(t, 1, f.bus.Active())

	f.move(grab.Add(entity.Point{X: 40, Y: 32}))
	note, _ := f.board.Get(el.ID())
	assert.Equal(t, entity.Point{X: 120, Y: 192}, note.Position)

	f.release(entity.Point{X: 999, Y: 999})
	assert.Equal(t, interaction.StateIdle, el.Controller().State())
	assert.Equal(t, 0, f.bus.Active())

	f.move(grab)
	note, _ = f.board.Get(el.ID())
	assert.Equal(t, entity.Point{X: 120, Y: 192}, note.Position, "no updates after release")
}

func TestElement_ResizeThroughBus(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{})
	corner := f.cell(23, 11)

	require.True(t, f.press(t, el, corner))
	assert.True(t, el.Controller().IsResizing())

	f.move(corner.Add(entity.Point{X: 80, Y: -300}))
	assert.Equal(t, entity.Size{Width: 272, Height: 192}, el.Controller().Dimensions())

	f.release(corner)
	box, _ := el.Box()
	assert.Equal(t, 34, box.Width)
	assert.Equal(t, 12, box.Height)
	note, _ := f.board.Get(el.ID())
	assert.Equal(t, entity.Point{}, note.Position, "resize never moves the note")
}

func TestElement_ZoomDoublesDragRate(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{X: 80, Y: 160})
	for range 10 {
		f.board.ZoomIn()
	}
	require.Equal(t, 2.0, f.board.Zoom())

	rect, _ := el.Bounds()
	grab := rect.TopLeft().Add(entity.Point{X: 16, Y: 1})
	require.True(t, f.press(t, el, grab))

	f.move(grab.Add(entity.Point{X: 10}))
	first, _ := f.board.Get(el.ID())
	rectFirst, _ := el.Bounds()

	f.move(grab.Add(entity.Point{X: 30}))
	second, _ := f.board.Get(el.ID())
	rectSecond, _ := el.Bounds()

	// 20px of pointer travel moves the note 20 canvas units, 40px on screen.
	assert.InDelta(t, 20, second.Position.X-first.Position.X, 1e-9)
	assert.InDelta(t, 40, rectSecond.X-rectFirst.X, 1e-9)
	f.release(grab)
}

func TestElement_CloseMidDrag(t *testing.T) {
	f := newFixture(t)
	el := f.sticky(t, entity.Point{})
	grab := f.cell(0, 5)

	require.True(t, f.press(t, el, grab))
	require.Equal(t, 1, f.bus.Active())

	el.Close()

	assert.Equal(t, interaction.StateIdle, el.Controller().State())
	assert.Equal(t, 0, f.bus.Active())
	_, ok := el.Bounds()
	assert.False(t, ok)
	assert.False(t, el.Hit(grab))
}

func TestElements_IndependentControllers(t *testing.T) {
	f := newFixture(t)
	a := f.sticky(t, entity.Point{})
	b := f.sticky(t, entity.Point{X: 400})

	require.True(t, f.press(t, a, f.cell(0, 5)))

	assert.True(t, a.Controller().IsDragging())
	assert.Equal(t, interaction.StateIdle, b.Controller().State())

	f.move(f.cell(1, 5))
	noteB, _ := f.board.Get(b.ID())
	assert.Equal(t, entity.Point{X: 400}, noteB.Position)
	f.release(f.cell(1, 5))
}
