// Package component implements the notes drawn on the board. Each note
// classifies its own regions and owns an interaction controller that
// moves or resizes it.
package component

import (
	"context"
	"math"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/logging"
	"github.com/bnema/corkboard/internal/ui/canvas"
	"github.com/bnema/corkboard/internal/ui/input"
	"github.com/bnema/corkboard/internal/ui/interaction"
	"github.com/bnema/corkboard/internal/ui/theme"
)

// ActionKind is what a press on a non-interactive region asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDelete
	ActionEdit
	ActionTogglePlay
	ActionSeek
)

// Action is the result of activating an element region.
type Action struct {
	Kind ActionKind
	// Fraction is the seek target in [0, 1] for ActionSeek.
	Fraction float64
}

// Element is a note rendered on the board.
type Element interface {
	ID() entity.NoteID
	// Bounds is the rendered rectangle in the canvas layer. It is not
	// available once the note is gone or the element is closed.
	Bounds() (entity.Rect, bool)
	// Box is the terminal cell area covered by Bounds.
	Box() (CellBox, bool)
	Hit(p entity.Point) bool
	Classify(p entity.Point) interaction.Role
	Activate(p entity.Point) Action
	Controller() *interaction.Controller
	View(t *theme.Theme) string
	Close()
}

// Deps are the shared services an element is built with.
type Deps struct {
	Board   *canvas.Board
	Tracker input.Tracker
	Grid    input.MouseTranslator
}

// CellBox is a rectangle of terminal cells.
type CellBox struct {
	Col, Row      int
	Width, Height int
}

// Contains reports whether the cell lies inside the box.
func (b CellBox) Contains(col, row int) bool {
	return col >= b.Col && col < b.Col+b.Width && row >= b.Row && row < b.Row+b.Height
}

// New builds the element matching the note's kind.
func New(ctx context.Context, note entity.Note, deps Deps) Element {
	if note.IsAudio() {
		return NewAudioNote(ctx, note.ID, deps)
	}
	return NewStickyNote(ctx, note.ID, deps)
}

type base struct {
	id     entity.NoteID
	deps   Deps
	ctrl   *interaction.Controller
	closed bool
}

func newBase(ctx context.Context, id entity.NoteID, kind entity.NoteKind, deps Deps) base {
	ctx = logging.WithNoteID(ctx, string(id))
	board := deps.Board
	ctrl := interaction.New(ctx, deps.Tracker, board.Constraints(kind), func(p entity.Point) {
		board.SetPosition(id, p)
	})
	return base{id: id, deps: deps, ctrl: ctrl}
}

func (b *base) ID() entity.NoteID {
	return b.id
}

func (b *base) Controller() *interaction.Controller {
	return b.ctrl
}

func (b *base) note() (entity.Note, bool) {
	if b.closed {
		return entity.Note{}, false
	}
	return b.deps.Board.Get(b.id)
}

func (b *base) Bounds() (entity.Rect, bool) {
	note, ok := b.note()
	if !ok {
		return entity.Rect{}, false
	}
	return b.deps.Board.LayerRect(note.Position, b.ctrl.Dimensions()), true
}

func (b *base) Box() (CellBox, bool) {
	rect, ok := b.Bounds()
	if !ok {
		return CellBox{}, false
	}
	col, row := b.deps.Grid.ToCell(rect.TopLeft())
	return CellBox{
		Col:    col,
		Row:    row,
		Width:  max(1, int(math.Round(rect.Width/b.deps.Grid.CellWidth))),
		Height: max(1, int(math.Round(rect.Height/b.deps.Grid.CellHeight))),
	}, true
}

// local returns the cell under p relative to the element's top-left cell.
func (b *base) local(p entity.Point) (col, row int, box CellBox, ok bool) {
	box, ok = b.Box()
	if !ok {
		return 0, 0, CellBox{}, false
	}
	c, r := b.deps.Grid.ToCell(p)
	if !box.Contains(c, r) {
		return 0, 0, box, false
	}
	return c - box.Col, r - box.Row, box, true
}

func (b *base) Hit(p entity.Point) bool {
	_, _, _, ok := b.local(p)
	return ok
}

func (b *base) Close() {
	b.ctrl.Close()
	b.closed = true
}

// isResizeHandle reports whether the local cell is the bottom-right corner.
func isResizeHandle(col, row int, box CellBox) bool {
	return col == box.Width-1 && row == box.Height-1
}

// isCloseButton reports whether the local cell holds the close glyph.
func isCloseButton(col, row int, box CellBox) bool {
	return row == 0 && box.Width >= 2 && col == box.Width-2
}
