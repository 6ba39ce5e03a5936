package input

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/corkboard/internal/domain/entity"
)

// Default terminal cell size in screen pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// MouseTranslator converts terminal mouse messages (cell coordinates) into
// pointer events in screen pixels.
type MouseTranslator struct {
	CellWidth  float64
	CellHeight float64
}

// NewMouseTranslator creates a translator, falling back to the default cell
// size for non-positive dimensions.
func NewMouseTranslator(cellWidth, cellHeight float64) MouseTranslator {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return MouseTranslator{CellWidth: cellWidth, CellHeight: cellHeight}
}

// ToScreen converts a cell coordinate to screen pixels.
func (t MouseTranslator) ToScreen(col, row int) entity.Point {
	return entity.Point{X: float64(col) * t.CellWidth, Y: float64(row) * t.CellHeight}
}

// ToCell converts a screen pixel coordinate to the cell containing it.
func (t MouseTranslator) ToCell(p entity.Point) (col, row int) {
	return int(math.Floor(p.X / t.CellWidth)), int(math.Floor(p.Y / t.CellHeight))
}

// Translate converts a bubbletea mouse message. Wheel events and presses of
// unknown buttons are not pointer events and report false.
func (t MouseTranslator) Translate(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := PointerEvent{Point: t.ToScreen(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = PointerPress
	case tea.MouseActionMotion:
		ev.Kind = PointerMotion
	case tea.MouseActionRelease:
		ev.Kind = PointerRelease
	default:
		return PointerEvent{}, false
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = ButtonSecondary
	case tea.MouseButtonMiddle:
		ev.Button = ButtonMiddle
	case tea.MouseButtonNone:
		ev.Button = ButtonNone
	default:
		return PointerEvent{}, false
	}

	if ev.Kind == PointerPress && ev.Button == ButtonNone {
		return PointerEvent{}, false
	}
	return ev, true
}
