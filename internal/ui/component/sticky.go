package component

import (
	"context"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/ui/interaction"
	"github.com/bnema/corkboard/internal/ui/theme"
)

// StickyNote is a movable, resizable text note.
//
// Layout in cells: the top row is a drag strip with the close button one
// cell left of the right edge; the inner area (one cell margin on each
// side, first and last row excluded) is the text; the bottom-right cell is
// the resize handle. Everything else drags.
type StickyNote struct {
	base
}

// NewStickyNote creates the element for a sticky note already on the board.
func NewStickyNote(ctx context.Context, id entity.NoteID, deps Deps) *StickyNote {
	return &StickyNote{base: newBase(ctx, id, entity.NoteKindSticky, deps)}
}

func inTextArea(col, row int, box CellBox) bool {
	return row >= 1 && row <= box.Height-2 && col >= 1 && col <= box.Width-2
}

// Classify maps a layer point to the role of the region under it.
func (s *StickyNote) Classify(p entity.Point) interaction.Role {
	col, row, box, ok := s.local(p)
	if !ok {
		return interaction.RoleOther
	}
	switch {
	case isResizeHandle(col, row, box):
		return interaction.RoleResizeRegion
	case isCloseButton(col, row, box), inTextArea(col, row, box):
		return interaction.RoleOther
	default:
		return interaction.RoleDragRegion
	}
}

// Activate returns the action of the region under p.
func (s *StickyNote) Activate(p entity.Point) Action {
	col, row, box, ok := s.local(p)
	if !ok {
		return Action{}
	}
	switch {
	case isResizeHandle(col, row, box):
		return Action{}
	case isCloseButton(col, row, box):
		return Action{Kind: ActionDelete}
	case inTextArea(col, row, box):
		return Action{Kind: ActionEdit}
	default:
		return Action{}
	}
}

// View renders the note at its current cell size.
func (s *StickyNote) View(t *theme.Theme) string {
	box, ok := s.Box()
	if !ok {
		return ""
	}
	note, _ := s.note()
	w, h := box.Width, box.Height
	paper := t.StickyPaper

	grip := t.Handle
	if s.ctrl.State() != interaction.StateIdle {
		grip = t.ActiveEdge
	}

	textW := max(0, w-2)
	textRows := max(0, h-2)
	var text []string
	if textW > 0 && textRows > 0 {
		text = strings.Split(xansi.Wrap(note.Content, textW, ""), "\n")
	}

	rows := make([]string, 0, h)
	for row := range h {
		var overlays []overlay
		content := ""
		if row == 0 {
			overlays = append(overlays, overlay{col: 0, glyph: glyphGrip, style: grip})
			if w >= 2 {
				overlays = append(overlays, overlay{col: w - 2, glyph: glyphClose, style: t.CloseButton})
			}
		}
		if row >= 1 && row <= textRows && row-1 < len(text) {
			content = " " + text[row-1]
		}
		if row == h-1 {
			overlays = append(overlays, overlay{col: w - 1, glyph: glyphHandle, style: t.Handle})
		}
		rows = append(rows, line(paper, content, w, overlays...))
	}
	return strings.Join(rows, "\n")
}
