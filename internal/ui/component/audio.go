package component

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/ui/interaction"
	"github.com/bnema/corkboard/internal/ui/theme"
)

// AudioNote is a movable, resizable player card. It tracks play state and
// a playhead clocked by the host; it does not decode audio. Seeking needs
// a known duration.
//
// Layout in cells, top to bottom: the cover (drag, with the close button
// and a centered play toggle), a two-row title block (drag), the progress
// bar, the time labels and the rest of the card. The bottom-right cell is
// the resize handle.
type AudioNote struct {
	base

	playing  bool
	current  float64
	duration float64
}

// NewAudioNote creates the element for an audio note already on the board.
func NewAudioNote(ctx context.Context, id entity.NoteID, deps Deps) *AudioNote {
	a := &AudioNote{base: newBase(ctx, id, entity.NoteKindAudio, deps)}
	if note, ok := a.note(); ok {
		a.SetDuration(note.Metadata.Duration)
	}
	return a
}

// FormatTime renders seconds as m:ss. Negative or undefined input is 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// CoverHeight is the cover height for a card of the given size: 60% of the
// height, but never taller than the card is wide.
func CoverHeight(size entity.Size) float64 {
	return math.Min(size.Height*0.6, size.Width)
}

// ProgressFraction converts a click at x on a bar starting at left with
// the given width into a playhead fraction in [0, 1]. A zero-width bar
// yields 0.
func ProgressFraction(x, left, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (x-left)/width))
}

// Playing reports whether the note is in the playing state.
func (a *AudioNote) Playing() bool {
	return a.playing
}

// TogglePlay flips between playing and paused.
func (a *AudioNote) TogglePlay() bool {
	a.playing = !a.playing
	return a.playing
}

// SetDuration records the track length in seconds.
func (a *AudioNote) SetDuration(seconds float64) {
	a.duration = math.Max(0, seconds)
	a.current = math.Min(a.current, a.duration)
}

// Seek moves the playhead to a fraction of the duration.
func (a *AudioNote) Seek(fraction float64) {
	a.current = math.Max(0, math.Min(1, fraction)) * a.duration
}

// Playhead returns the current position and the duration in seconds.
func (a *AudioNote) Playhead() (current, duration float64) {
	return a.current, a.duration
}

// Progress returns the played fraction, 0 when the duration is unknown.
func (a *AudioNote) Progress() float64 {
	if a.duration <= 0 {
		return 0
	}
	return a.current / a.duration
}

// Clocked reports whether the playhead moves: playing with a known duration.
func (a *AudioNote) Clocked() bool {
	return a.playing && a.duration > 0
}

// Advance moves the playhead by dt seconds while clocked. It reports
// whether the track reached its end, which stops playback.
func (a *AudioNote) Advance(dt float64) bool {
	if !a.Clocked() || dt <= 0 {
		return false
	}
	a.current += dt
	if a.current >= a.duration {
		a.Ended()
		return true
	}
	return false
}

// Ended resets the player as when the track reaches its end.
func (a *AudioNote) Ended() {
	a.playing = false
	a.current = 0
}

type audioLayout struct {
	cover    int // rows [0, cover)
	play     int // row of the play toggle
	title    int
	artist   int
	progress int
	times    int
}

func (a *AudioNote) layout(box CellBox) audioLayout {
	const belowCover = 5
	coverPx := CoverHeight(a.ctrl.Dimensions()) * a.deps.Board.Zoom()
	cover := int(math.Round(coverPx / a.deps.Grid.CellHeight))
	cover = max(1, min(cover, box.Height-belowCover))
	return audioLayout{
		cover:    cover,
		play:     cover / 2,
		title:    cover,
		artist:   cover + 1,
		progress: cover + 2,
		times:    cover + 3,
	}
}

func playColumns(box CellBox) (from, to int) {
	mid := box.Width / 2
	return mid - 1, mid + 1
}

func (l audioLayout) isPlay(col, row int, box CellBox) bool {
	from, to := playColumns(box)
	return row == l.play && col >= from && col <= to
}

func (l audioLayout) isProgress(col, row int, box CellBox) bool {
	return row == l.progress && col >= 1 && col <= box.Width-2
}

// Classify maps a layer point to the role of the region under it.
func (a *AudioNote) Classify(p entity.Point) interaction.Role {
	col, row, box, ok := a.local(p)
	if !ok {
		return interaction.RoleOther
	}
	l := a.layout(box)
	switch {
	case isResizeHandle(col, row, box):
		return interaction.RoleResizeRegion
	case isCloseButton(col, row, box), l.isPlay(col, row, box):
		return interaction.RoleOther
	case row < l.cover, row == l.title, row == l.artist:
		return interaction.RoleDragRegion
	default:
		return interaction.RoleOther
	}
}

// Activate performs or returns the action of the region under p. Play and
// seek are applied to the note directly.
func (a *AudioNote) Activate(p entity.Point) Action {
	col, row, box, ok := a.local(p)
	if !ok {
		return Action{}
	}
	l := a.layout(box)
	switch {
	case isResizeHandle(col, row, box):
		return Action{}
	case isCloseButton(col, row, box):
		return Action{Kind: ActionDelete}
	case l.isPlay(col, row, box):
		a.TogglePlay()
		return Action{Kind: ActionTogglePlay}
	case l.isProgress(col, row, box) && a.duration > 0:
		cw := a.deps.Grid.CellWidth
		left := float64(box.Col+1) * cw
		width := float64(box.Width-2) * cw
		frac := ProgressFraction(p.X, left, width)
		a.Seek(frac)
		return Action{Kind: ActionSeek, Fraction: frac}
	default:
		return Action{}
	}
}

// View renders the card at its current cell size.
func (a *AudioNote) View(t *theme.Theme) string {
	box, ok := a.Box()
	if !ok {
		return ""
	}
	note, _ := a.note()
	w, h := box.Width, box.Height
	l := a.layout(box)

	grip := t.Handle
	if a.ctrl.State() != interaction.StateIdle {
		grip = t.ActiveEdge
	}
	playGlyph := glyphPlay
	if a.playing {
		playGlyph = glyphPause
	}
	playCol := box.Width / 2

	rows := make([]string, 0, h)
	for row := range h {
		var overlays []overlay
		switch {
		case row < l.cover:
			if row == 0 {
				overlays = append(overlays, overlay{col: 0, glyph: glyphGrip, style: grip})
				if w >= 2 {
					overlays = append(overlays, overlay{col: w - 2, glyph: glyphClose, style: t.CloseButton})
				}
			}
			if row == l.play {
				overlays = append(overlays, overlay{col: playCol, glyph: playGlyph, style: t.PlayButton})
			}
			overlays = appendHandle(overlays, row, h, w, t)
			rows = append(rows, line(t.Cover, "", w, overlays...))
		case row == l.title:
			title := note.Metadata.Title
			if title == "" {
				title = note.Content
			}
			rows = append(rows, line(t.TrackTitle, " "+title, w, appendHandle(nil, row, h, w, t)...))
		case row == l.artist:
			rows = append(rows, line(t.TrackArtist, " "+note.Metadata.Artist, w, appendHandle(nil, row, h, w, t)...))
		case row == l.progress:
			rows = append(rows, line(t.AudioPaper, "", w, a.progressOverlays(w, t, appendHandle(nil, row, h, w, t))...))
		case row == l.times:
			rows = append(rows, line(t.TrackTime, a.timeLabels(w), w, appendHandle(nil, row, h, w, t)...))
		default:
			rows = append(rows, line(t.AudioPaper, "", w, appendHandle(nil, row, h, w, t)...))
		}
	}
	return strings.Join(rows, "\n")
}

func appendHandle(overlays []overlay, row, h, w int, t *theme.Theme) []overlay {
	if row != h-1 {
		return overlays
	}
	return append(overlays, overlay{col: w - 1, glyph: glyphHandle, style: t.Handle})
}

func (a *AudioNote) progressOverlays(w int, t *theme.Theme, overlays []overlay) []overlay {
	barW := w - 2
	if barW <= 0 {
		return overlays
	}
	filled := int(math.Round(a.Progress() * float64(barW)))
	bar := make([]overlay, 0, barW+len(overlays))
	for i := range barW {
		if i < filled {
			bar = append(bar, overlay{col: 1 + i, glyph: glyphBarOn, style: t.ProgressOn})
		} else {
			bar = append(bar, overlay{col: 1 + i, glyph: glyphBarOff, style: t.ProgressOff})
		}
	}
	return append(bar, overlays...)
}

func (a *AudioNote) timeLabels(w int) string {
	cur, total := FormatTime(a.current), "-:--"
	if a.duration > 0 {
		total = FormatTime(a.duration)
	}
	gap := w - 2 - len(cur) - len(total)
	if gap < 1 {
		return " " + cur
	}
	return " " + cur + strings.Repeat(" ", gap) + total
}
