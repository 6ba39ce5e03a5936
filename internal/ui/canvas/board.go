// Package canvas holds the whiteboard's notes and the view transform
// used to display them.
package canvas

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/logging"
)

// ErrNoteNotFound is returned when an operation targets an unknown note.
var ErrNoteNotFound = errors.New("note not found")

// Options configures note placement and the zoom range of a board.
type Options struct {
	DefaultContent      string
	SpawnArea           float64
	ImportOffset        float64
	AudioExtensions     []string
	PlaceholderCoverURL string
	Zoom                entity.ZoomRange
	DefaultZoom         float64
	StickyConstraints   entity.SizeConstraints
	AudioConstraints    entity.SizeConstraints

	// Rand returns a value in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
}

// OptionsFromConfig builds board options from the user configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		DefaultContent:      cfg.Notes.DefaultContent,
		SpawnArea:           cfg.Notes.SpawnArea,
		ImportOffset:        cfg.Notes.ImportOffset,
		AudioExtensions:     append([]string(nil), cfg.Import.AudioExtensions...),
		PlaceholderCoverURL: cfg.Import.PlaceholderCoverURL,
		Zoom:                cfg.ZoomRange(),
		DefaultZoom:         cfg.Canvas.DefaultZoom,
		StickyConstraints:   cfg.StickyConstraints(),
		AudioConstraints:    cfg.AudioConstraints(),
	}
}

// Board is the note collection plus the zoom and pan of the view.
// Notes keep their insertion order; later notes are drawn on top.
type Board struct {
	mu    sync.RWMutex
	notes map[entity.NoteID]*entity.Note
	order []entity.NoteID

	zoom *entity.ZoomLevel
	pan  entity.Point

	opts Options
	ctx  context.Context
}

// NewBoard creates an empty board.
func NewBoard(ctx context.Context, opts Options) *Board {
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.Zoom == (entity.ZoomRange{}) {
		opts.Zoom = entity.DefaultZoomRange()
	}
	if opts.DefaultZoom == 0 {
		opts.DefaultZoom = entity.ZoomDefault
	}
	if opts.StickyConstraints == (entity.SizeConstraints{}) {
		opts.StickyConstraints = entity.DefaultConstraints()
	}
	if opts.AudioConstraints == (entity.SizeConstraints{}) {
		opts.AudioConstraints = entity.AudioConstraints()
	}
	return &Board{
		notes: make(map[entity.NoteID]*entity.Note),
		zoom:  entity.NewZoomLevel(opts.DefaultZoom, opts.Zoom),
		opts:  opts,
		ctx:   ctx,
	}
}

// Constraints returns the minimum size used for notes of the given kind.
func (b *Board) Constraints(kind entity.NoteKind) entity.SizeConstraints {
	if kind == entity.NoteKindAudio {
		return b.opts.AudioConstraints
	}
	return b.opts.StickyConstraints
}

// AddNote creates a sticky note at a random spot of the spawn area.
func (b *Board) AddNote() entity.Note {
	note := &entity.Note{
		ID:      newNoteID(),
		Kind:    entity.NoteKindSticky,
		Content: b.opts.DefaultContent,
		Position: entity.Point{
			X: b.opts.Rand() * b.opts.SpawnArea,
			Y: b.opts.Rand() * b.opts.SpawnArea,
		},
	}

	b.mu.Lock()
	b.insertLocked(note)
	b.mu.Unlock()

	logging.FromContext(b.ctx).Debug().
		Str("note_id", string(note.ID)).
		Float64("x", note.Position.X).
		Float64("y", note.Position.Y).
		Msg("note added")
	return *note
}

// Insert adds a fully built note. An empty ID gets a fresh one.
func (b *Board) Insert(note entity.Note) entity.Note {
	if note.ID == "" {
		note.ID = newNoteID()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.insertLocked(&note)
	return note
}

func (b *Board) insertLocked(note *entity.Note) {
	if _, exists := b.notes[note.ID]; !exists {
		b.order = append(b.order, note.ID)
	}
	b.notes[note.ID] = note
}

// SetPosition moves one note. Only the entry for id changes; updates for
// unknown ids are ignored.
func (b *Board) SetPosition(id entity.NoteID, p entity.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if note, ok := b.notes[id]; ok {
		note.Position = p
	}
}

// SetContent replaces the text of a note.
func (b *Board) SetContent(id entity.NoteID, content string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	note, ok := b.notes[id]
	if !ok {
		return ErrNoteNotFound
	}
	note.Content = content
	return nil
}

// Delete removes a note.
func (b *Board) Delete(id entity.NoteID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(b.notes, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	logging.FromContext(b.ctx).Debug().Str("note_id", string(id)).Msg("note deleted")
	return nil
}

// Get returns a copy of the note with the given id.
func (b *Board) Get(id entity.NoteID) (entity.Note, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	note, ok := b.notes[id]
	if !ok {
		return entity.Note{}, false
	}
	return *note, true
}

// Notes returns a snapshot of all notes in insertion order.
func (b *Board) Notes() []entity.Note {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entity.Note, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.notes[id])
	}
	return out
}

// Len returns the number of notes.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

func newNoteID() entity.NoteID {
	return entity.NoteID(uuid.NewString())
}
