package canvas

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/infrastructure/config"
)

func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	opts := OptionsFromConfig(config.DefaultConfig())
	opts.Rand = fixedRand(0.5)
	return NewBoard(context.Background(), opts)
}

func TestBoard_AddNote(t *testing.T) {
	b := newTestBoard(t)

	note := b.AddNote()

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, entity.NoteKindSticky, note.Kind)
	assert.Equal(t, "New note", note.Content)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, note.Position)
	assert.Equal(t, 1, b.Len())

	got, ok := b.Get(note.ID)
	require.True(t, ok)
	assert.Equal(t, note, got)
}

func TestBoard_AddNoteSpawnRange(t *testing.T) {
	b := NewBoard(context.Background(), OptionsFromConfig(nil))

	for range 50 {
		n := b.AddNote()
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.Less(t, n.Position.X, 200.0)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.Less(t, n.Position.Y, 200.0)
	}

	ids := map[entity.NoteID]bool{}
	for _, n := range b.Notes() {
		ids[n.ID] = true
	}
	assert.Len(t, ids, 50, "ids must be unique")
}

func TestBoard_SetPositionIsKeyed(t *testing.T) {
	b := newTestBoard(t)
	a := b.AddNote()
	c := b.AddNote()

	b.SetPosition(a.ID, entity.Point{X: 7, Y: 9})

	gotA, _ := b.Get(a.ID)
	gotC, _ := b.Get(c.ID)
	assert.Equal(t, entity.Point{X: 7, Y: 9}, gotA.Position)
	assert.Equal(t, c.Position, gotC.Position)
	assert.Equal(t, "New note", gotA.Content)
}

func TestBoard_SetPositionUnknownIgnored(t *testing.T) {
	b := newTestBoard(t)
	b.AddNote()

	b.SetPosition("missing", entity.Point{X: 1, Y: 1})

	assert.Equal(t, 1, b.Len())
}

func TestBoard_ConcurrentPositionReports(t *testing.T) {
	b := newTestBoard(t)
	const n = 32
	notes := make([]entity.Note, n)
	for i := range notes {
		notes[i] = b.AddNote()
	}

	var wg sync.WaitGroup
	for i, note := range notes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for step := range 100 {
				b.SetPosition(note.ID, entity.Point{X: float64(i), Y: float64(step)})
			}
		}()
	}
	wg.Wait()

	for i, note := range notes {
		got, ok := b.Get(note.ID)
		require.True(t, ok)
		assert.Equal(t, entity.Point{X: float64(i), Y: 99}, got.Position, "note %d", i)
	}
}

func TestBoard_SetContentAndDelete(t *testing.T) {
	b := newTestBoard(t)
	a := b.AddNote()
	c := b.AddNote()

	require.NoError(t, b.SetContent(a.ID, "groceries"))
	got, _ := b.Get(a.ID)
	assert.Equal(t, "groceries", got.Content)

	require.NoError(t, b.Delete(a.ID))
	assert.Equal(t, 1, b.Len())
	_, ok := b.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, c.ID, b.Notes()[0].ID)

	assert.ErrorIs(t, b.Delete(a.ID), ErrNoteNotFound)
	assert.ErrorIs(t, b.SetContent(a.ID, "x"), ErrNoteNotFound)
}

func TestBoard_NotesKeepInsertionOrder(t *testing.T) {
	b := newTestBoard(t)
	var want []entity.NoteID
	for i := range 5 {
		n := b.Insert(entity.Note{ID: entity.NoteID(fmt.Sprintf("n%d", i)), Kind: entity.NoteKindSticky})
		want = append(want, n.ID)
	}
	b.SetPosition("n0", entity.Point{X: 3})

	var got []entity.NoteID
	for _, n := range b.Notes() {
		got = append(got, n.ID)
	}
	assert.Equal(t, want, got)
}

func TestBoard_NotesSnapshotIsDetached(t *testing.T) {
	b := newTestBoard(t)
	n := b.AddNote()

	snap := b.Notes()
	snap[0].Content = "changed"

	got, _ := b.Get(n.ID)
	assert.Equal(t, "New note", got.Content)
}

func TestBoard_Constraints(t *testing.T) {
	b := newTestBoard(t)

	assert.Equal(t, entity.DefaultConstraints(), b.Constraints(entity.NoteKindSticky))
	assert.Equal(t, entity.AudioConstraints(), b.Constraints(entity.NoteKindAudio))
}
