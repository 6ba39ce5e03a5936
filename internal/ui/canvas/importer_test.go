package canvas

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corkboard/internal/domain/entity"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	return path
}

func TestAddAudioNotes(t *testing.T) {
	dir := t.TempDir()
	b := newTestBoard(t)
	paths := []string{
		writeFile(t, dir, "song.mp3"),
		writeFile(t, dir, "a.b.FLAC"),
	}

	added, err := b.AddAudioNotes(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, added, 2)

	first := added[0]
	assert.Equal(t, entity.NoteKindAudio, first.Kind)
	assert.Equal(t, "song.mp3", first.Content)
	assert.Equal(t, "song", first.Metadata.Title)
	assert.Equal(t, paths[0], first.AudioPath)
	assert.NotEmpty(t, first.Metadata.CoverURL)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, first.Position)

	second := added[1]
	assert.Equal(t, "a.b", second.Metadata.Title)
	assert.Equal(t, entity.Point{X: 120, Y: 120}, second.Position)

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, first.ID, b.Notes()[0].ID)
}

func TestAddAudioNotes_RejectsSomeFiles(t *testing.T) {
	dir := t.TempDir()
	b := newTestBoard(t)
	paths := []string{
		writeFile(t, dir, "notes.txt"),
		filepath.Join(dir, "missing.mp3"),
		writeFile(t, dir, "track.ogg"),
	}

	added, err := b.AddAudioNotes(context.Background(), paths)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedAudio)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, added, 1)
	assert.Equal(t, "track", added[0].Metadata.Title)
	// Offset follows the file's index in the selection.
	assert.Equal(t, entity.Point{X: 140, Y: 140}, added[0].Position)
}

func TestAddAudioNotes_DirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album.mp3")
	require.NoError(t, os.Mkdir(sub, 0o755))
	b := newTestBoard(t)

	added, err := b.AddAudioNotes(context.Background(), []string{sub})

	assert.ErrorIs(t, err, ErrUnsupportedAudio)
	assert.Empty(t, added)
	assert.Equal(t, 0, b.Len())
}

func TestAddAudioNotes_Empty(t *testing.T) {
	b := newTestBoard(t)

	added, err := b.AddAudioNotes(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, added)
}

func TestAddAudioNotes_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	b := newTestBoard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.AddAudioNotes(ctx, []string{writeFile(t, dir, "x.mp3")})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, b.Len())
}

func writeWAV(t *testing.T, dir, name string, sampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           make([]int, samples),
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	return path
}

func TestAddAudioNotes_ReadsWAVDuration(t *testing.T) {
	dir := t.TempDir()
	b := newTestBoard(t)
	paths := []string{
		writeWAV(t, dir, "tone.wav", 8000, 8000*3),
		writeFile(t, dir, "song.mp3"),
	}

	added, err := b.AddAudioNotes(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, added, 2)

	// The reader may count the 36-byte header, well under 0.01s here.
	assert.InDelta(t, 3.0, added[0].Metadata.Duration, 0.01)
	assert.Equal(t, "tone", added[0].Metadata.Title)
	assert.Equal(t, 0.0, added[1].Metadata.Duration, "no header reader for mp3")
}

func TestAddAudioNotes_RejectsBrokenWAV(t *testing.T) {
	dir := t.TempDir()
	b := newTestBoard(t)

	added, err := b.AddAudioNotes(context.Background(), []string{writeFile(t, dir, "broken.wav")})

	assert.ErrorIs(t, err, ErrUnsupportedAudio)
	assert.Empty(t, added)
}
