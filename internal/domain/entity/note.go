package entity

import "strings"

// NoteID uniquely identifies a note on the board.
type NoteID string

// NoteKind distinguishes the note variants.
type NoteKind string

const (
	NoteKindSticky NoteKind = "sticky"
	NoteKindAudio  NoteKind = "audio"
)

// AudioMetadata describes the track behind an audio note.
type AudioMetadata struct {
	Title    string
	Artist   string
	CoverURL string
	// Duration is the track length in seconds, 0 when unknown.
	Duration float64
}

// Note is a single item on the board.
// Position is canvas-space and owned by the board, not by the note widget.
type Note struct {
	ID        NoteID
	Kind      NoteKind
	Content   string
	Position  Point
	AudioPath string
	Metadata  AudioMetadata
}

// IsAudio reports whether the note is an audio player.
func (n Note) IsAudio() bool {
	return n.Kind == NoteKindAudio
}

// TitleFromFilename strips the last extension from a file name.
// "song.mp3" -> "song", "a.b.flac" -> "a.b", ".hidden" -> "".
// A trailing dot is not an extension.
func TitleFromFilename(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return name
	}
	return name[:idx]
}
