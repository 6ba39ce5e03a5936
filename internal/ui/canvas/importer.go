package canvas

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/logging"
)

// ErrUnsupportedAudio is returned for files whose extension is not an
// accepted audio type.
var ErrUnsupportedAudio = errors.New("unsupported audio file")

// maxImportWorkers bounds concurrent file checks.
const maxImportWorkers = 8

// AddAudioNotes turns audio files into audio notes. Files are checked and
// their durations read concurrently; rejected files are reported in the
// returned error while the accepted ones are still added, in argument
// order. The placement offset grows with the file's position in paths.
func (b *Board) AddAudioNotes(ctx context.Context, paths []string) ([]entity.Note, error) {
	log := logging.FromContext(ctx)
	if len(paths) == 0 {
		return nil, nil
	}

	fileErrs := make([]error, len(paths))
	durations := make([]float64, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxImportWorkers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if fileErrs[i] = b.checkAudioFile(path); fileErrs[i] != nil {
				return nil
			}
			durations[i], fileErrs[i] = trackDuration(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("import audio: %w", err)
	}

	added := make([]entity.Note, 0, len(paths))
	var rejected []error
	for i, path := range paths {
		if fileErrs[i] != nil {
			log.Warn().Err(fileErrs[i]).Str("path", path).Msg("audio file rejected")
			rejected = append(rejected, fileErrs[i])
			continue
		}
		added = append(added, b.Insert(b.audioNote(path, i, durations[i])))
	}

	log.Info().Int("added", len(added)).Int("rejected", len(rejected)).Msg("audio import finished")
	return added, errors.Join(rejected...)
}

func (b *Board) audioNote(path string, index int, duration float64) entity.Note {
	name := filepath.Base(path)
	offset := float64(index) * b.opts.ImportOffset
	return entity.Note{
		ID:      newNoteID(),
		Kind:    entity.NoteKindAudio,
		Content: name,
		Position: entity.Point{
			X: b.opts.Rand()*b.opts.SpawnArea + offset,
			Y: b.opts.Rand()*b.opts.SpawnArea + offset,
		},
		AudioPath: path,
		Metadata: entity.AudioMetadata{
			Title:    entity.TitleFromFilename(name),
			CoverURL: b.opts.PlaceholderCoverURL,
			Duration: duration,
		},
	}
}

func (b *Board) checkAudioFile(path string) error {
	if !b.acceptsExtension(path) {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedAudio)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file: %w", path, ErrUnsupportedAudio)
	}
	return nil
}

func (b *Board) acceptsExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return slices.Contains(b.opts.AudioExtensions, ext)
}
