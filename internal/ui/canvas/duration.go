package canvas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
)

// trackDuration reads the track length in seconds from the file headers.
// Formats without a header reader report 0 (unknown).
func trackDuration(path string) (float64, error) {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("%s: invalid wav header: %w", path, ErrUnsupportedAudio)
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, fmt.Errorf("read duration of %s: %w", path, err)
	}
	return d.Seconds(), nil
}
