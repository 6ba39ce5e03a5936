package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeConstraints_Clamp(t *testing.T) {
	tests := []struct {
		name string
		c    SizeConstraints
		in   Size
		want Size
	}{
		{name: "above minimum", c: DefaultConstraints(), in: Size{250, 300}, want: Size{250, 300}},
		{name: "height clamped", c: DefaultConstraints(), in: Size{250, -100}, want: Size{250, 192}},
		{name: "both clamped", c: AudioConstraints(), in: Size{0, 0}, want: Size{256, 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Clamp(tt.in))
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Point: Point{10, 10}, Size: Size{20, 20}}

	assert.True(t, r.Contains(Point{10, 10}))
	assert.True(t, r.Contains(Point{29, 29}))
	assert.False(t, r.Contains(Point{30, 10}))
	assert.False(t, r.Contains(Point{9, 15}))
	assert.False(t, Rect{}.Contains(Point{}))
}

func TestTitleFromFilename(t *testing.T) {
	tests := map[string]string{
		"song.mp3":  "song",
		"a.b.flac":  "a.b",
		"noext":     "noext",
		".hidden":   "",
		".x.ogg":    ".x",
		"trailing.": "trailing.",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleFromFilename(in), in)
	}
}
