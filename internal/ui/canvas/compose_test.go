package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		layers []Layer
		want   string
	}{
		{
			name: "blank",
			w:    3, h: 2,
			want: "   \n   ",
		},
		{
			name:   "placed",
			w:      5, h: 3,
			layers: []Layer{{Col: 1, Row: 1, Content: "ab\ncd"}},
			want:   "     \n ab  \n cd  ",
		},
		{
			name:   "later covers earlier",
			w:      4, h: 1,
			layers: []Layer{{Col: 0, Row: 0, Content: "xxx"}, {Col: 1, Row: 0, Content: "o"}},
			want:   "xox ",
		},
		{
			name:   "clipped left and top",
			w:      3, h: 2,
			layers: []Layer{{Col: -1, Row: -1, Content: "123\n456\n789"}},
			want:   "56 \n89 ",
		},
		{
			name:   "clipped right",
			w:      3, h: 1,
			layers: []Layer{{Col: 2, Row: 0, Content: "abc"}},
			want:   "  a",
		},
		{
			name:   "fully outside",
			w:      2, h: 1,
			layers: []Layer{{Col: 5, Row: 0, Content: "abc"}},
			want:   "  ",
		},
		{
			name:   "ragged lines padded",
			w:      3, h: 2,
			layers: []Layer{{Col: 0, Row: 0, Content: "abc"}, {Col: 0, Row: 0, Content: "xy\nz"}},
			want:   "xyc\nz  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.w, tt.h, tt.layers))
		})
	}
}

func TestCompose_EmptyViewport(t *testing.T) {
	assert.Empty(t, Compose(0, 5, nil))
}
