package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/corkboard/internal/domain/entity"
)

func TestBoard_ZoomClamps(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, 1.0, b.Zoom())

	for range 20 {
		b.ZoomIn()
	}
	assert.Equal(t, 2.0, b.Zoom())
	assert.Equal(t, 200, b.ZoomPercent())

	for range 30 {
		b.ZoomOut()
	}
	assert.Equal(t, 0.5, b.Zoom())

	b.ResetZoom()
	assert.Equal(t, 1.0, b.Zoom())
}

func TestBoard_ZoomStep(t *testing.T) {
	b := newTestBoard(t)

	b.ZoomIn()
	assert.Equal(t, 110, b.ZoomPercent())
	b.ZoomOut()
	b.ZoomOut()
	assert.Equal(t, 90, b.ZoomPercent())
}

func TestBoard_SetZoomRangeReclamps(t *testing.T) {
	b := newTestBoard(t)
	b.ZoomIn()
	b.ZoomIn()

	b.SetZoomRange(entity.ZoomRange{Min: 0.5, Max: 1.1, Step: 0.1})

	assert.Equal(t, 1.1, b.Zoom())
}

func TestBoard_PanAndLayer(t *testing.T) {
	b := newTestBoard(t)

	b.Pan(entity.Point{X: 32, Y: -16})
	b.Pan(entity.Point{X: 32})

	assert.Equal(t, entity.Point{X: 64, Y: -16}, b.PanOffset())
	assert.Equal(t, entity.Point{X: 36, Y: 26}, b.ToLayer(entity.Point{X: 100, Y: 10}))
	assert.Equal(t, entity.Point{X: 100, Y: 10}, b.ToScreen(entity.Point{X: 36, Y: 26}))
}

func TestBoard_LayerRectScalesWithZoom(t *testing.T) {
	b := newTestBoard(t)
	pos := entity.Point{X: 10, Y: 20}
	size := entity.Size{Width: 192, Height: 192}

	assert.Equal(t, entity.Rect{Point: pos, Size: size}, b.LayerRect(pos, size))

	for range 10 {
		b.ZoomIn()
	}
	assert.Equal(t,
		entity.Rect{Point: entity.Point{X: 20, Y: 40}, Size: entity.Size{Width: 384, Height: 384}},
		b.LayerRect(pos, size))
}
