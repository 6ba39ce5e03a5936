package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoomLevel_Clamps(t *testing.T) {
	z := NewZoomLevel(ZoomDefault, DefaultZoomRange())

	for i := 0; i < 20; i++ {
		z.ZoomIn()
	}
	assert.Equal(t, ZoomMax, z.Factor)
	assert.Equal(t, 200, z.Percentage())

	for i := 0; i < 30; i++ {
		z.ZoomOut()
	}
	assert.Equal(t, ZoomMin, z.Factor)
	assert.Equal(t, 50, z.Percentage())
}

func TestNewZoomLevel_OutOfRange(t *testing.T) {
	assert.Equal(t, ZoomMax, NewZoomLevel(9, DefaultZoomRange()).Factor)
	assert.Equal(t, ZoomMin, NewZoomLevel(0, DefaultZoomRange()).Factor)
}
