package canvas

import "github.com/bnema/corkboard/internal/domain/entity"

// Zoom returns the current display scale.
func (b *Board) Zoom() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.zoom.Factor
}

// ZoomPercent returns the display scale as a rounded percentage.
func (b *Board) ZoomPercent() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.zoom.Percentage()
}

// ZoomIn raises the scale by one step, up to the maximum.
func (b *Board) ZoomIn() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.zoom.ZoomIn()
	return b.zoom.Factor
}

// ZoomOut lowers the scale by one step, down to the minimum.
func (b *Board) ZoomOut() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.zoom.ZoomOut()
	return b.zoom.Factor
}

// ResetZoom restores the configured default scale.
func (b *Board) ResetZoom() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.zoom.SetFactor(b.opts.DefaultZoom)
}

// SetZoomRange applies a new zoom range, re-clamping the current factor.
func (b *Board) SetZoomRange(r entity.ZoomRange) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opts.Zoom = r
	b.zoom.Range = r
	b.zoom.SetFactor(b.zoom.Factor)
}

// Pan shifts the view origin by delta screen pixels.
func (b *Board) Pan(delta entity.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pan = b.pan.Add(delta)
}

// PanOffset returns the screen position of the canvas layer origin.
func (b *Board) PanOffset() entity.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pan
}

// ToLayer converts a screen point into the canvas layer, the space where
// rendered note bounds live. The layer is panned but not unzoomed.
func (b *Board) ToLayer(p entity.Point) entity.Point {
	return p.Sub(b.PanOffset())
}

// ToScreen converts a layer point back to screen pixels.
func (b *Board) ToScreen(p entity.Point) entity.Point {
	return p.Add(b.PanOffset())
}

// LayerRect returns where a note of the given size is drawn in the layer:
// both its position and its size are scaled by the zoom.
func (b *Board) LayerRect(pos entity.Point, size entity.Size) entity.Rect {
	z := b.Zoom()
	return entity.Rect{Point: pos.Scale(z), Size: size.Scale(z)}
}
