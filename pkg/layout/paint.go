package layout

import "github.com/go-drift/imageview/pkg/graphics"

// PaintContext provides the canvas and environment for a paint pass.
type PaintContext struct {
	Canvas graphics.Canvas
	// Size is the pixel size of the area being painted.
	Size graphics.Size
}

// Bounds returns the rect covering the painted area, anchored at the origin.
func (p *PaintContext) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, p.Size.Width, p.Size.Height)
}
