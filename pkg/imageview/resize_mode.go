package imageview

import (
	"fmt"

	"github.com/go-drift/imageview/pkg/graphics"
)

// ResizeMode controls how an image is scaled within the view bounds.
type ResizeMode int

const (
	// ResizeModeCover scales the image to cover the bounds while keeping its
	// aspect ratio, cropping the overflow evenly on both sides.
	ResizeModeCover ResizeMode = iota
	// ResizeModeContain scales the image to fit inside the bounds while
	// keeping its aspect ratio, centered.
	ResizeModeContain
	// ResizeModeStretch scales each axis independently to fill the bounds.
	ResizeModeStretch
	// ResizeModeCenter centers the image, shrinking it like contain only when
	// it is larger than the bounds.
	ResizeModeCenter
	// ResizeModeRepeat tiles the image at its intrinsic size from the top-left
	// corner.
	ResizeModeRepeat
)

var resizeModeNames = [...]string{"cover", "contain", "stretch", "center", "repeat"}

// String returns the prop value for the mode.
func (m ResizeMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("ResizeMode(%d)", int(m))
	}
	return resizeModeNames[m]
}

// Valid reports whether m is a known mode.
func (m ResizeMode) Valid() bool {
	return m >= 0 && int(m) < len(resizeModeNames)
}

// ParseResizeMode parses a resizeMode prop value.
func ParseResizeMode(s string) (ResizeMode, bool) {
	for i, name := range resizeModeNames {
		if name == s {
			return ResizeMode(i), true
		}
	}
	return ResizeModeCover, false
}

// fitRects returns the source rect within an image of the given intrinsic
// size and the destination rect within box for a single draw. Repeat is
// handled by tiling and is treated as center here.
func fitRects(mode ResizeMode, intrinsic graphics.Size, box graphics.Rect) (src, dst graphics.Rect) {
	fullSrc := graphics.RectFromLTWH(0, 0, intrinsic.Width, intrinsic.Height)
	if intrinsic.IsEmpty() || box.IsEmpty() {
		return graphics.Rect{}, graphics.Rect{}
	}
	w, h := box.Width(), box.Height()

	switch mode {
	case ResizeModeStretch:
		return fullSrc, box

	case ResizeModeContain, ResizeModeCenter, ResizeModeRepeat:
		scale := min(w/intrinsic.Width, h/intrinsic.Height)
		if mode != ResizeModeContain && scale > 1 {
			scale = 1
		}
		drawSize := graphics.Size{Width: intrinsic.Width * scale, Height: intrinsic.Height * scale}
		return fullSrc, centered(box, drawSize)

	default:
		scale := max(w/intrinsic.Width, h/intrinsic.Height)
		srcW, srcH := w/scale, h/scale
		srcX := (intrinsic.Width - srcW) / 2
		srcY := (intrinsic.Height - srcH) / 2
		return graphics.RectFromLTWH(srcX, srcY, srcW, srcH), box
	}
}

func centered(box graphics.Rect, size graphics.Size) graphics.Rect {
	return graphics.RectFromLTWH(
		box.Left+(box.Width()-size.Width)/2,
		box.Top+(box.Height()-size.Height)/2,
		size.Width,
		size.Height,
	)
}

// tileRects returns the destination rects covering box with copies of an
// image of the given size, starting at the top-left corner. Tiles narrower or
// shorter than one pixel produce none.
func tileRects(intrinsic graphics.Size, box graphics.Rect) []graphics.Rect {
	if intrinsic.Width < 1 || intrinsic.Height < 1 || box.IsEmpty() {
		return nil
	}
	var tiles []graphics.Rect
	for y := box.Top; y < box.Bottom; y += intrinsic.Height {
		for x := box.Left; x < box.Right; x += intrinsic.Width {
			tiles = append(tiles, graphics.RectFromLTWH(x, y, intrinsic.Width, intrinsic.Height))
		}
	}
	return tiles
}
