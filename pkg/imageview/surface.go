// Package imageview composes corner clipping, border painting and an
// elevation-aware background into a single image view surface.
//
// A Surface is driven by property setters and a paint callback that all run
// on the same render thread; it performs no locking. Every setter returns the
// [Invalidation] it caused and forwards it to the optional [Host].
package imageview

import (
	"image"
	"log/slog"

	"github.com/go-drift/imageview/pkg/border"
	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/layout"
)

// Invalidation is the set of redraw steps a property change requires.
type Invalidation uint8

const (
	// Reclip means the outline used for clipping must be recomputed.
	Reclip Invalidation = 1 << iota
	// Repaint means the pixels must be redrawn.
	Repaint

	// NoOp means nothing observable changed.
	NoOp Invalidation = 0
)

// Has reports whether every step in other is set in i.
func (i Invalidation) Has(other Invalidation) bool {
	return i&other == other
}

func (i Invalidation) String() string {
	switch i {
	case NoOp:
		return "none"
	case Reclip:
		return "reclip"
	case Repaint:
		return "repaint"
	case Reclip | Repaint:
		return "reclip|repaint"
	default:
		return "invalid"
	}
}

// Host is the view hosting a surface. It receives invalidations as they
// happen.
type Host interface {
	// InvalidateOutline recomputes the outline the host clips to.
	InvalidateOutline()
	// Invalidate schedules a repaint.
	Invalidate()
}

// ClipPathProvider builds the outline a surface clips to.
type ClipPathProvider interface {
	Outline(bounds graphics.Rect, units layout.UnitConverter) graphics.RRect
	ClipPath(bounds graphics.Rect, units layout.UnitConverter) *graphics.Path
}

// OverlayPainter paints on top of the image content.
type OverlayPainter interface {
	Draw(canvas graphics.Canvas, bounds graphics.Rect, dir layout.TextDirection, units layout.UnitConverter)
}

var (
	_ ClipPathProvider = (*border.Resolver)(nil)
	_ OverlayPainter   = (*border.Compositor)(nil)
	_ Target           = (*Surface)(nil)
)

// Options configures a new Surface. Every field is optional.
type Options struct {
	Host      Host
	Loader    Loader
	Units     layout.UnitConverter
	Direction layout.DirectionProvider
	// FilterQuality is the sampling used when scaling the image.
	FilterQuality graphics.FilterQuality
}

// Surface is the drawing state of one image view.
type Surface struct {
	host      Host
	loader    Loader
	units     layout.UnitConverter
	direction layout.DirectionProvider
	quality   graphics.FilterQuality

	resolver   *border.Resolver
	compositor *border.Compositor
	clip       ClipPathProvider
	overlay    OverlayPainter

	requestedBackground graphics.Color
	effectiveBackground graphics.Color
	elevation           float64

	resizeMode    ResizeMode
	clipToOutline bool

	source  *Source
	request Request
	image   image.Image
}

// NewSurface returns a surface with a transparent background, no elevation,
// cover resize mode and clipping to the outline enabled.
func NewSurface(opts Options) *Surface {
	resolver := border.NewResolver()
	return &Surface{
		host:          opts.Host,
		loader:        opts.Loader,
		units:         opts.Units,
		direction:     opts.Direction,
		quality:       opts.FilterQuality,
		resolver:      resolver,
		clip:          resolver,
		resizeMode:    ResizeModeCover,
		clipToOutline: true,
	}
}

// SetBorderRadius writes one radius slot. A stored change requires a reclip;
// if it also flips whether all four corners are equal, a repaint as well.
func (s *Surface) SetBorderRadius(pos border.Corner, v border.Value) Invalidation {
	wasEqual := s.resolver.HasEqualCorners()
	inv := NoOp
	if s.resolver.SetRadius(v, pos) {
		inv |= Reclip
		if s.resolver.HasEqualCorners() != wasEqual {
			inv |= Repaint
		}
	}
	if s.compositor != nil && s.compositor.SetRadius(v, pos) && s.compositor.IsVisible(s.paintDirection()) {
		inv |= Repaint
	}
	return s.notify("borderRadius", inv)
}

// SetBorderWidth writes one border width slot in device-independent units.
func (s *Surface) SetBorderWidth(pos border.Edge, w border.Value) Invalidation {
	return s.notify("borderWidth", s.repaintIf(s.borderCompositor().SetWidth(pos, w)))
}

// SetBorderColor writes the RGB and alpha components of one border color
// slot. Either may be undefined.
func (s *Surface) SetBorderColor(pos border.Edge, rgb, alpha border.Value) Invalidation {
	return s.notify("borderColor", s.repaintIf(s.borderCompositor().SetColor(pos, rgb, alpha)))
}

// SetBorderColorARGB writes one border color slot from a packed color. A nil
// color clears the slot.
func (s *Surface) SetBorderColorARGB(pos border.Edge, c *graphics.Color) Invalidation {
	return s.notify("borderColor", s.repaintIf(s.borderCompositor().SetColorARGB(pos, c)))
}

// SetBackgroundColor sets the requested background color.
func (s *Surface) SetBackgroundColor(c graphics.Color) Invalidation {
	s.requestedBackground = c
	return s.notify("backgroundColor", s.repaintIf(s.updateBackground()))
}

// SetElevation sets the elevation in device-independent units. Negative and
// NaN values are treated as zero.
func (s *Surface) SetElevation(dp float64) Invalidation {
	if !(dp > 0) {
		dp = 0
	}
	changed := dp != s.elevation
	s.elevation = dp
	if s.updateBackground() {
		changed = true
	}
	return s.notify("elevation", s.repaintIf(changed))
}

// SetResizeMode sets how the image is fitted. An unknown mode panics with an
// [errors.InvariantError]; parse prop values with [ParseResizeMode].
func (s *Surface) SetResizeMode(mode ResizeMode) Invalidation {
	if !mode.Valid() {
		errors.Invariantf("imageview.Surface.SetResizeMode", "unknown resize mode %d", int(mode))
	}
	changed := mode != s.resizeMode
	s.resizeMode = mode
	return s.notify("resizeMode", s.repaintIf(changed))
}

// SetClipToOutline enables or disables clipping content to the rounded
// outline. When disabled, content is clipped to the bounds only.
func (s *Surface) SetClipToOutline(clip bool) Invalidation {
	changed := clip != s.clipToOutline
	s.clipToOutline = clip
	return s.notify("clipToOutline", s.repaintIf(changed))
}

// SetSource cancels any in-flight load and drops the current image. A nil
// source or one without a URI leaves the view empty; otherwise a new load is
// issued and the image arrives later through SetImage.
func (s *Surface) SetSource(src *Source) Invalidation {
	if s.loader != nil {
		s.loader.Cancel(s)
	}
	hadImage := s.image != nil
	s.image = nil
	s.source = nil
	s.request = Request{}
	if src != nil && src.URI != "" {
		copied := *src
		s.source = &copied
		s.request = copied.Request()
		if s.loader != nil {
			errors.Logger().Debug("imageview: load", slog.String("uri", s.request.URI),
				slog.Int("targetWidth", s.request.TargetWidth), slog.Int("targetHeight", s.request.TargetHeight))
			s.loader.Load(s.request, s)
		}
	}
	return s.notify("source", s.repaintIf(hadImage))
}

// SetImage implements [Target]. It stores a decoded image and repaints.
func (s *Surface) SetImage(img image.Image) {
	if img == nil && s.image == nil {
		return
	}
	s.image = img
	s.notify("image", Repaint)
}

// Dispose cancels any in-flight load. The surface must not be used after.
func (s *Surface) Dispose() {
	if s.loader != nil {
		s.loader.Cancel(s)
	}
	s.source = nil
}

// BackgroundColor returns the requested background color.
func (s *Surface) BackgroundColor() graphics.Color {
	return s.requestedBackground
}

// EffectiveBackgroundColor returns the color actually painted: opaque white
// when the surface is elevated and the requested color is fully transparent,
// the requested color otherwise.
func (s *Surface) EffectiveBackgroundColor() graphics.Color {
	return s.effectiveBackground
}

// Elevation returns the elevation in device-independent units.
func (s *Surface) Elevation() float64 {
	return s.elevation
}

// ResizeMode returns the current resize mode.
func (s *Surface) ResizeMode() ResizeMode {
	return s.resizeMode
}

// ClipToOutline reports whether content is clipped to the rounded outline.
func (s *Surface) ClipToOutline() bool {
	return s.clipToOutline
}

// Source returns a copy of the current source, or nil.
func (s *Surface) Source() *Source {
	if s.source == nil {
		return nil
	}
	copied := *s.source
	return &copied
}

// Image returns the displayed image, or nil.
func (s *Surface) Image() image.Image {
	return s.image
}

// Resolver returns the corner radius resolver.
func (s *Surface) Resolver() *border.Resolver {
	return s.resolver
}

// Compositor returns the border compositor, or nil if no border property has
// been written yet.
func (s *Surface) Compositor() *border.Compositor {
	return s.compositor
}

// borderCompositor returns the compositor, creating it on first use with the
// radius slots written so far.
func (s *Surface) borderCompositor() *border.Compositor {
	if s.compositor == nil {
		s.compositor = border.NewCompositor()
		s.compositor.SetRadii(s.resolver.Radii())
		s.overlay = s.compositor
	}
	return s.compositor
}

func (s *Surface) updateBackground() bool {
	effective := s.requestedBackground
	if s.elevation > 0 && s.requestedBackground.IsTransparent() {
		effective = graphics.ColorWhite
	}
	changed := effective != s.effectiveBackground
	s.effectiveBackground = effective
	return changed
}

func (s *Surface) paintDirection() layout.TextDirection {
	return layout.ResolveDirection(s.direction)
}

func (s *Surface) repaintIf(changed bool) Invalidation {
	if changed {
		return Repaint
	}
	return NoOp
}

func (s *Surface) notify(prop string, inv Invalidation) Invalidation {
	if inv == NoOp {
		return inv
	}
	errors.Logger().Debug("imageview: invalidate", slog.String("prop", prop), slog.String("invalidation", inv.String()))
	if s.host == nil {
		return inv
	}
	if inv.Has(Reclip) {
		s.host.InvalidateOutline()
	}
	if inv.Has(Repaint) {
		s.host.Invalidate()
	}
	return inv
}
