// Package props maps named view properties, as they arrive from a host UI
// layer, onto [imageview.Surface] setters.
//
// Values follow JSON decoding: numbers are float64 (other numeric types are
// accepted too), objects are map[string]any and nil means the property was
// unset. A rejected value leaves the view untouched and is returned as an
// [*errors.Error] of kind [errors.KindInvalidProperty] wrapping an
// [*errors.PropertyError]. Rejections are also sent to the global error
// handler.
package props

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/go-drift/imageview/pkg/border"
	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/imageview"
)

type setter func(view *imageview.Surface, value any) error

var radiusProps = map[string]border.Corner{
	"borderRadius":            border.CornerAll,
	"borderTopLeftRadius":     border.CornerTopLeft,
	"borderTopRightRadius":    border.CornerTopRight,
	"borderBottomRightRadius": border.CornerBottomRight,
	"borderBottomLeftRadius":  border.CornerBottomLeft,
	"borderTopStartRadius":    border.CornerTopStart,
	"borderTopEndRadius":      border.CornerTopEnd,
	"borderBottomStartRadius": border.CornerBottomStart,
	"borderBottomEndRadius":   border.CornerBottomEnd,
}

var widthProps = map[string]border.Edge{
	"borderWidth":       border.EdgeAll,
	"borderLeftWidth":   border.EdgeLeft,
	"borderRightWidth":  border.EdgeRight,
	"borderTopWidth":    border.EdgeTop,
	"borderBottomWidth": border.EdgeBottom,
	"borderStartWidth":  border.EdgeStart,
	"borderEndWidth":    border.EdgeEnd,
}

var colorProps = map[string]border.Edge{
	"borderColor":       border.EdgeAll,
	"borderLeftColor":   border.EdgeLeft,
	"borderRightColor":  border.EdgeRight,
	"borderTopColor":    border.EdgeTop,
	"borderBottomColor": border.EdgeBottom,
	"borderStartColor":  border.EdgeStart,
	"borderEndColor":    border.EdgeEnd,
}

// Manager creates image views and applies properties to them.
type Manager struct {
	opts    imageview.Options
	codec   Codec
	setters map[string]setter
}

// NewManager returns a manager whose views share the loader, units, direction
// and filter quality in opts. opts.Host is ignored; each view gets its own
// host from CreateView.
func NewManager(opts imageview.Options) *Manager {
	m := &Manager{opts: opts, codec: JSONCodec{}}
	m.setters = map[string]setter{
		"source":          setSource,
		"resizeMode":      setResizeMode,
		"elevation":       setElevation,
		"backgroundColor": setBackgroundColor,
	}
	for name, pos := range radiusProps {
		m.setters[name] = radiusSetter(name, pos)
	}
	for name, pos := range widthProps {
		m.setters[name] = widthSetter(name, pos)
	}
	for name, pos := range colorProps {
		m.setters[name] = colorSetter(name, pos)
	}
	return m
}

// CreateView returns a new view attached to host. host may be nil.
func (m *Manager) CreateView(host imageview.Host) *imageview.Surface {
	opts := m.opts
	opts.Host = host
	return imageview.NewSurface(opts)
}

// DropView releases a view, cancelling any in-flight load.
func (m *Manager) DropView(view *imageview.Surface) {
	if view == nil {
		return
	}
	view.Dispose()
}

// Names returns every supported property name in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.setters))
	for name := range m.setters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Set applies one property to view.
func (m *Manager) Set(view *imageview.Surface, name string, value any) error {
	set, ok := m.setters[name]
	if !ok {
		return report(&errors.PropertyError{Prop: name, Value: value, Reason: "unknown property"})
	}
	if err := set(view, value); err != nil {
		var propErr *errors.PropertyError
		if stderrors.As(err, &propErr) {
			return report(propErr)
		}
		return err
	}
	return nil
}

// Update applies props in sorted name order. Failing properties do not stop
// the rest from being applied; their errors are joined.
func (m *Manager) Update(view *imageview.Surface, props map[string]any) error {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		if err := m.Set(view, name, props[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// UpdateJSON decodes a JSON object and applies it with Update.
func (m *Manager) UpdateJSON(view *imageview.Surface, data []byte) error {
	decoded, err := m.codec.Decode(data)
	if err != nil {
		return &errors.Error{Op: "props.Manager.UpdateJSON", Kind: errors.KindInvalidProperty, Err: err}
	}
	if decoded == nil {
		return nil
	}
	props := parseMap(decoded)
	if props == nil {
		return &errors.Error{
			Op:   "props.Manager.UpdateJSON",
			Kind: errors.KindInvalidProperty,
			Err:  fmt.Errorf("expected a JSON object, got %T", decoded),
		}
	}
	return m.Update(view, props)
}

func report(propErr *errors.PropertyError) error {
	err := &errors.Error{Op: "props.Manager.Set", Kind: errors.KindInvalidProperty, Err: propErr}
	errors.Report(err)
	return err
}

func invalid(name string, value any, reason string) error {
	return &errors.PropertyError{Prop: name, Value: value, Reason: reason}
}

// lengthValue converts a radius or width prop. nil clears the slot.
func lengthValue(name string, value any) (border.Value, error) {
	if value == nil {
		return border.Undefined, nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return border.Undefined, invalid(name, value, "expected a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return border.Undefined, invalid(name, value, "expected a finite number")
	}
	return border.Len(f), nil
}

// colorValue converts a color prop. Numbers are packed ARGB; strings are hex
// or color keywords.
func colorValue(name string, value any) (graphics.Color, error) {
	switch v := value.(type) {
	case string:
		c, err := graphics.ParseColor(v)
		if err != nil {
			return 0, invalid(name, value, err.Error())
		}
		return c, nil
	default:
		bits, ok := toColorBits(value)
		if !ok {
			return 0, invalid(name, value, "expected an ARGB number or hex string")
		}
		return graphics.Color(bits), nil
	}
}

func radiusSetter(name string, pos border.Corner) setter {
	return func(view *imageview.Surface, value any) error {
		v, err := lengthValue(name, value)
		if err != nil {
			return err
		}
		view.SetBorderRadius(pos, v)
		return nil
	}
}

func widthSetter(name string, pos border.Edge) setter {
	return func(view *imageview.Surface, value any) error {
		v, err := lengthValue(name, value)
		if err != nil {
			return err
		}
		view.SetBorderWidth(pos, v)
		return nil
	}
}

func colorSetter(name string, pos border.Edge) setter {
	return func(view *imageview.Surface, value any) error {
		if value == nil {
			view.SetBorderColorARGB(pos, nil)
			return nil
		}
		c, err := colorValue(name, value)
		if err != nil {
			return err
		}
		view.SetBorderColorARGB(pos, &c)
		return nil
	}
}

func setBackgroundColor(view *imageview.Surface, value any) error {
	if value == nil {
		view.SetBackgroundColor(graphics.ColorTransparent)
		return nil
	}
	c, err := colorValue("backgroundColor", value)
	if err != nil {
		return err
	}
	view.SetBackgroundColor(c)
	return nil
}

func setElevation(view *imageview.Surface, value any) error {
	if value == nil {
		view.SetElevation(0)
		return nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return invalid("elevation", value, "expected a number")
	}
	if math.IsNaN(f) || f < 0 {
		return invalid("elevation", value, "must be a non-negative number")
	}
	view.SetElevation(f)
	return nil
}

func setResizeMode(view *imageview.Surface, value any) error {
	if value == nil {
		view.SetResizeMode(imageview.ResizeModeCover)
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return invalid("resizeMode", value, "expected a string")
	}
	mode, ok := imageview.ParseResizeMode(s)
	if !ok {
		return invalid("resizeMode", value, "unknown resize mode")
	}
	view.SetResizeMode(mode)
	return nil
}

// setSource applies a {uri, width, height, scale} map. A map without a
// string uri is treated as no image and reported as a malformed source.
func setSource(view *imageview.Surface, value any) error {
	if value == nil {
		view.SetSource(nil)
		return nil
	}
	m := parseMap(value)
	if m == nil {
		return invalid("source", value, "expected an object")
	}
	uri, _ := m["uri"].(string)
	if uri == "" {
		errors.Report(&errors.Error{
			Op:   "props.setSource",
			Kind: errors.KindMalformedSource,
			Err:  fmt.Errorf("source has no uri: %v", value),
		})
		view.SetSource(nil)
		return nil
	}

	src := &imageview.Source{URI: uri}
	width, okW := toInt(m["width"])
	height, okH := toInt(m["height"])
	scale, okS := toFloat64(m["scale"])
	if okW && okH && okS && scale > 0 {
		src.Width = width
		src.Height = height
		src.Scale = scale
		src.HasSize = true
	}
	errors.Logger().Debug("props: source", slog.String("uri", uri), slog.Bool("hasSize", src.HasSize))
	view.SetSource(src)
	return nil
}
