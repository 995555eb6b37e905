package imageview

import "image"

// Source describes the image a view should display.
type Source struct {
	// URI locates the image. An empty URI means no image.
	URI string

	// Width, Height and Scale describe the asset's layout size. They are only
	// used when HasSize is set, which requires all three to be present.
	Width   int
	Height  int
	Scale   float64
	HasSize bool
}

// Request returns the load request for the source. When the source carries
// a size, the decoded image is requested at width and height multiplied by
// scale so that center mode shows local assets at their intended size.
func (s *Source) Request() Request {
	req := Request{URI: s.URI}
	if s.HasSize {
		req.TargetWidth = int(float64(s.Width) * s.Scale)
		req.TargetHeight = int(float64(s.Height) * s.Scale)
	}
	return req
}

// Request is one image load issued by a view.
type Request struct {
	URI string

	// TargetWidth and TargetHeight override the decoded size when both are
	// positive.
	TargetWidth  int
	TargetHeight int
}

// HasTargetSize reports whether the request overrides the decoded size.
func (r Request) HasTargetSize() bool {
	return r.TargetWidth > 0 && r.TargetHeight > 0
}

// Target receives decoded images.
type Target interface {
	SetImage(img image.Image)
}

// Loader fetches and decodes images for views. Load must not block; the
// decoded image is delivered later through target.SetImage on the render
// thread. Cancel drops any in-flight load for target and must be safe to call
// when none is pending.
type Loader interface {
	Load(req Request, target Target)
	Cancel(target Target)
}

// scaledSize returns the size an image should be drawn at, honoring the
// request's size override.
func scaledSize(req Request, img image.Image) (width, height float64) {
	if req.HasTargetSize() {
		return float64(req.TargetWidth), float64(req.TargetHeight)
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
