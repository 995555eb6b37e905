// Package fileload implements an image loader backed by the local file
// system.
package fileload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/imageview"
)

// Loader decodes images from disk on background goroutines and hands them
// to their targets when Flush is called, so delivery happens on the caller's
// thread.
//
// URIs may be plain paths or file:// URIs. Relative paths resolve against
// Root.
type Loader struct {
	Root string

	mu       sync.Mutex
	wg       sync.WaitGroup
	inflight map[imageview.Target]*load
	pending  map[imageview.Target]image.Image
}

// load identifies one Load call. A target's entry is replaced on reload and
// removed once the load finishes or is cancelled.
type load struct {
	req imageview.Request
}

var _ imageview.Loader = (*Loader)(nil)

// New returns a loader resolving relative paths against root.
func New(root string) *Loader {
	return &Loader{
		Root:     root,
		inflight: make(map[imageview.Target]*load),
		pending:  make(map[imageview.Target]image.Image),
	}
}

// Load starts decoding req.URI. It does not block.
func (l *Loader) Load(req imageview.Request, target imageview.Target) {
	ld := &load{req: req}
	l.mu.Lock()
	l.inflight[target] = ld
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.decode(ld.req)

		l.mu.Lock()
		current := l.inflight[target] == ld
		if current {
			delete(l.inflight, target)
			if err == nil {
				l.pending[target] = img
			}
		}
		l.mu.Unlock()

		if err != nil {
			errors.Report(&errors.Error{Op: "fileload.Load", Kind: errors.KindLoad, Err: err})
		}
	}()
}

// Cancel drops any in-flight or undelivered load for target.
func (l *Loader) Cancel(target imageview.Target) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inflight, target)
	delete(l.pending, target)
}

// Flush waits for in-flight loads and delivers every decoded image that was
// not cancelled. It returns the number of images delivered.
func (l *Loader) Flush() int {
	l.wg.Wait()

	l.mu.Lock()
	ready := l.pending
	l.pending = make(map[imageview.Target]image.Image)
	l.mu.Unlock()

	for target, img := range ready {
		target.SetImage(img)
	}
	return len(ready)
}

// Path resolves uri to a file path.
func (l *Loader) Path(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if !filepath.IsAbs(path) && l.Root != "" {
		path = filepath.Join(l.Root, path)
	}
	return path
}

func (l *Loader) decode(req imageview.Request) (image.Image, error) {
	img, err := Open(l.Path(req.URI))
	if err != nil {
		return nil, err
	}
	if req.HasTargetSize() {
		img = Resize(img, req.TargetWidth, req.TargetHeight)
	}
	return img, nil
}

// Open decodes an image file. png, jpeg, gif, bmp, tiff and webp are
// supported.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to width x height with Catmull-Rom resampling.
func Resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
