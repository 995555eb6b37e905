package fileload

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/imageview"
)

type target struct {
	images []image.Image
}

func (t *target) SetImage(img image.Image) { t.images = append(t.images, img) }

type captureHandler struct {
	errs []*errors.Error
}

func (h *captureHandler) HandleError(err *errors.Error)  { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(*errors.PanicError) {}

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDeliversOnFlush(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 3)

	l := New(dir)
	tg := &target{}
	l.Load(imageview.Request{URI: "a.png"}, tg)
	if len(tg.images) != 0 {
		t.Fatal("image delivered before Flush")
	}
	if n := l.Flush(); n != 1 {
		t.Fatalf("Flush() = %d, want 1", n)
	}
	if len(tg.images) != 1 {
		t.Fatalf("delivered %d images, want 1", len(tg.images))
	}
	if got := tg.images[0].Bounds().Size(); got != image.Pt(4, 3) {
		t.Errorf("size = %v, want (4,3)", got)
	}
}

func TestLoadResizesToTarget(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 4)

	l := New("")
	tg := &target{}
	l.Load(imageview.Request{URI: "file://" + filepath.Join(dir, "a.png"), TargetWidth: 8, TargetHeight: 2}, tg)
	l.Flush()
	if len(tg.images) != 1 {
		t.Fatalf("delivered %d images, want 1", len(tg.images))
	}
	if got := tg.images[0].Bounds().Size(); got != image.Pt(8, 2) {
		t.Errorf("size = %v, want (8,2)", got)
	}
}

func TestCancelDropsLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2)

	l := New(dir)
	tg := &target{}
	l.Load(imageview.Request{URI: "a.png"}, tg)
	l.Cancel(tg)
	if n := l.Flush(); n != 0 {
		t.Errorf("Flush() = %d after cancel, want 0", n)
	}
	if len(tg.images) != 0 {
		t.Errorf("delivered %d images after cancel, want 0", len(tg.images))
	}
	l.Cancel(tg)
}

func TestReloadKeepsLatest(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2)
	writePNG(t, dir, "b.png", 5, 5)

	l := New(dir)
	tg := &target{}
	l.Load(imageview.Request{URI: "a.png"}, tg)
	l.Cancel(tg)
	l.Load(imageview.Request{URI: "b.png"}, tg)
	l.Flush()
	if len(tg.images) != 1 {
		t.Fatalf("delivered %d images, want 1", len(tg.images))
	}
	if got := tg.images[0].Bounds().Dx(); got != 5 {
		t.Errorf("width = %d, want 5", got)
	}
}

func TestLoaderForgetsFinishedTargets(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2)

	h := &captureHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	l := New(dir)
	for i := 0; i < 10; i++ {
		tg := &target{}
		l.Load(imageview.Request{URI: "a.png"}, tg)
		if i%2 == 0 {
			l.Cancel(tg)
		}
	}
	l.Load(imageview.Request{URI: "missing.png"}, &target{})
	if n := l.Flush(); n != 5 {
		t.Errorf("Flush() = %d, want 5", n)
	}
	if len(l.inflight) != 0 || len(l.pending) != 0 {
		t.Errorf("loader still tracks %d in-flight and %d pending targets", len(l.inflight), len(l.pending))
	}
	if len(h.errs) != 1 {
		t.Errorf("reported %d errors, want 1", len(h.errs))
	}
}

func TestMissingFileReportsLoadError(t *testing.T) {
	h := &captureHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	l := New(t.TempDir())
	tg := &target{}
	l.Load(imageview.Request{URI: "missing.png"}, tg)
	l.Flush()
	if len(tg.images) != 0 {
		t.Errorf("delivered %d images, want 0", len(tg.images))
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindLoad {
		t.Errorf("reported %+v, want one KindLoad error", h.errs)
	}
}

func TestPath(t *testing.T) {
	l := New("/assets")
	tests := []struct {
		uri  string
		want string
	}{
		{"a.png", filepath.Join("/assets", "a.png")},
		{"file:///tmp/b.png", "/tmp/b.png"},
		{"/abs/c.png", "/abs/c.png"},
	}
	for _, tt := range tests {
		if got := l.Path(tt.uri); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
