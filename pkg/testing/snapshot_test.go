package testing

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-drift/imageview/pkg/graphics"
)

func paintBox(color graphics.Color) func(graphics.Canvas) {
	return func(c graphics.Canvas) {
		c.Save()
		c.ClipRRect(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 50, 50), graphics.CircularRadius(8)))
		c.DrawRect(graphics.RectFromLTWH(0, 0, 50, 50), graphics.FillPaint(color))
		c.Restore()
	}
}

func TestRecord_OpOrder(t *testing.T) {
	ops := Record(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed))
	got := OpNames(ops)
	want := []string{"save", "clipRRect", "drawRect", "restore"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OpNames = %v, want %v", got, want)
	}
	if color := ops[2].Params["color"]; color != "0xFFFF0000" {
		t.Errorf("drawRect color = %v, want 0xFFFF0000", color)
	}
}

func TestRecord_ClipPathParams(t *testing.T) {
	path := graphics.NewPath()
	path.AddRect(graphics.RectFromLTWH(0, 0, 10, 10))
	ops := Record(graphics.Size{Width: 10, Height: 10}, func(c graphics.Canvas) {
		c.ClipPath(path, graphics.ClipOpDifference, true)
	})
	if len(ops) != 1 {
		t.Fatalf("len(ops) = %d, want 1", len(ops))
	}
	if op := ops[0].Params["op"]; op != "difference" {
		t.Errorf("op = %v, want difference", op)
	}
	if n := ops[0].Params["commands"]; n != 5 {
		t.Errorf("commands = %v, want 5", n)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	size := graphics.Size{Width: 50, Height: 50}
	a := CaptureSnapshot(size, paintBox(graphics.ColorRed))
	b := CaptureSnapshot(size, paintBox(graphics.ColorRed))

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	size := graphics.Size{Width: 50, Height: 50}
	a := CaptureSnapshot(size, paintBox(graphics.ColorRed))
	b := CaptureSnapshot(size, paintBox(graphics.ColorGreen))

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(graphics.Size{Width: 80, Height: 40}, paintBox(graphics.ColorBlue))

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "box.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed))

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	first := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorRed))

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	second := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintBox(graphics.ColorBlue))

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := CaptureSnapshot(graphics.Size{Width: 60, Height: 30}, paintBox(graphics.ColorRed))

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
