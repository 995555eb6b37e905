// Package testing provides helpers for asserting what image views paint.
//
// # Display Ops
//
// Record a paint callback and inspect the serialized operations:
//
//	ops := ivtest.Record(size, func(c graphics.Canvas) {
//		surface.Paint(&layout.PaintContext{Canvas: c, Size: size})
//	})
//	names := ivtest.OpNames(ops) // e.g. ["drawRect", "save", "clipPath", ...]
//
// # Snapshot Testing
//
// Compare a paint against a golden file:
//
//	snap := ivtest.CaptureSnapshot(size, paint)
//	snap.MatchesFile(t, "testdata/rounded.snapshot.json")
//
// Update snapshots with:
//
//	IMAGEVIEW_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ivtest "github.com/go-drift/imageview/pkg/testing"
package testing
