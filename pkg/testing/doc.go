// Package testing provides test helpers for widgets drawn on a
// graphics.Canvas.
//
// # Recording Draw Calls
//
// Capture what a paint function draws as a flat list of operations:
//
//	ops := cptest.RecordOps(graphics.Size{Width: 200, Height: 200}, func(c graphics.Canvas) {
//	    progress.Render(c, view.Frame())
//	})
//
// # Snapshot Testing
//
// Compare the recorded operations against a golden file:
//
//	snap := cptest.CaptureSnapshot(size, paint)
//	snap.MatchesFile(t, "testdata/half.snapshot.json")
//
// Update snapshots with:
//
//	CIRCLEPROGRESS_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	clk := cptest.NewFakeClock()
//	sched := animation.NewScheduler(clk)
//	cptest.Pump(clk, sched, 40*time.Millisecond, 10)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import cptest "github.com/go-drift/circleprogress/pkg/testing"
package testing
