package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

func paintRing(c graphics.Color) func(graphics.Canvas) {
	return func(canvas graphics.Canvas) {
		oval := graphics.RectFromLTWH(10, 10, 80, 80)
		graphics.DrawArc(canvas, oval, 270, 360, graphics.StrokePaint(graphics.Color(0xFF757575), 8))
		graphics.DrawArc(canvas, oval, 270, 90, graphics.StrokePaint(c, 8))
	}
}

var ringSize = graphics.Size{Width: 100, Height: 100}

func TestRecordOps_DrawPath(t *testing.T) {
	ops := RecordOps(ringSize, paintRing(graphics.ColorRed))
	paths := FilterOps(ops, "drawPath")
	if len(paths) != 2 {
		t.Fatalf("expected 2 drawPath ops, got %d", len(paths))
	}
	if got := paths[0].Param("segments"); got != 4 {
		t.Errorf("full ring segments = %v, want 4", got)
	}
	if got := paths[1].Param("segments"); got != 1 {
		t.Errorf("quarter arc segments = %v, want 1", got)
	}
	if got := paths[1].Param("strokeWidth"); got != 8.0 {
		t.Errorf("strokeWidth = %v, want 8", got)
	}
	// 270° starts at 12 o'clock.
	if x, y := paths[1].Param("startX"), paths[1].Param("startY"); x != 50.0 || y != 10.0 {
		t.Errorf("arc start = (%v, %v), want (50, 10)", x, y)
	}
}

func TestRecordOps_SaveLayerFilter(t *testing.T) {
	ops := RecordOps(ringSize, func(c graphics.Canvas) {
		cf := graphics.ColorFilterTint(graphics.ColorBlue, graphics.BlendModeSrcATop)
		c.SaveLayer(graphics.RectFromLTWH(0, 0, 10, 10), &graphics.Paint{Alpha: 1, ColorFilter: &cf})
		c.Restore()
	})
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if got := ops[0].Param("filterMode"); got != "src_atop" {
		t.Errorf("filterMode = %v, want src_atop", got)
	}
	if got := ops[0].Param("filterColor"); got != "0xFF0000FF" {
		t.Errorf("filterColor = %v, want 0xFF0000FF", got)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	a := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))
	b := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	a := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))
	b := CaptureSnapshot(ringSize, paintRing(graphics.ColorGreen))

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "ring.snapshot.json")

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
	snap := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	first := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	second := CaptureSnapshot(ringSize, paintRing(graphics.ColorBlue))

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := CaptureSnapshot(ringSize, paintRing(graphics.ColorRed))

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
