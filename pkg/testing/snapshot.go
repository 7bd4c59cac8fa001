package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "CIRCLEPROGRESS_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the display operations issued for one frame.
type Snapshot struct {
	Size       [2]float64  `json:"size"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// CaptureSnapshot records paint into a display list and serializes it.
func CaptureSnapshot(size graphics.Size, paint func(graphics.Canvas)) *Snapshot {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(size)
	paint(canvas)
	return SnapshotOf(recorder.EndRecording())
}

// SnapshotOf serializes an already recorded display list.
func SnapshotOf(dl *graphics.DisplayList) *Snapshot {
	size := dl.Size()
	return &Snapshot{
		Size:       [2]float64{round2(size.Width), round2(size.Height)},
		DisplayOps: serializeDisplayList(dl),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When the update variable
// is set to 1, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}

	return buf.String()
}
