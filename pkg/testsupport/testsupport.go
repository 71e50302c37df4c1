package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RegenerateEnv names the environment variable that switches Golden into
// rewrite mode. Run MAPGEN_REGEN_GOLDEN=1 go test ./... after an intended
// output change, then inspect the diff of the regenerated files.
const RegenerateEnv = "MAPGEN_REGEN_GOLDEN"

// Context hands tests a plain background context.
func Context() context.Context {
	return context.Background()
}

// Diff reports the cmp difference between two values, empty when equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput invokes fn with a scratch buffer and hands back the
// returned string next to the buffered copy. Engines are expected to produce
// both, so tests assert the pair in one shot.
func CaptureTemplateOutput(t *testing.T, fn func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var sink bytes.Buffer
	returned, err := fn(&sink)
	if err != nil {
		t.Fatalf("capture template output: %v", err)
	}
	return returned, sink.String()
}

// Golden compares got against the stored file at path, or rewrites the file
// when RegenerateEnv is set.
func Golden(t *testing.T, path string, got string) {
	t.Helper()

	if os.Getenv(RegenerateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden %s: create dir: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("golden %s: rewrite: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden %s: %v (set %s=1 to create it)", path, err, RegenerateEnv)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}
