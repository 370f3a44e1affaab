package compmatch

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateEnv names the environment variable that makes MatchSnapshot write
// golden files instead of comparing against them.
const UpdateEnv = "COMPMATCH_UPDATE"

// HTMLer is anything that renders to HTML, such as a *component.Wrapper.
type HTMLer interface {
	HTML() string
}

// MatchSnapshot compares the rendered HTML of target against a golden file
// stored in testdata/<sanitized-test-name>-<hash>/<sanitized-name>.html.
//
// Set COMPMATCH_UPDATE=1 to create or update golden files.
func MatchSnapshot(t testing.TB, target HTMLer, name string) {
	t.Helper()

	// Build snapshot path.
	dir := snapshotDir(t)
	path := filepath.Join(dir, sanitizeName(name)+".html")

	// Normalize rendered markup for stable diffs:
	// - Trim trailing whitespace on each line
	// - Remove trailing blank lines
	// - End with a single newline
	content := normalizeForSnapshot(target.HTML())

	if shouldUpdate() {
		// Create/update golden file.
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("compmatch: snapshot: failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("compmatch: snapshot: failed to write golden file: %v", err)
		}
		return
	}

	// Read and compare.
	golden, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("compmatch: snapshot: golden file not found: %s\nRun with %s=1 to create it.\n\nActual HTML:\n%s", path, UpdateEnv, content)
		}
		t.Fatalf("compmatch: snapshot: failed to read golden file: %v", err)
	}

	if d := cmp.Diff(string(golden), content); d != "" {
		t.Fatalf("compmatch: snapshot: mismatch for %q\nGolden file: %s\nRun with %s=1 to update.\n\n(-golden +actual):\n%s",
			name, path, UpdateEnv, d)
	}
}

// snapshotDir returns testdata/<sanitized-test-name>-<hash>/ for the
// current test. The hash keeps names that sanitize alike apart.
func snapshotDir(t testing.TB) string {
	t.Helper()

	fullName := t.Name()

	// Short stable hash for uniqueness.
	h := sha256.Sum256([]byte(fullName))
	return filepath.Join("testdata", sanitizeName(fullName)+"-"+hex.EncodeToString(h[:4]))
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeName maps a test or snapshot name to a safe path element.
func sanitizeName(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "snapshot"
	}
	return s
}

// normalizeForSnapshot trims trailing spaces on each line and trailing
// blank lines, and ends the content with a single newline.
func normalizeForSnapshot(raw string) string {
	lines := strings.Split(raw, "\n")

	// Trim trailing whitespace on each line.
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}

	// Remove trailing blank lines.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	// End with a single newline.
	return strings.Join(lines, "\n") + "\n"
}

// shouldUpdate returns true if COMPMATCH_UPDATE is set to a truthy value.
func shouldUpdate() bool {
	v := os.Getenv(UpdateEnv)
	return v == "1" || v == "true" || v == "yes"
}
