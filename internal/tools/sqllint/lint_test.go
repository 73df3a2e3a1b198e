package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGo(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintFlagsMissingAndDuplicateMarkers(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "a.go", "package q\n\nconst QOk = `--sql d7a87c80-77a8-4a8c-9b8b-390680caad13\nselect 1;`\n\nconst QBare = `select 2;`\n")
	writeGo(t, dir, "b.go", "package q\n\nconst QDup = `--sql d7a87c80-77a8-4a8c-9b8b-390680caad13\ndelete from animals;`\n\nconst Label = \"plain text\"\n")

	l := newLinter()
	if err := l.lintPath(dir); err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(l.violations) != 2 {
		t.Fatalf("violations = %d, want 2: %+v", len(l.violations), l.violations)
	}
	var names []string
	for _, v := range l.violations {
		names = append(names, v.name)
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "QBare") || !strings.Contains(joined, "QDup") {
		t.Fatalf("unexpected violations: %s", joined)
	}
}

func TestLintRepositoryQueries(t *testing.T) {
	l := newLinter()
	if err := l.lintPath(filepath.Join("..", "..", "sqlinline")); err != nil {
		t.Fatalf("lint: %v", err)
	}
	for _, v := range l.violations {
		t.Errorf("%s:%d %s (%s)", v.file, v.line, v.message, v.name)
	}
	if len(l.seen) == 0 {
		t.Fatalf("no markers found")
	}
}
