package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "updates.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseUpdateFileBasic(t *testing.T) {
	path := writeTempFile(t, "# a comment\n\nadd 1 2 3.5\ndelete 2 3\nadd 4 5\n")
	updates, err := ParseUpdateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []EdgeUpdate{
		{Op: OpAdd, Src: 1, Dst: 2, Weight: 3.5},
		{Op: OpDelete, Src: 2, Dst: 3, Weight: 1},
		{Op: OpAdd, Src: 4, Dst: 5, Weight: 1},
	}
	if len(updates) != len(want) {
		t.Fatalf("got %d updates, want %d: %+v", len(updates), len(want), updates)
	}
	for i, u := range updates {
		if u != want[i] {
			t.Errorf("update %d = %+v, want %+v", i, u, want[i])
		}
	}
}

func TestParseUpdateFileAbbreviations(t *testing.T) {
	path := writeTempFile(t, "a 1 2\nd 1 2\ndel 3 4\n")
	updates, err := ParseUpdateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(updates) != 3 {
		t.Fatalf("got %d updates, want 3", len(updates))
	}
	if updates[0].Op != OpAdd || updates[1].Op != OpDelete || updates[2].Op != OpDelete {
		t.Errorf("op mismatch: %+v", updates)
	}
}

func TestParseUpdateFileBadOp(t *testing.T) {
	path := writeTempFile(t, "frob 1 2\n")
	if _, err := ParseUpdateFile(path); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestParseUpdateFileTooFewFields(t *testing.T) {
	path := writeTempFile(t, "add 1\n")
	if _, err := ParseUpdateFile(path); err == nil {
		t.Error("expected error for too few fields")
	}
}

func TestParseUpdateFileBadGid(t *testing.T) {
	path := writeTempFile(t, "add x 2\n")
	if _, err := ParseUpdateFile(path); err == nil {
		t.Error("expected error for non-numeric src gid")
	}
}

func TestParseUpdateFileMissing(t *testing.T) {
	if _, err := ParseUpdateFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
