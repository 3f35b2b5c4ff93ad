package utils

import (
	"path/filepath"
	"testing"
)

func TestLimitStr(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a dragon over a frozen city", 8, "a dragon..."},
		{"ñandú corriendo", 5, "ñandú..."},
	}
	for _, tt := range tests {
		if got := LimitStr(tt.in, tt.n); got != tt.want {
			t.Errorf("LimitStr(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "projects.json")
	in := map[string][]string{"noir": {"Elias Vance", "Mara"}}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists(path) {
		t.Fatal("file should exist after save")
	}
	out, err := Load[map[string][]string](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out["noir"]) != 2 || out["noir"][1] != "Mara" {
		t.Errorf("unexpected value %v", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[map[string]string](filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDiffWordsChangeStats(t *testing.T) {
	deltas := DiffWords("The detective walks slowly.", "The detective runs slowly.")
	added, removed := ChangeStats(deltas)
	if added != 1 || removed != 1 {
		t.Errorf("added=%d removed=%d, want 1/1 (%v)", added, removed, deltas)
	}

	added, removed = ChangeStats(DiffWords("same text", "same text"))
	if added != 0 || removed != 0 {
		t.Errorf("identical texts should produce no changes, got %d/%d", added, removed)
	}
}
