package themefile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "theme"))

	value, present, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if present || value != "" {
		t.Errorf("missing file loaded as (%q, %v), want absent", value, present)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "theme")
	store := New(path)

	if err := store.Save("dark"); err != nil {
		t.Fatalf("save: %v", err)
	}

	value, present, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !present || value != "dark" {
		t.Errorf("load = (%q, %v), want (dark, true)", value, present)
	}

	// The stored format is the literal value plus a trailing newline.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(raw) != "dark\n" {
		t.Errorf("file contents = %q, want %q", raw, "dark\n")
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "theme"))

	if err := store.Save("dark"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("light"); err != nil {
		t.Fatal(err)
	}

	value, _, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if value != "light" {
		t.Errorf("value = %q, want light", value)
	}
}
