package aliases

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsEmptyMap(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}

	m, err = Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestLoadParsesAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, []byte("passengers: _pax\nriders: _pax\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m["passengers"] != "_pax" || m["riders"] != "_pax" {
		t.Errorf("Load = %v", m)
	}
}

func TestLoadRejectsNonCustomToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, []byte("metres: m\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-\"_name\" target")
	}
}

func TestResolveSubstitutesWholeWords(t *testing.T) {
	m := Map{"passengers": "_pax"}
	if got := m.Resolve("passengers"); got != "_pax" {
		t.Errorf("Resolve = %q", got)
	}
	if got := m.Resolve("km/h"); got != "km/h" {
		t.Errorf("Resolve should leave non-alias expressions untouched, got %q", got)
	}
}

func TestResolveEmptyMapIsNoop(t *testing.T) {
	var m Map
	if got := m.Resolve("anything goes here"); got != "anything goes here" {
		t.Errorf("Resolve = %q", got)
	}
}
