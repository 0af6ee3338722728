package history

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range []struct {
		expr   string
		result float64
	}{
		{"1+1", 2},
		{"2**10", 1024},
		{"sin(0)", 0},
	} {
		if err := s.Append(e.expr, e.result); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Expr != "sin(0)" || entries[1].Expr != "2**10" {
		t.Errorf("wrong order: %q, %q", entries[0].Expr, entries[1].Expr)
	}
	if entries[1].Result != 1024 {
		t.Errorf("result %g, want 1024", entries[1].Result)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Entries survive reopening.
	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	entries, err = s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries after reopen, want 3", len(entries))
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		t.Fatal(err)
	}
	if v != SchemaVersion {
		t.Errorf("schema version %q, want %q", v, SchemaVersion)
	}
	if err := s.setMetadataUnlocked("schema_version", "999"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := Open(path); err == nil {
		t.Error("opening a store with an unknown schema version did not fail")
	}
}
