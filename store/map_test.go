package store

import (
	"context"
	"testing"
)

func TestMapStoreLookup(t *testing.T) {
	s := NewMapStore(map[string]string{
		"console.admin.password": "secret",
	})

	val, ok, err := s.Lookup(context.Background(), "console.admin.password")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || val != "secret" {
		t.Fatalf("Lookup = (%q, %v), want (\"secret\", true)", val, ok)
	}

	_, ok, err = s.Lookup(context.Background(), "console.admin.shash")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if ok {
		t.Fatal("expected absent key to report ok=false")
	}
}

func TestMapStoreCopiesInput(t *testing.T) {
	props := map[string]string{"k": "v1"}
	s := NewMapStore(props)
	props["k"] = "v2"

	val, _, err := s.Lookup(context.Background(), "k")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if val != "v1" {
		t.Fatalf("Lookup = %q, want snapshot value \"v1\"", val)
	}
}

func TestMapStoreSetDelete(t *testing.T) {
	s := NewMapStore(nil)
	s.Set("realm.b64", "cHc=")

	val, ok, err := s.Lookup(context.Background(), "realm.b64")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || val != "cHc=" {
		t.Fatalf("Lookup = (%q, %v) after Set", val, ok)
	}

	s.Delete("realm.b64")
	if _, ok, _ := s.Lookup(context.Background(), "realm.b64"); ok {
		t.Fatal("expected key to be gone after Delete")
	}

	// Deleting again must not panic.
	s.Delete("realm.b64")
}
