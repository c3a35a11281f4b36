package permission

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	s, err := Parse([]string{"read", "write"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !s.Has(Read) || !s.Has(Write) || s.Has(Delete) {
		t.Fatalf("unexpected set: %v", s)
	}

	if _, err := Parse([]string{"read", "admin"}); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}

	empty, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if len(empty.List()) != 0 {
		t.Fatal("expected empty set")
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	if _, err := Parse([]string{"Read"}); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown for cased value, got %v", err)
	}
}

func TestDefaultIsReadOnly(t *testing.T) {
	d := Default()
	if !d.Has(Read) || d.Has(Write) || d.Has(Delete) {
		t.Fatalf("unexpected default set: %v", d)
	}
}

func TestSetValid(t *testing.T) {
	if !MustSet(Read, Write, Delete).Valid() {
		t.Fatal("full set should be valid")
	}
	if Set(1 << 5).Valid() {
		t.Fatal("unknown bit should be invalid")
	}
	var zero Set
	if !zero.Valid() {
		t.Fatal("empty set should be valid")
	}
}

func TestStringsCanonicalOrder(t *testing.T) {
	s := MustSet(Delete, Read)
	got := s.String()
	if got != "read,delete" {
		t.Fatalf("String() = %q, want %q", got, "read,delete")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MustSet(Read, Delete))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["read","delete"]` {
		t.Fatalf("Marshal = %s", data)
	}

	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !s.Has(Read) || s.Has(Write) || !s.Has(Delete) {
		t.Fatalf("unexpected set after round trip: %v", s)
	}

	if err := json.Unmarshal([]byte(`["admin"]`), &s); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}
