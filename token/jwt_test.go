package token

import (
	"testing"
	"time"
)

func TestJWTRequiresKey(t *testing.T) {
	if _, err := NewJWT(nil, "feedgate"); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestJWTIssueAndParse(t *testing.T) {
	src, err := NewJWT([]byte("test-signing-key"), "feedgate")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	expiry := time.Now().Add(15 * time.Minute)
	pair, err := src.Issue("u1", expiry)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if pair.Access == pair.Refresh {
		t.Fatal("expected distinct tokens")
	}

	access, err := src.Parse(pair.Access)
	if err != nil {
		t.Fatalf("Parse(access) failed: %v", err)
	}
	if access.UID != "u1" || access.Type != "access" {
		t.Fatalf("unexpected access claims: %+v", access)
	}
	if access.ExpiresAt == nil || !access.ExpiresAt.Time.Equal(expiry.Truncate(time.Second)) {
		t.Fatalf("unexpected access expiry: %v", access.ExpiresAt)
	}

	refresh, err := src.Parse(pair.Refresh)
	if err != nil {
		t.Fatalf("Parse(refresh) failed: %v", err)
	}
	if refresh.Type != "refresh" {
		t.Fatalf("unexpected refresh claims: %+v", refresh)
	}
	// Refresh tokens are retired by rotation, never by expiry.
	if refresh.ExpiresAt != nil {
		t.Fatalf("expected no exp claim on refresh token, got %v", refresh.ExpiresAt)
	}
}

func TestJWTIssueIsUnique(t *testing.T) {
	src, err := NewJWT([]byte("test-signing-key"), "feedgate")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	expiry := time.Now().Add(time.Minute)
	a, err := src.Issue("u1", expiry)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	b, err := src.Issue("u1", expiry)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if a.Access == b.Access || a.Refresh == b.Refresh {
		t.Fatal("expected unique tokens per issue")
	}
}

func TestJWTParseRejectsForeignKey(t *testing.T) {
	src, err := NewJWT([]byte("key-one"), "feedgate")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}
	other, err := NewJWT([]byte("key-two"), "feedgate")
	if err != nil {
		t.Fatalf("NewJWT failed: %v", err)
	}

	pair, err := src.Issue("u1", time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := other.Parse(pair.Access); err == nil {
		t.Fatal("expected verification failure under a different key")
	}
}
