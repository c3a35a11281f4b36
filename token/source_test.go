package token

import (
	"strings"
	"testing"
	"time"
)

func TestOpaqueIssue(t *testing.T) {
	var src Opaque

	pair, err := src.Issue("u1", time.Now().Add(15*time.Minute))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if !strings.HasPrefix(pair.Access, "access_") {
		t.Fatalf("access token = %q, want access_ prefix", pair.Access)
	}
	if !strings.HasPrefix(pair.Refresh, "refresh_") {
		t.Fatalf("refresh token = %q, want refresh_ prefix", pair.Refresh)
	}
	if pair.Access == pair.Refresh {
		t.Fatal("expected distinct tokens")
	}
}

func TestOpaqueIssueIsUnique(t *testing.T) {
	var src Opaque
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		pair, err := src.Issue("u1", time.Time{})
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if seen[pair.Access] || seen[pair.Refresh] {
			t.Fatal("token collision")
		}
		seen[pair.Access] = true
		seen[pair.Refresh] = true
	}
}
