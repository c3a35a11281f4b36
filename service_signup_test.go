package feedgate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/feedgate/feedgate/permission"
)

func TestSignupCreatesUserWithReadPermission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected a generated user ID")
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user record: %+v", user)
	}
	if !user.Permissions.Has(permission.Read) {
		t.Fatal("expected new account to hold read permission")
	}
	if user.Permissions.Has(permission.Write) || user.Permissions.Has(permission.Delete) {
		t.Fatal("expected new account to hold only read permission")
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Fatal("expected stored credential to be a hash")
	}
	if !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", user.PasswordHash)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("first Signup failed: %v", err)
	}

	_, err := svc.Signup(ctx, "Other Alice", "alice@example.com", "different-pass")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	users, err := svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after duplicate signup, got %d", len(users))
	}
}

func TestSignupConcurrentDuplicateSingleWinner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Signup(ctx, "Racer", "race@example.com", "password123")
		}(i)
	}
	wg.Wait()

	created := 0
	for i, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrDuplicateEmail):
		default:
			t.Fatalf("signup %d: unexpected error %v", i, err)
		}
	}
	if created != 1 {
		t.Fatalf("%d signups succeeded, want exactly 1", created)
	}

	users, err := svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after racing signups, got %d", len(users))
	}
}

func TestSignupEmailIsCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if _, err := svc.Signup(ctx, "Loud Alice", "ALICE@example.com", "password123"); err != nil {
		t.Fatalf("expected differently-cased email to register, got %v", err)
	}
}
