package feedgate

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// seedUser registers an account and replaces its permissions.
func seedUser(t *testing.T, svc *Service, name, email string, perms []string) *User {
	t.Helper()

	ctx := context.Background()
	user, err := svc.Signup(ctx, name, email, "password123")
	if err != nil {
		t.Fatalf("Signup(%s) failed: %v", email, err)
	}
	if perms != nil {
		user, err = svc.UpdatePermissions(ctx, user.ID, perms)
		if err != nil {
			t.Fatalf("UpdatePermissions(%s) failed: %v", email, err)
		}
	}
	return user
}

func TestAddCommentSnapshotsAuthorName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	writer := seedUser(t, svc, "Writer User", "writer@example.com", []string{"read", "write"})

	comment, err := svc.AddComment(ctx, writer.ID, "hello feed")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.UserID != writer.ID || comment.UserName != "Writer User" {
		t.Fatalf("unexpected comment attribution: %+v", comment)
	}
	if comment.ID == "" {
		t.Fatal("expected a generated comment ID")
	}
}

func TestAddCommentRequiresWritePermission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reader := seedUser(t, svc, "Read-Only User", "reader@example.com", nil)

	if _, err := svc.AddComment(ctx, reader.ID, "should not post"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	comments, err := svc.GetComments(ctx)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected empty feed, got %d comments", len(comments))
	}
}

func TestAddCommentUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.AddComment(context.Background(), "ghost", "boo"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddCommentContentBounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	writer := seedUser(t, svc, "Writer", "writer@example.com", []string{"read", "write"})

	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"one rune", "a", false},
		{"max runes", strings.Repeat("x", 500), false},
		{"over max", strings.Repeat("x", 501), true},
		{"multibyte counts runes not bytes", strings.Repeat("é", 500), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddComment(ctx, writer.ID, tc.content)
			if tc.wantErr && !errors.Is(err, ErrInvalidContent) {
				t.Fatalf("expected ErrInvalidContent, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("AddComment failed: %v", err)
			}
		})
	}
}

func TestGetCommentsInsertionOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	writer := seedUser(t, svc, "Writer", "writer@example.com", []string{"read", "write"})

	for _, content := range []string{"first", "second", "third"} {
		if _, err := svc.AddComment(ctx, writer.ID, content); err != nil {
			t.Fatalf("AddComment(%s) failed: %v", content, err)
		}
	}

	comments, err := svc.GetComments(ctx)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Content != want {
			t.Fatalf("comments[%d] = %q, want %q", i, comments[i].Content, want)
		}
	}
}

func TestRemoveCommentIgnoresAuthorship(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	writer := seedUser(t, svc, "Writer", "writer@example.com", []string{"read", "write"})
	admin := seedUser(t, svc, "Admin", "admin@example.com", []string{"read", "write", "delete"})

	comment, err := svc.AddComment(ctx, writer.ID, "mine")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	// Delete permission is the only gate; the admin never wrote this.
	removed, err := svc.RemoveComment(ctx, admin.ID, comment.ID)
	if err != nil || !removed {
		t.Fatalf("RemoveComment: removed=%v err=%v", removed, err)
	}

	comments, _ := svc.GetComments(ctx)
	if len(comments) != 0 {
		t.Fatalf("expected empty feed, got %d comments", len(comments))
	}
}

func TestRemoveCommentRequiresDeletePermission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	writer := seedUser(t, svc, "Writer", "writer@example.com", []string{"read", "write"})

	comment, err := svc.AddComment(ctx, writer.ID, "mine")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	// Even the author cannot delete without the delete permission.
	if _, err := svc.RemoveComment(ctx, writer.ID, comment.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestRemoveCommentUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, svc, "Admin", "admin@example.com", []string{"read", "delete"})

	removed, err := svc.RemoveComment(ctx, admin.ID, "no-such-comment")
	if err != nil {
		t.Fatalf("RemoveComment failed: %v", err)
	}
	if removed {
		t.Fatal("expected no removal for unknown comment ID")
	}
}
