package feedgate

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/feedgate/feedgate/permission"
)

// AddComment posts a comment on behalf of userID. The author must hold
// the write permission, and the content length (in runes) must fall
// within the configured bounds. The stored comment snapshots the
// author's display name at posting time.
func (s *Service) AddComment(ctx context.Context, userID, content string) (*Comment, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}

	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Permissions.Has(permission.Write) {
		s.metricInc(MetricCommentRejected)
		s.emitAudit(ctx, auditEventCommentAdd, false, userID, ErrPermissionDenied, nil)
		return nil, ErrPermissionDenied
	}

	if n := utf8.RuneCountInString(content); n < s.config.Comment.MinLength || n > s.config.Comment.MaxLength {
		s.metricInc(MetricCommentRejected)
		s.emitAudit(ctx, auditEventCommentAdd, false, userID, ErrInvalidContent, func() map[string]string {
			return map[string]string{
				"length": strconv.Itoa(n),
			}
		})
		return nil, ErrInvalidContent
	}

	comment, err := s.store.CreateComment(ctx, content, *user)
	if err != nil {
		return nil, err
	}

	s.metricInc(MetricCommentAdded)
	s.emitAudit(ctx, auditEventCommentAdd, true, userID, nil, func() map[string]string {
		return map[string]string{
			"comment_id": comment.ID,
		}
	})

	return comment, nil
}

// RemoveComment deletes the comment with the given id on behalf of
// userID. The caller must hold the delete permission; authorship is not
// consulted, so any delete-permitted user may remove any comment. The
// bool reports whether a comment was actually removed.
func (s *Service) RemoveComment(ctx context.Context, userID, commentID string) (bool, error) {
	if s == nil {
		return false, ErrServiceNotReady
	}

	if !s.HasPermission(ctx, userID, permission.Delete) {
		s.metricInc(MetricCommentDeleteDenied)
		s.emitAudit(ctx, auditEventCommentDelete, false, userID, ErrPermissionDenied, func() map[string]string {
			return map[string]string{
				"comment_id": commentID,
			}
		})
		return false, ErrPermissionDenied
	}

	removed, err := s.store.DeleteComment(ctx, commentID)
	if err != nil {
		return false, err
	}

	if removed {
		s.metricInc(MetricCommentDeleted)
		s.emitAudit(ctx, auditEventCommentDelete, true, userID, nil, func() map[string]string {
			return map[string]string{
				"comment_id": commentID,
			}
		})
	}

	return removed, nil
}

// GetComments returns all comments in insertion order.
func (s *Service) GetComments(ctx context.Context) ([]Comment, error) {
	if s == nil {
		return nil, ErrServiceNotReady
	}
	return s.store.Comments(ctx), nil
}
