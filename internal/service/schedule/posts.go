package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/timeline"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

// ListBuckets returns the user's posts bucketed by attributed month.
func (s *Service) ListBuckets(ctx context.Context) (domain.BucketSet[domain.Post], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BucketSet[domain.Post]{}, domain.ErrUnauthorized
	}

	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return domain.BucketSet[domain.Post]{}, fmt.Errorf("list posts: %w", err)
	}
	return timeline.Bucket(posts, domain.Post.Attribution, s.now()), nil
}

// Window returns the scheduling window of a stored post.
func (s *Service) Window(ctx context.Context, postID uuid.UUID) (Window, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Window{}, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, userID, postID)
	if err != nil {
		return Window{}, fmt.Errorf("get post: %w", err)
	}
	return Compute(*post, s.now(), s.loc), nil
}

// Schedule sets the publication time of a post after checking it against
// the post's window.
func (s *Service) Schedule(ctx context.Context, input ScheduleInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, userID, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Published {
		return nil, fmt.Errorf("post already published: %w", domain.ErrConflict)
	}
	if err := ValidateCandidate(*post, input.At, s.now(), s.loc, s.minLead); err != nil {
		return nil, err
	}

	at := input.At.UTC()
	updated, err := s.posts.UpdateSchedule(ctx, userID, input.PostID, &at, domain.PostStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("schedule post: %w", err)
	}

	s.log.InfoContext(ctx, "post scheduled",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.Time("scheduled_date", at),
	)
	return updated, nil
}

// Unschedule clears the publication time of a post and returns it to draft.
func (s *Service) Unschedule(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Published {
		return nil, fmt.Errorf("post already published: %w", domain.ErrConflict)
	}
	if !post.IsScheduled() {
		return post, nil
	}

	updated, err := s.posts.UpdateSchedule(ctx, userID, postID, nil, domain.PostStatusDraft)
	if err != nil {
		return nil, fmt.Errorf("unschedule post: %w", err)
	}

	s.log.InfoContext(ctx, "post unscheduled",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
	)
	return updated, nil
}

// SetValidated marks a post as reviewed (or not) by the user.
func (s *Service) SetValidated(ctx context.Context, postID uuid.UUID, validated bool) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.posts.SetValidated(ctx, userID, postID, validated)
	if err != nil {
		return nil, fmt.Errorf("set validated: %w", err)
	}
	return updated, nil
}

// Publish marks a post as published.
func (s *Service) Publish(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Published {
		return nil, fmt.Errorf("post already published: %w", domain.ErrConflict)
	}

	updated, err := s.posts.MarkPublished(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}

	s.log.InfoContext(ctx, "post published",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
	)
	return updated, nil
}

// DeletePost removes a post.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.posts.Delete(ctx, userID, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
	)
	return nil
}

// GenerateForMonth asks the external generator for drafts and stores them
// attributed to the requested month.
func (s *Service) GenerateForMonth(ctx context.Context, input GenerateInput) ([]domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	month, err := input.Validate()
	if err != nil {
		return nil, err
	}

	proposals, err := s.generator.Generate(ctx, month, input.Count)
	if err != nil {
		var ext *domain.ExternalCallError
		if errors.As(err, &ext) {
			return nil, err
		}
		return nil, domain.NewExternalCallError("generate", err)
	}

	now := s.clock.Now().UTC()
	drafts := make([]domain.Post, 0, len(proposals))
	for _, p := range proposals {
		drafts = append(drafts, domain.Post{
			ID:              uuid.New(),
			UserID:          userID,
			Title:           p.Title,
			Text:            p.Text,
			Hashtags:        domain.NormalizeHashtags(p.Hashtags),
			AttributedMonth: month.String(),
			Status:          domain.PostStatusDraft,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if len(drafts) == 0 {
		return []domain.Post{}, nil
	}

	created, err := s.posts.CreateBatch(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("store generated posts: %w", err)
	}

	s.log.InfoContext(ctx, "posts generated",
		slog.String("user_id", userID.String()),
		slog.String("month", month.String()),
		slog.Int("count", len(created)),
	)
	return created, nil
}
