package timeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

// ListBuckets returns the user's library bucketed around the current month,
// with carousel members collapsed inside each bucket.
func (s *Service) ListBuckets(ctx context.Context) (domain.BucketSet[domain.LibraryEntry], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BucketSet[domain.LibraryEntry]{}, domain.ErrUnauthorized
	}

	items, err := s.content.ListByUser(ctx, userID)
	if err != nil {
		return domain.BucketSet[domain.LibraryEntry]{}, fmt.Errorf("list content items: %w", err)
	}

	return BucketLibrary(items, s.now()), nil
}

// BucketLibrary buckets items around ref and groups carousels per bucket.
func BucketLibrary(items []domain.ContentItem, ref time.Time) domain.BucketSet[domain.LibraryEntry] {
	raw := Bucket(items, domain.ContentItem.Attribution, ref)

	out := domain.BucketSet[domain.LibraryEntry]{
		CurrentAndFuture: make([]*domain.MonthBucket[domain.LibraryEntry], len(raw.CurrentAndFuture)),
		Archive:          make([]*domain.MonthBucket[domain.LibraryEntry], len(raw.Archive)),
	}
	for i, b := range raw.CurrentAndFuture {
		out.CurrentAndFuture[i] = groupBucket(b, ref)
	}
	for i, b := range raw.Archive {
		out.Archive[i] = groupBucket(b, ref)
	}
	return out
}

func groupBucket(b *domain.MonthBucket[domain.ContentItem], ref time.Time) *domain.MonthBucket[domain.LibraryEntry] {
	return &domain.MonthBucket[domain.LibraryEntry]{
		Key:       b.Key,
		Label:     b.Label,
		Order:     b.Order,
		IsCurrent: b.IsCurrent,
		IsFuture:  b.IsFuture,
		IsPast:    b.IsPast,
		Members:   GroupCarousels(b.Members, ref.Location()),
	}
}

// CreateItem records the metadata of an uploaded file.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.ContentItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var month *string
	if input.AttributedMonth != nil {
		key, _ := domain.ParseMonthKey(*input.AttributedMonth)
		canonical := key.String()
		month = &canonical
	}

	now := s.clock.Now().UTC()
	item, err := s.content.Create(ctx, &domain.ContentItem{
		ID:              uuid.New(),
		UserID:          userID,
		FileType:        input.FileType,
		UploadType:      input.UploadType,
		Title:           strings.TrimSpace(input.Title),
		URL:             strings.TrimSpace(input.URL),
		ThumbnailURL:    input.ThumbnailURL,
		AttributedMonth: month,
		CarouselID:      input.CarouselID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}

	s.log.InfoContext(ctx, "content item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("file_type", item.FileType.String()),
	)

	return item, nil
}

// DeleteItem removes a single library item.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	if err := s.content.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}

	s.log.InfoContext(ctx, "content item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

// DeleteItems removes a set of items. Duplicate ids are collapsed. Returns
// the number of rows removed; ids that no longer exist are ignored.
func (s *Service) DeleteItems(ctx context.Context, input DeleteItemsInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	ids := slices.Clone(input.ItemIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	if err := (DeleteItemsInput{ItemIDs: ids}).Validate(s.maxBatch); err != nil {
		return 0, err
	}

	deleted, err := s.content.DeleteBatch(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete content items: %w", err)
	}

	s.log.InfoContext(ctx, "content items deleted",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(ids)),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}

// MoveItem re-attributes a single item to another month.
func (s *Service) MoveItem(ctx context.Context, input MoveInput) (*domain.ContentItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key, err := input.Validate()
	if err != nil {
		return nil, err
	}

	item, err := s.content.UpdateMonth(ctx, userID, input.ID, key.String())
	if err != nil {
		return nil, fmt.Errorf("move content item: %w", err)
	}

	s.log.InfoContext(ctx, "content item moved",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ID.String()),
		slog.String("month", key.String()),
	)
	return item, nil
}

// MoveCarousel re-attributes every member of a carousel to another month.
func (s *Service) MoveCarousel(ctx context.Context, input MoveInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	key, err := input.Validate()
	if err != nil {
		return 0, err
	}

	moved, err := s.content.UpdateCarouselMonth(ctx, userID, input.ID, key.String())
	if err != nil {
		return 0, fmt.Errorf("move carousel: %w", err)
	}
	if moved == 0 {
		return 0, fmt.Errorf("carousel %s: %w", input.ID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "carousel moved",
		slog.String("user_id", userID.String()),
		slog.String("carousel_id", input.ID.String()),
		slog.String("month", key.String()),
		slog.Int("items", moved),
	)
	return moved, nil
}
