package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is an uploaded media file in the user's library. The file
// itself lives in external storage; this is its planning metadata.
type ContentItem struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FileType        FileType
	UploadType      UploadType
	Title           string
	URL             string
	ThumbnailURL    *string
	AttributedMonth *string
	CarouselID      *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Attribution returns the month information used for bucketing.
func (c ContentItem) Attribution() Attribution {
	a := Attribution{CreatedAt: c.CreatedAt}
	if c.AttributedMonth != nil {
		a.MonthKey = *c.AttributedMonth
	}
	return a
}

// CarouselGroup is a derived view over ContentItems that share a carousel
// id and resolved month. It is never persisted.
type CarouselGroup struct {
	CarouselID   uuid.UUID
	Month        MonthKey
	Title        string
	ThumbnailURL string
	Images       []ContentItem
	Count        int
}

// LibraryEntry is one element of a grouped library listing: exactly one of
// Item or Carousel is set.
type LibraryEntry struct {
	Item     *ContentItem
	Carousel *CarouselGroup
}

// IsCarousel reports whether the entry is a carousel group.
func (e LibraryEntry) IsCarousel() bool { return e.Carousel != nil }

// CreatedAt returns the entry's creation time; for a carousel, its first member's.
func (e LibraryEntry) CreatedAt() time.Time {
	switch {
	case e.Carousel != nil && len(e.Carousel.Images) > 0:
		return e.Carousel.Images[0].CreatedAt
	case e.Item != nil:
		return e.Item.CreatedAt
	}
	return time.Time{}
}
