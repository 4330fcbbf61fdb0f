package timeline

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

type carouselKey struct {
	carouselID uuid.UUID
	month      domain.MonthKey
}

// GroupCarousels wraps items as library entries and collapses those sharing
// (carousel id, resolved month) into carousel groups. Items without a
// carousel id pass through unchanged. loc is used to resolve months from
// creation timestamps.
func GroupCarousels(items []domain.ContentItem, loc *time.Location) []domain.LibraryEntry {
	entries := make([]domain.LibraryEntry, len(items))
	for i := range items {
		item := items[i]
		entries[i] = domain.LibraryEntry{Item: &item}
	}
	return Regroup(entries, loc)
}

// Regroup performs the grouping pass over library entries in a single O(n)
// walk. Existing groups are merged with any item or group sharing their key,
// so Regroup(Regroup(x)) == Regroup(x). Group position follows the first
// occurrence of its key; member order follows input order.
func Regroup(entries []domain.LibraryEntry, loc *time.Location) []domain.LibraryEntry {
	out := make([]domain.LibraryEntry, 0, len(entries))
	index := make(map[carouselKey]int)

	for _, e := range entries {
		var (
			key     carouselKey
			members []domain.ContentItem
		)
		switch {
		case e.Carousel != nil:
			key = carouselKey{carouselID: e.Carousel.CarouselID, month: e.Carousel.Month}
			members = e.Carousel.Images
		case e.Item != nil && e.Item.CarouselID != nil:
			key = carouselKey{
				carouselID: *e.Item.CarouselID,
				month:      e.Item.Attribution().Resolve(loc).Key,
			}
			members = []domain.ContentItem{*e.Item}
		default:
			out = append(out, e)
			continue
		}

		if i, ok := index[key]; ok {
			g := out[i].Carousel
			g.Images = append(g.Images, members...)
			continue
		}

		g := &domain.CarouselGroup{
			CarouselID: key.carouselID,
			Month:      key.month,
			Images:     slices.Clone(members),
		}
		index[key] = len(out)
		out = append(out, domain.LibraryEntry{Carousel: g})
	}

	for _, i := range index {
		finalizeGroup(out[i].Carousel)
	}
	return out
}

// finalizeGroup recomputes the aggregates from the member list.
func finalizeGroup(g *domain.CarouselGroup) {
	g.Count = len(g.Images)
	g.Title = ""
	g.ThumbnailURL = ""
	if len(g.Images) == 0 {
		return
	}
	first := g.Images[0]
	g.ThumbnailURL = first.URL
	if first.ThumbnailURL != nil && *first.ThumbnailURL != "" {
		g.ThumbnailURL = *first.ThumbnailURL
	}
	for _, img := range g.Images {
		if img.Title != "" {
			g.Title = img.Title
			break
		}
	}
}
