package rest

import (
	"time"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/calendar"
	"github.com/heartmarshall/contentplanner-backend/internal/service/modification"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
)

// ---------------------------------------------------------------------------
// Buckets
// ---------------------------------------------------------------------------

type bucketResponse[T any] struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Order     int    `json:"order"`
	IsCurrent bool   `json:"isCurrent"`
	IsFuture  bool   `json:"isFuture"`
	IsPast    bool   `json:"isPast"`
	Members   []T    `json:"members"`
}

type bucketSetResponse[T any] struct {
	CurrentAndFuture []bucketResponse[T] `json:"currentAndFuture"`
	Archive          []bucketResponse[T] `json:"archive"`
}

func toBucketSet[S, T any](set domain.BucketSet[S], conv func(S) T) bucketSetResponse[T] {
	return bucketSetResponse[T]{
		CurrentAndFuture: toBuckets(set.CurrentAndFuture, conv),
		Archive:          toBuckets(set.Archive, conv),
	}
}

func toBuckets[S, T any](in []*domain.MonthBucket[S], conv func(S) T) []bucketResponse[T] {
	out := make([]bucketResponse[T], len(in))
	for i, b := range in {
		members := make([]T, len(b.Members))
		for j, m := range b.Members {
			members[j] = conv(m)
		}
		out[i] = bucketResponse[T]{
			Key:       b.Key.String(),
			Label:     b.Label,
			Order:     b.Order,
			IsCurrent: b.IsCurrent,
			IsFuture:  b.IsFuture,
			IsPast:    b.IsPast,
			Members:   members,
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Library
// ---------------------------------------------------------------------------

type contentItemResponse struct {
	ID              string    `json:"id"`
	FileType        string    `json:"fileType"`
	UploadType      string    `json:"uploadType"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	ThumbnailURL    *string   `json:"thumbnailUrl,omitempty"`
	AttributedMonth *string   `json:"attributedMonth,omitempty"`
	CarouselID      *string   `json:"carouselId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type carouselResponse struct {
	CarouselID   string                `json:"carouselId"`
	Month        string                `json:"month"`
	Title        string                `json:"title"`
	ThumbnailURL string                `json:"thumbnailUrl,omitempty"`
	Count        int                   `json:"count"`
	Images       []contentItemResponse `json:"images"`
}

type libraryEntryResponse struct {
	Type     string               `json:"type"`
	Item     *contentItemResponse `json:"item,omitempty"`
	Carousel *carouselResponse    `json:"carousel,omitempty"`
}

func toContentItem(c domain.ContentItem) contentItemResponse {
	out := contentItemResponse{
		ID:              c.ID.String(),
		FileType:        c.FileType.String(),
		UploadType:      c.UploadType.String(),
		Title:           c.Title,
		URL:             c.URL,
		ThumbnailURL:    c.ThumbnailURL,
		AttributedMonth: c.AttributedMonth,
		CreatedAt:       c.CreatedAt,
	}
	if c.CarouselID != nil {
		id := c.CarouselID.String()
		out.CarouselID = &id
	}
	return out
}

func toLibraryEntry(e domain.LibraryEntry) libraryEntryResponse {
	if e.Carousel != nil {
		images := make([]contentItemResponse, len(e.Carousel.Images))
		for i, img := range e.Carousel.Images {
			images[i] = toContentItem(img)
		}
		return libraryEntryResponse{
			Type: "carousel",
			Carousel: &carouselResponse{
				CarouselID:   e.Carousel.CarouselID.String(),
				Month:        e.Carousel.Month.String(),
				Title:        e.Carousel.Title,
				ThumbnailURL: e.Carousel.ThumbnailURL,
				Count:        e.Carousel.Count,
				Images:       images,
			},
		}
	}
	item := toContentItem(*e.Item)
	return libraryEntryResponse{Type: "item", Item: &item}
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

type noteResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Priority      string    `json:"priority"`
	IsMonthlyNote bool      `json:"isMonthlyNote"`
	NoteMonth     *int      `json:"noteMonth,omitempty"`
	NoteYear      *int      `json:"noteYear,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toNote(n domain.Note) noteResponse {
	return noteResponse{
		ID:            n.ID.String(),
		Title:         n.Title,
		Content:       n.Content,
		Priority:      n.Priority.String(),
		IsMonthlyNote: n.IsMonthlyNote,
		NoteMonth:     n.NoteMonth,
		NoteYear:      n.NoteYear,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

type postResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Text            string     `json:"text"`
	Hashtags        []string   `json:"hashtags"`
	AttributedMonth string     `json:"attributedMonth"`
	ScheduledDate   *time.Time `json:"scheduledDate,omitempty"`
	Validated       bool       `json:"validated"`
	Published       bool       `json:"published"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ModifiedAt      *time.Time `json:"modifiedAt,omitempty"`
}

func toPost(p domain.Post) postResponse {
	hashtags := p.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return postResponse{
		ID:              p.ID.String(),
		Title:           p.Title,
		Text:            p.Text,
		Hashtags:        hashtags,
		AttributedMonth: p.AttributedMonth,
		ScheduledDate:   p.ScheduledDate,
		Validated:       p.Validated,
		Published:       p.Published,
		Status:          p.Status.String(),
		CreatedAt:       p.CreatedAt,
		ModifiedAt:      p.ModifiedAt,
	}
}

func toPosts(in []domain.Post) []postResponse {
	out := make([]postResponse, len(in))
	for i, p := range in {
		out[i] = toPost(p)
	}
	return out
}

type windowResponse struct {
	Month    string    `json:"month"`
	Fallback bool      `json:"fallback"`
	Empty    bool      `json:"empty"`
	Min      time.Time `json:"min"`
	Max      time.Time `json:"max"`
}

func toWindow(w schedule.Window) windowResponse {
	return windowResponse{
		Month:    w.Month.String(),
		Fallback: w.Fallback,
		Empty:    w.Empty(),
		Min:      w.Min,
		Max:      w.Max,
	}
}

// ---------------------------------------------------------------------------
// Calendar
// ---------------------------------------------------------------------------

type calendarDayResponse struct {
	Date    string         `json:"date"`
	InMonth bool           `json:"inMonth"`
	IsToday bool           `json:"isToday"`
	Posts   []postResponse `json:"posts"`
}

type calendarResponse struct {
	Month string                `json:"month"`
	Label string                `json:"label"`
	Days  []calendarDayResponse `json:"days"`
}

func toCalendar(g *calendar.Grid) calendarResponse {
	days := make([]calendarDayResponse, len(g.Days))
	for i, d := range g.Days {
		days[i] = calendarDayResponse{
			Date:    d.Key(),
			InMonth: d.InMonth,
			IsToday: d.IsToday,
			Posts:   toPosts(d.Posts),
		}
	}
	return calendarResponse{Month: g.Month.Numeric(), Label: g.Label, Days: days}
}

// ---------------------------------------------------------------------------
// Modification
// ---------------------------------------------------------------------------

type proposalResponse struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
}

type sessionResponse struct {
	PostID      string            `json:"postId"`
	Mode        string            `json:"mode"`
	State       string            `json:"state"`
	Pending     bool              `json:"pending"`
	Instruction string            `json:"instruction"`
	Original    postResponse      `json:"original"`
	Proposal    *proposalResponse `json:"proposal,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func toSession(s modification.Snapshot) sessionResponse {
	out := sessionResponse{
		PostID:      s.PostID.String(),
		Mode:        s.Mode.String(),
		State:       s.State.String(),
		Pending:     s.State.Pending(),
		Instruction: s.Instruction,
		Original:    toPost(s.Original),
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Proposal != nil {
		hashtags := s.Proposal.Hashtags
		if hashtags == nil {
			hashtags = []string{}
		}
		out.Proposal = &proposalResponse{Title: s.Proposal.Title, Text: s.Proposal.Text, Hashtags: hashtags}
	}
	return out
}
