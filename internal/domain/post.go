package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Post is a generated social-media post planned for a month.
type Post struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Text            string
	Hashtags        []string
	AttributedMonth string
	ScheduledDate   *time.Time
	Validated       bool
	Published       bool
	Status          PostStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ModifiedAt      *time.Time
}

// Attribution returns the month information used for bucketing.
func (p Post) Attribution() Attribution {
	return Attribution{MonthKey: p.AttributedMonth, CreatedAt: p.CreatedAt}
}

// IsScheduled reports whether the post has a scheduled date.
func (p Post) IsScheduled() bool { return p.ScheduledDate != nil }

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	out := p
	out.Hashtags = slices.Clone(p.Hashtags)
	if p.ScheduledDate != nil {
		d := *p.ScheduledDate
		out.ScheduledDate = &d
	}
	if p.ModifiedAt != nil {
		m := *p.ModifiedAt
		out.ModifiedAt = &m
	}
	return out
}

// Proposal is a candidate replacement for a post's editable content,
// produced by the external modify service.
type Proposal struct {
	Title    string
	Text     string
	Hashtags []string
}

// ProposalOf returns the post's current editable content as a Proposal.
func ProposalOf(p Post) Proposal {
	return Proposal{Title: p.Title, Text: p.Text, Hashtags: slices.Clone(p.Hashtags)}
}

// Normalized returns a copy of the proposal with hashtags in stored form,
// so what is previewed is what gets saved.
func (p Proposal) Normalized() Proposal {
	p.Hashtags = NormalizeHashtags(p.Hashtags)
	return p
}

// ApplyProposal returns a copy of p with the proposal merged in and
// ModifiedAt set. Hashtags are normalized. No other field changes.
func ApplyProposal(p Post, prop Proposal, at time.Time) Post {
	out := p.Clone()
	out.Title = prop.Title
	out.Text = prop.Text
	out.Hashtags = NormalizeHashtags(prop.Hashtags)
	out.ModifiedAt = &at
	return out
}
