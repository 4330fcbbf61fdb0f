package assistant

import (
	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

type postPayload struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
	Month    string   `json:"month,omitempty"`
}

type proposalPayload struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
}

type modifyRequest struct {
	Post        postPayload      `json:"post"`
	Instruction string           `json:"instruction"`
	Previous    *proposalPayload `json:"previous,omitempty"`
}

type generateRequest struct {
	Month string `json:"month"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type generateResponse struct {
	Posts []proposalPayload `json:"posts"`
}

func toPostPayload(p domain.Post) postPayload {
	return postPayload{
		Title:    p.Title,
		Text:     p.Text,
		Hashtags: nonNil(p.Hashtags),
		Month:    p.AttributedMonth,
	}
}

func toProposalPayload(p domain.Proposal) proposalPayload {
	return proposalPayload{Title: p.Title, Text: p.Text, Hashtags: nonNil(p.Hashtags)}
}

func (p proposalPayload) toDomain() domain.Proposal {
	return domain.Proposal{Title: p.Title, Text: p.Text, Hashtags: nonNil(p.Hashtags)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
