package response

import (
	"sort"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	polldto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/poll"
)

type CommentResponse struct {
	ID         string    `json:"id"`
	RefType    string    `json:"refType"`
	RefID      string    `json:"refId"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	UserID     string    `json:"userId"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PollOptionResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Votes int64  `json:"votes"`
}

type PollResponse struct {
	ID         string                `json:"id"`
	Question   string                `json:"question"`
	Status     string                `json:"status"`
	StartsAt   *time.Time            `json:"startsAt"`
	EndsAt     *time.Time            `json:"endsAt"`
	Options    []*PollOptionResponse `json:"options"`
	TotalVotes int64                 `json:"totalVotes"`
}

type VoteResponse struct {
	ID        string    `json:"id"`
	PollID    string    `json:"pollId"`
	OptionKey string    `json:"optionKey"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

type VolunteerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Skills    string    `json:"skills,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewComment(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		RefType:    string(c.Target.Kind),
		RefID:      c.Target.ID,
		Body:       c.Body,
		Status:     string(c.Status),
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
	}
}

func NewComments(comments []*domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewComment(c))
	}
	return out
}

// NewPoll lists options ordered by key. A nil tally reports zero votes.
func NewPoll(p *domain.Poll, tally *domain.PollTally) *PollResponse {
	keys := make([]string, 0, len(p.Options))
	for k := range p.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	resp := &PollResponse{
		ID:       p.ID,
		Question: p.Question,
		Status:   string(p.Status),
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
		Options:  make([]*PollOptionResponse, 0, len(keys)),
	}
	for _, k := range keys {
		opt := &PollOptionResponse{Key: k, Label: p.Options[k]}
		if tally != nil {
			opt.Votes = tally.Counts[k]
		}
		resp.Options = append(resp.Options, opt)
	}
	if tally != nil {
		resp.TotalVotes = tally.Total
	}
	return resp
}

func NewPollWithTally(p *polldto.PollWithTally) *PollResponse {
	return NewPoll(p.Poll, p.Tally)
}

func NewPolls(polls []*polldto.PollWithTally) []*PollResponse {
	out := make([]*PollResponse, 0, len(polls))
	for _, p := range polls {
		out = append(out, NewPollWithTally(p))
	}
	return out
}

func NewVote(v *domain.PollVote) *VoteResponse {
	return &VoteResponse{ID: v.ID, PollID: v.PollID, OptionKey: v.OptionKey, CreatedAt: v.CreatedAt}
}

func NewSubscriber(s *domain.NewsletterSubscriber) *SubscriberResponse {
	return &SubscriberResponse{ID: s.ID, Email: s.Email, Verified: s.Verified, CreatedAt: s.CreatedAt}
}

func NewSubscribers(subs []*domain.NewsletterSubscriber) []*SubscriberResponse {
	out := make([]*SubscriberResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, NewSubscriber(s))
	}
	return out
}

func NewVolunteer(v *domain.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Skills:    v.Skills,
		Notes:     v.Notes,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
	}
}

func NewVolunteers(volunteers []*domain.Volunteer) []*VolunteerResponse {
	out := make([]*VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, NewVolunteer(v))
	}
	return out
}
