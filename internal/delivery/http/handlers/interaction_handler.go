package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/brigatacurvasud/bcs-service/internal/delivery/http/dto/response"
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	commentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/comment"
	communitydto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/community"
	polldto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/poll"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) activePoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.polls.GetActivePoll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewPollWithTally(poll))
}

func (h *Handler) pollResults(w http.ResponseWriter, r *http.Request) {
	poll, err := h.polls.GetResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewPollWithTally(poll))
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request) {
	var input polldto.VoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.PollID = chi.URLParam(r, "id")
	input.UserID = userID(r)
	input.ClientIP = clientIP(r)

	vote, err := h.polls.Vote(r.Context(), &input)
	if errors.Is(err, domain.ErrPollNotFound) {
		// voting reports every rejection as a bad request
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewVote(vote))
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	comments, err := h.comments.ListApprovedComments(r.Context(), q.Get("refType"), q.Get("refId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewComments(comments))
}

func (h *Handler) submitComment(w http.ResponseWriter, r *http.Request) {
	var input commentdto.CreateCommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.UserID = userID(r)
	input.ClientIP = clientIP(r)

	comment, err := h.comments.SubmitComment(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewComment(comment))
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var input communitydto.SubscribeInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	sub, err := h.community.Subscribe(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewSubscriber(sub))
}

func (h *Handler) submitVolunteer(w http.ResponseWriter, r *http.Request) {
	var input communitydto.VolunteerInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.community.SubmitVolunteer(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewVolunteer(v))
}

func (h *Handler) adminListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "polls", response.NewPolls(polls))
}

func (h *Handler) adminUpsertPoll(w http.ResponseWriter, r *http.Request) {
	var input polldto.UpsertPollInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	poll, err := h.polls.UpsertPoll(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "poll", response.NewPoll(poll, nil))
}

func (h *Handler) adminUpdatePollStatus(w http.ResponseWriter, r *http.Request) {
	var input polldto.UpdatePollStatusInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.PollID = chi.URLParam(r, "id")
	if err := h.polls.UpdatePollStatus(r.Context(), principalFrom(r), &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

func (h *Handler) adminDeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.polls.DeletePoll(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

func (h *Handler) adminListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListAdminComments(r.Context(), principalFrom(r), r.URL.Query().Get("status"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "comments", response.NewComments(comments))
}

func (h *Handler) adminModerateComment(w http.ResponseWriter, r *http.Request) {
	var input commentdto.ModerateCommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.CommentID = chi.URLParam(r, "id")
	comment, err := h.comments.ModerateComment(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "comment", response.NewComment(comment))
}

func (h *Handler) adminListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.community.ListSubscribers(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "subscribers", response.NewSubscribers(subs))
}

// adminExportSubscribers renders the CSV before answering so that a
// failed role check still gets a JSON error.
func (h *Handler) adminExportSubscribers(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.community.ExportSubscribers(r.Context(), principalFrom(r), &buf); err != nil {
		writeAdminError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="newsletter-subscribers.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) adminListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.community.ListVolunteers(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "volunteers", response.NewVolunteers(volunteers))
}

func (h *Handler) adminUpdateVolunteerStatus(w http.ResponseWriter, r *http.Request) {
	var input communitydto.UpdateVolunteerStatusInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.VolunteerID = chi.URLParam(r, "id")
	v, err := h.community.UpdateVolunteerStatus(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "volunteer", response.NewVolunteer(v))
}
