package handlers

import (
	"net/http"

	"github.com/brigatacurvasud/bcs-service/internal/delivery/http/dto/response"
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.articles.ListPublishedArticles(r.Context(), &contentdto.ListArticlesInput{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.PageOf[*response.ArticleResponse]{
		Items:    response.NewArticles(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetPublishedArticle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewArticle(article))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.articles.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewCategories(categories))
}

func (h *Handler) listUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.ListUpcoming(r.Context(), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewMatches(matches))
}

func (h *Handler) listPastMatches(w http.ResponseWriter, r *http.Request) {
	page, err := h.matches.ListPast(r.Context(), queryInt(r, "page"), queryInt(r, "pageSize"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.PageOf[*response.MatchResponse]{
		Items:    response.NewMatches(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	match, err := h.matches.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewMatch(match))
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.GetPublishedPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewPage(page))
}

func (h *Handler) adminListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.articles.ListArticles(r.Context(), principalFrom(r), &contentdto.ListArticlesInput{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"articles": response.NewArticles(page.Items),
		"total":    page.Total,
		"page":     page.Page,
		"pageSize": page.PageSize,
	})
}

func (h *Handler) adminGetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetArticle(r.Context(), principalFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "article", response.NewArticle(article))
}

func (h *Handler) adminUpsertArticle(w http.ResponseWriter, r *http.Request) {
	var input contentdto.UpsertArticleInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	article, err := h.articles.UpsertArticle(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "article", response.NewArticle(article))
}

func (h *Handler) adminDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := h.articles.DeleteArticle(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

// adminListMatches accepts type=upcoming|past as a shorthand for the
// matching status filter.
func (h *Handler) adminListMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := &contentdto.ListMatchesInput{Status: q.Get("status"), Competition: q.Get("competition")}
	switch q.Get("type") {
	case "upcoming":
		input.Status = string(domain.MatchScheduled)
	case "past":
		input.Status = string(domain.MatchFinished)
	}
	matches, err := h.matches.ListAdminMatches(r.Context(), principalFrom(r), input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "matches", response.NewMatches(matches))
}

func (h *Handler) adminUpsertMatch(w http.ResponseWriter, r *http.Request) {
	var input contentdto.UpsertMatchInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	match, err := h.matches.UpsertMatch(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "match", response.NewMatch(match))
}

func (h *Handler) adminDeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := h.matches.DeleteMatch(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

func (h *Handler) adminListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.ListPages(r.Context(), principalFrom(r))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "pages", response.NewPages(pages))
}

func (h *Handler) adminGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.GetPage(r.Context(), principalFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "page", response.NewPage(page))
}

func (h *Handler) adminUpsertPage(w http.ResponseWriter, r *http.Request) {
	var input contentdto.UpsertPageInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")
	page, err := h.pages.UpsertPage(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, upsertStatus(input.ID), "page", response.NewPage(page))
}

func (h *Handler) adminDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := h.pages.DeletePage(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

func (h *Handler) adminListMedia(w http.ResponseWriter, r *http.Request) {
	page, err := h.media.ListMedia(r.Context(), principalFrom(r), &contentdto.ListMediaInput{
		Query:    r.URL.Query().Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"media":    response.NewMediaList(page.Items),
		"total":    page.Total,
		"page":     page.Page,
		"pageSize": page.PageSize,
	})
}

func (h *Handler) adminCreateMedia(w http.ResponseWriter, r *http.Request) {
	var input contentdto.CreateMediaInput
	if err := decodeJSON(r, &input); err != nil {
		writeAdminError(w, r, err)
		return
	}
	input.ClientIP = clientIP(r)
	media, err := h.media.CreateMedia(r.Context(), principalFrom(r), &input)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusCreated, "media", response.NewMedia(media))
}

func (h *Handler) adminDeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.media.DeleteMedia(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, r, err)
		return
	}
	writeAdminOK(w, http.StatusOK, "", nil)
}

// upsertStatus is 201 for creates (no id in the path) and 200 for updates.
func upsertStatus(id string) int {
	if id == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}
