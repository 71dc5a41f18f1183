package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nanashi-dev/nanashi/internal/api"
	"github.com/nanashi-dev/nanashi/internal/domain"
	"github.com/nanashi-dev/nanashi/internal/utils"
)

const defaultPage int = 1

// ListThreads returns one page of a board's threads ordered by activity.
func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	boardIdQuery := r.URL.Query().Get("boardId")
	if boardIdQuery == "" {
		utils.WriteError(w, "boardId is required", http.StatusBadRequest)
		return
	}
	boardId, err := parseIntParam(boardIdQuery, "boardId")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := defaultPage
	if pageQuery := r.URL.Query().Get("page"); pageQuery != "" {
		if page, err = parseIntParam(pageQuery, "page"); err != nil {
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	threadPage, err := h.thread.List(domain.BoardId(boardId), page, h.cfg.Public.ThreadsPerPage)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threads := make([]api.ThreadMetadataResponse, len(threadPage.Threads))
	for i, t := range threadPage.Threads {
		threads[i] = api.NewThreadMetadataResponse(t)
	}
	writeJSON(w, http.StatusOK, api.ThreadListResponse{
		Threads:    threads,
		Total:      threadPage.Total,
		Page:       threadPage.Page,
		PageSize:   threadPage.PageSize,
		TotalPages: threadPage.TotalPages,
	})
}

// CreateThread creates a thread together with its first post.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.ThreadCreationData{
		BoardId: body.BoardId,
		Title:   domain.ThreadTitle(body.Title),
		FirstPost: domain.PostCreationData{
			Name: domain.PostName(body.Name),
			Body: domain.PostBody(body.Body),
		},
	}

	thread, err := h.thread.Create(creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.NewThreadResponse(thread, false))
}

// GetThread returns one thread with its board and all posts in number order.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewThreadResponse(thread, true))
}
