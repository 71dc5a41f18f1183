package handler

import (
	"net/http"

	"github.com/nanashi-dev/nanashi/internal/api"
	"github.com/nanashi-dev/nanashi/internal/domain"
	"github.com/nanashi-dev/nanashi/internal/utils"
)

// CreatePost appends a reply to a thread.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Create(domain.PostCreationData{
		ThreadId: body.ThreadId,
		Name:     domain.PostName(body.Name),
		Body:     domain.PostBody(body.Body),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.NewPostResponse(post))
}
