package api

import (
	"time"

	"github.com/nanashi-dev/nanashi/internal/domain"
)

// Request DTOs

type CreatePostRequest struct {
	ThreadId int64  `json:"threadId" validate:"required"`
	Name     string `json:"name,omitempty"`
	Body     string `json:"body" validate:"required"`
}

// Response DTOs

type PostResponse struct {
	Id        domain.PostId   `json:"id"`
	ThreadId  domain.ThreadId `json:"threadId"`
	Number    int             `json:"number"`
	Name      string          `json:"name"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		Id:        p.Id,
		ThreadId:  p.ThreadId,
		Number:    p.Number,
		Name:      p.Name,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
	}
}
