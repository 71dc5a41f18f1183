package api

import (
	"time"

	"github.com/nanashi-dev/nanashi/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	BoardId int64  `json:"boardId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Name    string `json:"name,omitempty"`
	Body    string `json:"body" validate:"required"`
}

// Response DTOs

type ThreadCount struct {
	Posts int `json:"posts"`
}

// ThreadMetadataResponse is a thread as it appears in board listings.
type ThreadMetadataResponse struct {
	Id        domain.ThreadId `json:"id"`
	BoardId   domain.BoardId  `json:"boardId"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Count     ThreadCount     `json:"_count"`
}

func NewThreadMetadataResponse(t domain.ThreadMetadata) ThreadMetadataResponse {
	return ThreadMetadataResponse{
		Id:        t.Id,
		BoardId:   t.BoardId,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Count:     ThreadCount{Posts: t.PostCount},
	}
}

// ThreadListResponse is one page of a board's threads.
type ThreadListResponse struct {
	Threads    []ThreadMetadataResponse `json:"threads"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalPages int                      `json:"totalPages"`
}

// ThreadResponse is a full thread with its posts. Board is present only on
// detail responses.
type ThreadResponse struct {
	Id        domain.ThreadId `json:"id"`
	BoardId   domain.BoardId  `json:"boardId"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Board     *BoardInfo      `json:"board,omitempty"`
	Posts     []PostResponse  `json:"posts"`
}

func NewThreadResponse(t domain.Thread, withBoard bool) ThreadResponse {
	posts := make([]PostResponse, len(t.Posts))
	for i, p := range t.Posts {
		posts[i] = NewPostResponse(p)
	}
	resp := ThreadResponse{
		Id:        t.Id,
		BoardId:   t.BoardId,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Posts:     posts,
	}
	if withBoard {
		board := NewBoardInfo(t.Board)
		resp.Board = &board
	}
	return resp
}
