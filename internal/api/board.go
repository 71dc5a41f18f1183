package api

import (
	"github.com/nanashi-dev/nanashi/internal/domain"
)

// Response DTOs

type BoardCount struct {
	Threads int `json:"threads"`
}

type BoardResponse struct {
	Id          domain.BoardId `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Count       BoardCount     `json:"_count"`
}

func NewBoardResponse(b domain.Board) BoardResponse {
	return BoardResponse{
		Id:          b.Id,
		Name:        b.Name,
		Description: b.Description,
		Count:       BoardCount{Threads: b.ThreadCount},
	}
}

// BoardInfo is the nested board object inside a thread detail response.
type BoardInfo struct {
	Id          domain.BoardId `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
}

func NewBoardInfo(b domain.BoardMetadata) BoardInfo {
	return BoardInfo{Id: b.Id, Name: b.Name, Description: b.Description}
}
