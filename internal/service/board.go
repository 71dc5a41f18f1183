package service

import (
	"github.com/nanashi-dev/nanashi/internal/domain"
)

// to mock service in tests
type BoardService interface {
	GetAll() ([]domain.Board, error)
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	GetBoards() ([]domain.Board, error)
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) GetAll() ([]domain.Board, error) {
	boards, err := b.storage.GetBoards()
	if err != nil {
		return nil, err
	}
	return boards, nil
}
