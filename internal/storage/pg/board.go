package pg

import (
	"fmt"

	"github.com/nanashi-dev/nanashi/internal/domain"

	_ "github.com/lib/pq"
)

// CreateBoard inserts a board row. Boards are created by administrative
// seeding only; there is no HTTP surface for this.
func (s *Storage) CreateBoard(name string, description *string) (domain.BoardId, error) {
	var id domain.BoardId
	err := s.db.QueryRow(
		"INSERT INTO boards(name, description) VALUES($1, $2) RETURNING id",
		name, description,
	).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert board: %w", err)
	}
	return id, nil
}

// GetBoards returns all boards with their thread counts, ordered by id.
func (s *Storage) GetBoards() ([]domain.Board, error) {
	rows, err := s.db.Query(`
        SELECT b.id, b.name, b.description, COUNT(t.id)
        FROM boards b
        LEFT JOIN threads t ON t.board_id = b.id
        GROUP BY b.id, b.name, b.description
        ORDER BY b.id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.Name, &board.Description, &board.ThreadCount); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}
