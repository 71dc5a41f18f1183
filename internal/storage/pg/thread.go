package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nanashi-dev/nanashi/internal/domain"
	internal_errors "github.com/nanashi-dev/nanashi/internal/errors"
)

// CreateThread inserts a thread together with its first post (number 1) in
// one transaction. A thread is never observable without a post.
func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	// Verify board exists
	var boardId domain.BoardId
	err = tx.QueryRow(
		"SELECT id FROM boards WHERE id = $1",
		creationData.BoardId,
	).Scan(&boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Board not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to validate board: %w", err)
	}

	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond

	var thread domain.Thread
	err = tx.QueryRow(`
        INSERT INTO threads (board_id, title, post_count, created_at, updated_at)
        VALUES ($1, $2, 1, $3, $3)
        RETURNING id
    `, creationData.BoardId, creationData.Title, createdTs).Scan(&thread.Id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	post := domain.Post{
		ThreadId:  thread.Id,
		Number:    1,
		Name:      creationData.FirstPost.Name,
		Body:      creationData.FirstPost.Body,
		CreatedAt: createdTs,
	}
	err = tx.QueryRow(`
        INSERT INTO posts (thread_id, number, name, body, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, post.ThreadId, post.Number, post.Name, post.Body, post.CreatedAt).Scan(&post.Id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert first post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	thread.BoardId = creationData.BoardId
	thread.Title = creationData.Title
	thread.PostCount = 1
	thread.CreatedAt = createdTs
	thread.UpdatedAt = createdTs
	thread.Posts = []domain.Post{post}
	return thread, nil
}

// GetThread returns a thread with its owning board and all posts ordered by
// number.
func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT
            t.id, t.board_id, t.title, t.post_count, t.created_at, t.updated_at,
            b.id, b.name, b.description
        FROM threads t
        JOIN boards b ON b.id = t.board_id
        WHERE t.id = $1
    `, id).Scan(
		&thread.Id, &thread.BoardId, &thread.Title, &thread.PostCount,
		&thread.CreatedAt, &thread.UpdatedAt,
		&thread.Board.Id, &thread.Board.Name, &thread.Board.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT id, thread_id, number, name, body, created_at
        FROM posts
        WHERE thread_id = $1
        ORDER BY number
    `, id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Id, &post.ThreadId, &post.Number, &post.Name, &post.Body, &post.CreatedAt); err != nil {
			return domain.Thread{}, fmt.Errorf("failed to scan post: %w", err)
		}
		thread.Posts = append(thread.Posts, post)
	}
	if err := rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return thread, nil
}

// ListThreads returns one page of a board's threads ordered by most recent
// activity, plus the board's total thread count.
func (s *Storage) ListThreads(boardId domain.BoardId, page, perPage int) ([]domain.ThreadMetadata, int, error) {
	// Verify board exists
	var id domain.BoardId
	err := s.db.QueryRow("SELECT id FROM boards WHERE id = $1", boardId).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, &internal_errors.ErrorWithStatusCode{
				Message:    "Board not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, 0, fmt.Errorf("failed to validate board: %w", err)
	}

	var total int
	err = s.db.QueryRow("SELECT COUNT(*) FROM threads WHERE board_id = $1", boardId).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count threads: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT id, board_id, title, post_count, created_at, updated_at
        FROM threads
        WHERE board_id = $1
        ORDER BY updated_at DESC, id
        LIMIT $2 OFFSET $3
    `, boardId, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.ThreadMetadata
	for rows.Next() {
		var t domain.ThreadMetadata
		if err := rows.Scan(&t.Id, &t.BoardId, &t.Title, &t.PostCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return threads, total, nil
}
