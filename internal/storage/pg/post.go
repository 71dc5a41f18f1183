package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nanashi-dev/nanashi/internal/domain"
	internal_errors "github.com/nanashi-dev/nanashi/internal/errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// createPostMaxAttempts bounds the retry loop on (thread_id, number)
// conflicts. The row lock taken by the counter UPDATE serializes appends, so
// a conflict means something external touched the posts table; one retry
// re-reads the counter under a fresh lock.
const createPostMaxAttempts = 3

// CreatePost appends a post to a thread. The reply number is assigned by
// incrementing the thread's post counter and inserting the post inside one
// transaction: the UPDATE locks the thread row, so two concurrent appends
// cannot read the same counter value. The UNIQUE (thread_id, number)
// constraint backs this up; on a conflict the whole transaction is retried.
func (s *Storage) CreatePost(creationData domain.PostCreationData) (domain.Post, error) {
	var lastErr error
	for attempt := 0; attempt < createPostMaxAttempts; attempt++ {
		post, err := s.createPost(creationData)
		if err == nil {
			return post, nil
		}
		if !isUniqueViolation(err) {
			return domain.Post{}, err
		}
		lastErr = err
	}
	return domain.Post{}, fmt.Errorf("post numbering conflict persisted after %d attempts: %w", createPostMaxAttempts, lastErr)
}

func (s *Storage) createPost(creationData domain.PostCreationData) (domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond

	// Bump the counter and the activity timestamp first: the UPDATE takes a
	// row lock on the thread, serializing concurrent appends.
	var number int
	err = tx.QueryRow(`
        UPDATE threads
        SET post_count = post_count + 1, updated_at = $1
        WHERE id = $2
        RETURNING post_count
    `, createdTs, creationData.ThreadId).Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Post{}, fmt.Errorf("failed to bump thread: %w", err)
	}

	post := domain.Post{
		ThreadId:  creationData.ThreadId,
		Number:    number,
		Name:      creationData.Name,
		Body:      creationData.Body,
		CreatedAt: createdTs,
	}
	err = tx.QueryRow(`
        INSERT INTO posts (thread_id, number, name, body, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, post.ThreadId, post.Number, post.Name, post.Body, post.CreatedAt).Scan(&post.Id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
