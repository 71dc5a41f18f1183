package pg

import (
	"testing"

	"github.com/nanashi-dev/nanashi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func TestGetBoards(t *testing.T) {
	boardId := setupBoard(t)

	// Boards come back ordered by id with accurate thread counts.
	boards, err := storage.GetBoards()
	require.NoError(t, err)
	require.NotEmpty(t, boards)

	for i := 1; i < len(boards); i++ {
		assert.Less(t, boards[i-1].Id, boards[i].Id, "boards must be ordered by id ascending")
	}

	var created *domain.Board
	for i := range boards {
		if boards[i].Id == boardId {
			created = &boards[i]
		}
	}
	require.NotNil(t, created, "created board missing from directory")
	assert.Equal(t, 0, created.ThreadCount)
	require.NotNil(t, created.Description)
	assert.Equal(t, "integration test board", *created.Description)

	// Thread count reflects new threads.
	_, err = storage.CreateThread(domain.ThreadCreationData{
		BoardId:   boardId,
		Title:     "count check",
		FirstPost: domain.PostCreationData{Name: "anonymous", Body: "first"},
	})
	require.NoError(t, err)

	boards, err = storage.GetBoards()
	require.NoError(t, err)
	for _, b := range boards {
		if b.Id == boardId {
			assert.Equal(t, 1, b.ThreadCount)
		}
	}
}

func TestCreateBoard_NilDescription(t *testing.T) {
	id, err := storage.CreateBoard("nildesc", nil)
	require.NoError(t, err)

	boards, err := storage.GetBoards()
	require.NoError(t, err)
	for _, b := range boards {
		if b.Id == id {
			assert.Nil(t, b.Description)
		}
	}
}
