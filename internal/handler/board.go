package handler

import (
	"net/http"

	"github.com/nanashi-dev/nanashi/internal/api"
	"github.com/nanashi-dev/nanashi/internal/utils"
)

// GetBoards lists every board with its thread count, ordered by id.
func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.BoardResponse, len(boards))
	for i, board := range boards {
		response[i] = api.NewBoardResponse(board)
	}
	writeJSON(w, http.StatusOK, response)
}
