package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nanashi-dev/nanashi/internal/config"
	"github.com/nanashi-dev/nanashi/internal/logger"
	"github.com/nanashi-dev/nanashi/internal/service"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board  service.BoardService
	thread service.ThreadService
	post   service.PostService
	health HealthChecker
	cfg    *config.Config
}

func New(board service.BoardService, thread service.ThreadService, post service.PostService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{board, thread, post, health, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}
