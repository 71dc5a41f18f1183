package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/nanashi-dev/nanashi/internal/config"
	"github.com/nanashi-dev/nanashi/internal/domain"
)

// --- Mocks ---

type MockBoardService struct {
	getAllFunc func() ([]domain.Board, error)
}

func (m *MockBoardService) GetAll() ([]domain.Board, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc()
	}
	return nil, nil
}

type MockThreadService struct {
	createFunc func(creationData domain.ThreadCreationData) (domain.Thread, error)
	getFunc    func(id domain.ThreadId) (domain.Thread, error)
	listFunc   func(boardId domain.BoardId, page, perPage int) (domain.ThreadPage, error)
}

func (m *MockThreadService) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.Thread, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) List(boardId domain.BoardId, page, perPage int) (domain.ThreadPage, error) {
	if m.listFunc != nil {
		return m.listFunc(boardId, page, perPage)
	}
	return domain.ThreadPage{Page: page, PageSize: perPage}, nil
}

type MockPostService struct {
	createFunc func(creationData domain.PostCreationData) (domain.Post, error)
}

func (m *MockPostService) Create(creationData domain.PostCreationData) (domain.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.Post{}, nil
}

type MockHealth struct {
	pingFunc func(ctx context.Context) error
}

func (m *MockHealth) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{Port: 8080, ThreadsPerPage: 20}}
}

func newTestHandler(board *MockBoardService, thread *MockThreadService, post *MockPostService) *Handler {
	if board == nil {
		board = &MockBoardService{}
	}
	if thread == nil {
		thread = &MockThreadService{}
	}
	if post == nil {
		post = &MockPostService{}
	}
	return New(board, thread, post, &MockHealth{}, testConfig())
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/boards", h.GetBoards)
	r.Get("/threads", h.ListThreads)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{id}", h.GetThread)
	r.Post("/posts", h.CreatePost)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
