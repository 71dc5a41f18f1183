package service

import (
	"github.com/nanashi-dev/nanashi/internal/domain"
)

type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	List(boardId domain.BoardId, page, perPage int) (domain.ThreadPage, error)
}

type Thread struct {
	storage        ThreadStorage
	titleValidator ThreadValidator
	postValidator  PostValidator
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	ListThreads(boardId domain.BoardId, page, perPage int) ([]domain.ThreadMetadata, int, error)
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
}

func NewThread(storage ThreadStorage, titleValidator ThreadValidator, postValidator PostValidator) ThreadService {
	return &Thread{storage, titleValidator, postValidator}
}

// Create validates input and creates a thread with its first post. The
// first post's number is always 1 and the poster name defaults to the
// anonymous placeholder. Validation runs before any store interaction.
func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if err := t.titleValidator.Title(creationData.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := t.postValidator.Body(creationData.FirstPost.Body); err != nil {
		return domain.Thread{}, err
	}
	if err := t.postValidator.Name(creationData.FirstPost.Name); err != nil {
		return domain.Thread{}, err
	}
	if creationData.FirstPost.Name == "" {
		creationData.FirstPost.Name = domain.AnonymousName
	}

	return t.storage.CreateThread(creationData)
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	thread, err := t.storage.GetThread(id)
	if err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

func (t *Thread) List(boardId domain.BoardId, page, perPage int) (domain.ThreadPage, error) {
	page = max(1, page)

	threads, total, err := t.storage.ListThreads(boardId, page, perPage)
	if err != nil {
		return domain.ThreadPage{}, err
	}

	return domain.ThreadPage{
		Threads:    threads,
		Total:      total,
		Page:       page,
		PageSize:   perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}
