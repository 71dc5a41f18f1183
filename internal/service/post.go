package service

import (
	"github.com/nanashi-dev/nanashi/internal/domain"
)

type PostService interface {
	Create(creationData domain.PostCreationData) (domain.Post, error)
}

type Post struct {
	storage   PostStorage
	validator PostValidator
}

type PostStorage interface {
	CreatePost(creationData domain.PostCreationData) (domain.Post, error)
}

type PostValidator interface {
	Body(body domain.PostBody) error
	Name(name domain.PostName) error
}

func NewPost(storage PostStorage, validator PostValidator) PostService {
	return &Post{storage, validator}
}

// Create validates input and appends a post to a thread. Number assignment
// and the activity-timestamp bump happen atomically in storage. Validation
// runs before any store interaction.
func (p *Post) Create(creationData domain.PostCreationData) (domain.Post, error) {
	if err := p.validator.Body(creationData.Body); err != nil {
		return domain.Post{}, err
	}
	if err := p.validator.Name(creationData.Name); err != nil {
		return domain.Post{}, err
	}
	if creationData.Name == "" {
		creationData.Name = domain.AnonymousName
	}

	return p.storage.CreatePost(creationData)
}
