package utils

import (
	"net/http"
	"unicode/utf8"

	"github.com/nanashi-dev/nanashi/internal/errors"
)

const (
	MaxTitleLen = 100
	MaxBodyLen  = 2000
	MaxNameLen  = 50
)

type ThreadTitleValidator struct{}

func (e *ThreadTitleValidator) Title(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return &errors.ErrorWithStatusCode{Message: "Title must be between 1 and 100 characters", StatusCode: http.StatusBadRequest}
	}
	if len(title) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Title must be between 1 and 100 characters", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type PostValidator struct{}

func (e *PostValidator) Body(body string) error {
	if utf8.RuneCountInString(body) > MaxBodyLen {
		return &errors.ErrorWithStatusCode{Message: "Body must be between 1 and 2000 characters", StatusCode: http.StatusBadRequest}
	}
	if len(body) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Body must be between 1 and 2000 characters", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (e *PostValidator) Name(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLen {
		return &errors.ErrorWithStatusCode{Message: "Name must be 50 characters or less", StatusCode: http.StatusBadRequest}
	}
	return nil
}
