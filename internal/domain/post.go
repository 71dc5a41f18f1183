package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	ThreadId ThreadId
	Name     PostName
	Body     PostBody
}

type Post struct {
	Id        PostId
	ThreadId  ThreadId
	Number    int
	Name      string
	Body      string
	CreatedAt time.Time
}
