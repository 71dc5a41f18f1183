package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	BoardId   BoardId
	Title     ThreadTitle
	FirstPost PostCreationData
}

type ThreadMetadata struct {
	Id        ThreadId
	BoardId   BoardId
	Title     ThreadTitle
	PostCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Thread struct {
	ThreadMetadata
	Board BoardMetadata
	Posts []Post
}

// ThreadPage is one page of a board's threads, most recently active first.
type ThreadPage struct {
	Threads    []ThreadMetadata
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
