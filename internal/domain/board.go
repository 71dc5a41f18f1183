package domain

type BoardMetadata struct {
	Id          BoardId
	Name        string
	Description *string
}

type Board struct {
	BoardMetadata
	ThreadCount int
}
