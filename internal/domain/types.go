package domain

type (
	BoardId  = int64
	ThreadId = int64
	PostId   = int64

	ThreadTitle = string
	PostName    = string
	PostBody    = string
)

// AnonymousName is substituted for an empty or omitted poster name.
const AnonymousName = "anonymous"
