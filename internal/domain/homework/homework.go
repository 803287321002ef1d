package homework

import "context"

// Status is the review verdict of a single homework submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Keys of the status API payload.
const (
	KeyHomeworks    = "homeworks"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
	KeyCurrentDate  = "current_date"
)

// WorkItem is one homework record from the status API after validation.
// Name and Status are empty when the API omitted them.
type WorkItem struct {
	Name   string
	Status Status
}

// StatusClient fetches the raw status payload for the window starting at cursor
// (seconds since epoch, 0 for the whole history).
type StatusClient interface {
	Fetch(ctx context.Context, cursor int64) (any, error)
}
