package paginator

import "errors"

var (
	ErrLimitOutOfRange = errors.New("paginator: limit out of range")
	ErrNegativeOffset  = errors.New("paginator: offset must not be negative")
)

// OffsetQuery contains offset pagination parameters for a request.
type OffsetQuery struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// Pagination is the pagination block returned to clients.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}
