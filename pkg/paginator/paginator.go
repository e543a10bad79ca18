package paginator

// Normalize fills the default limit when none was sent and checks both bounds.
// Unlike clamping, out-of-range values are reported so the caller can reject the request.
func (q *OffsetQuery) Normalize(defaultLimit, maxLimit int) error {
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}
	if q.Limit < 1 || q.Limit > maxLimit {
		return ErrLimitOutOfRange
	}
	if q.Offset < 0 {
		return ErrNegativeOffset
	}
	return nil
}

// Window returns the [start, end) indexes of this page over a list of n items.
func (q OffsetQuery) Window(n int) (int, int) {
	start := q.Offset
	if start > n {
		start = n
	}
	end := start + q.Limit
	if end > n {
		end = n
	}
	return start, end
}

// NewPagination builds the response block. HasMore is a continuation hint:
// it is true exactly when the page came back full.
func NewPagination(q OffsetQuery, pageLen int) Pagination {
	return Pagination{
		Limit:   q.Limit,
		Offset:  q.Offset,
		HasMore: pageLen == q.Limit,
	}
}
