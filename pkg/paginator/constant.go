package paginator

const (
	// DefaultLimit is used when the caller does not send a limit.
	DefaultLimit = 20
	// MaxLimit is the largest page a caller may request.
	MaxLimit = 50
)
