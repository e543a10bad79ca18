package kafka

import "time"

const (
	defaultMaxRetries = 3
	defaultTimeout    = 10 * time.Second
)
