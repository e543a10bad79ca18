package repository

import "errors"

var (
	ErrFailedToSearch = errors.New("repository: failed to search")
	ErrFailedToUpsert = errors.New("repository: failed to upsert")
	ErrFailedToInsert = errors.New("repository: failed to insert")
	ErrCacheMiss      = errors.New("repository: cache miss")
)
