package registry

import "errors"

// Sentinel errors for unique key operations.
var (
	ErrDuplicateKey = errors.New("item already exists")
	ErrKeyNotFound  = errors.New("item not found")
)
