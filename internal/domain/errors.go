package domain

import "errors"

// ErrCacheMiss is returned when a cache key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")
