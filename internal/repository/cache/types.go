package cache

import "time"

// Entry wraps cached data with a logical expiry.
// The redis key itself lives longer than ExpireAt so a stale value can
// still be served while a single goroutine rebuilds it.
type Entry[T any] struct {
	Data     T         `json:"data"`
	ExpireAt time.Time `json:"expire_at"`
}

// Expired reports whether the logical expiry has passed.
func (e *Entry[T]) Expired() bool {
	return time.Now().After(e.ExpireAt)
}

// NewEntry stamps data with a logical expiry ttl from now.
func NewEntry[T any](data T, ttl time.Duration) *Entry[T] {
	return &Entry[T]{
		Data:     data,
		ExpireAt: time.Now().Add(ttl),
	}
}
