package store

import "errors"

// ErrQuotaExceeded is returned by a Backend when the underlying
// storage refuses a write for lack of capacity. Collection reads never
// return it; only mutations can.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is the raw durable key-value substrate the store serializes
// collections into. Get returns (nil, nil) for an absent key; a nil
// error with empty value and a missing key are indistinguishable on
// purpose, the store treats both as an empty collection.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
