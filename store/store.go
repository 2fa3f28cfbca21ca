// Package store holds the persistence layer for orders and users. The
// interfaces are what the controllers depend on; the Mongo-backed
// implementations bind them to collections of a single database.
package store

import "errors"

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("document not found")
