// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios.  For
// example, ErrClosed indicates that the repository's owner goroutine has
// shut down and no further operations will be accepted, while a wrapped
// storage error signals a fault in the underlying store.
package repository

import "errors"

// ErrClosed is returned when an operation is attempted after the
// repository has been closed.  Handlers should translate this into an
// HTTP 503 response.
var ErrClosed = errors.New("repository closed")
