// Package sink persists rendered documents. A Sink makes exactly one
// write attempt per call; failures are returned to the caller, never
// retried or swallowed.
package sink

import "context"

// Sink writes rendered content to a named destination. The meaning of
// dest depends on the implementation: a filesystem path for FileSink,
// an object key for S3Sink.
type Sink interface {
	Write(ctx context.Context, dest, content string) error
}
