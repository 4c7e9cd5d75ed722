package queue

import "context"

// Receiver drains job batches from a queue backend.
type Receiver interface {
	Receive(ctx context.Context, maxMessages int32) ([]Batch, error)
}
