// Package counters provides named auto-increment sequences. Allocation is an
// atomic fetch-and-increment per counter name; that row is the single point
// of serialization for id assignment.
package counters

import "context"

type Repository interface {
	// Next returns the next value of the named sequence, starting at 1.
	Next(ctx context.Context, name string) (int64, error)
}
