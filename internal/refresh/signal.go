// Package refresh implements the process-wide invalidation counter. Any
// mutation bumps it; views that must reflect cross-view changes compare the
// value they last saw against the current one. The value itself carries no
// meaning beyond change detection.
package refresh

import "sync/atomic"

// Signal is a monotonically increasing counter. The zero value is ready to use.
type Signal struct {
	n atomic.Int64
}

// Bump marks the underlying record set as possibly changed.
func (s *Signal) Bump() {
	s.n.Add(1)
}

// Value returns the current counter. Observers store it and later compare.
func (s *Signal) Value() int64 {
	return s.n.Load()
}

// ChangedSince reports whether any mutation happened after the observed value.
func (s *Signal) ChangedSince(seen int64) bool {
	return s.n.Load() != seen
}
