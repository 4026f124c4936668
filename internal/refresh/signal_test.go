package refresh

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_BumpIncrementsByOne(t *testing.T) {
	var s Signal
	seen := s.Value()

	s.Bump()

	assert.Equal(t, seen+1, s.Value())
	assert.True(t, s.ChangedSince(seen))
	assert.False(t, s.ChangedSince(s.Value()))
}

func TestSignal_ConcurrentBumps(t *testing.T) {
	var s Signal
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Bump()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(100), s.Value())
}
