package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(3)
	var n atomic.Int64
	for i := 0; i < 50; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Close()
	require.Equal(t, int64(50), n.Load())
}

func TestPool_CloseWaits(t *testing.T) {
	p := NewPool(2)
	var mu sync.Mutex
	done := 0
	for i := 0; i < 10; i++ {
		p.Submit(func() {
			mu.Lock()
			done++
			mu.Unlock()
		})
	}
	p.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 10, done)
}

func TestPool_NilTaskIgnored(t *testing.T) {
	p := NewPool(0) // clamps to one worker
	p.Submit(nil)
	ran := false
	p.Submit(func() { ran = true })
	p.Close()
	require.True(t, ran)
}
