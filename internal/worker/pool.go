// Package worker replays move scripts on a fixed set of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessme-go/internal/processing"
	"github.com/lgbarn/chessme-go/internal/script"
)

// WorkItem is a script to replay.
type WorkItem struct {
	Script *script.Script
	Index  int // position of the script in the input
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index  int
	Replay *processing.Replay
	Error  error
}

// ProcessFunc replays one item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines.
type Pool struct {
	workers int
	buffer  int
	fn      ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool returns a pool running fn. Without options it has one worker and
// a buffer of 10.
func NewPool(fn ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, fn: fn}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers. Once ctx is done, queued items are drained
// without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.items {
		if p.stopped.Load() || ctx.Err() != nil {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.fn(item)
	}
}

// Submit queues item, blocking while the buffer is full. It returns
// ctx.Err() if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues item without blocking. It reports false when the buffer
// is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.items <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Skipped returns the number of items drained without processing.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Close stops accepting items, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run replays every script and returns the results in input order. Scripts
// not yet started when ctx is done have no result.
func (p *Pool) Run(ctx context.Context, scripts []*script.Script) []ProcessResult {
	p.Start(ctx)

	go func() {
		defer p.Close()
		for i, s := range scripts {
			if p.Submit(ctx, WorkItem{Script: s, Index: i}) != nil {
				return
			}
		}
	}()

	return Collect(p.Results())
}

// Collect drains results and returns them ordered by Index.
func Collect(results <-chan ProcessResult) []ProcessResult {
	var out []ProcessResult
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
