package dispatch

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/certsearch/core"
)

const (
	// DefaultDelay is the quiet period after the last keystroke before a
	// pending query runs.
	DefaultDelay = 150 * time.Millisecond

	// immediateMaxRunes is the longest query that also runs without waiting.
	immediateMaxRunes = 1

	closeTimeout = 5 * time.Second
)

// SearchFunc produces suggestions for a query.
type SearchFunc func(ctx context.Context, query string) ([]core.Suggestion, error)

// Result is the outcome of one dispatched search.
type Result struct {
	Seq         uint64
	Query       string
	Suggestions []core.Suggestion
	Err         error
}

// ResultHandler receives results in non-decreasing sequence order.
// Calls are serialized.
type ResultHandler func(Result)

type request struct {
	seq   uint64
	query string
}

// Dispatcher debounces queries and runs them on a worker pool.
type Dispatcher struct {
	search   SearchFunc
	handler  ResultHandler
	pool     *ants.Pool
	poolSize int
	delay    time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	seq      uint64
	pending  *request
	timer    *time.Timer
	closed   bool
	inflight sync.WaitGroup

	deliverMu sync.Mutex
	delivered uint64
}

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// WithDelay sets the quiet period.
// Default is DefaultDelay.
func WithDelay(delay time.Duration) Option {
	return func(d *Dispatcher) error {
		if delay < 0 {
			return ErrInvalidDelay
		}
		d.delay = delay
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent searches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(d *Dispatcher) error {
		if size < 1 {
			size = 1
		}
		d.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDispatcher creates a dispatcher that runs search and reports to handler.
func NewDispatcher(search SearchFunc, handler ResultHandler, opts ...Option) (*Dispatcher, error) {
	if search == nil {
		return nil, ErrSearchFuncRequired
	}
	if handler == nil {
		return nil, ErrHandlerRequired
	}

	d := &Dispatcher{
		search:   search,
		handler:  handler,
		poolSize: max(runtime.NumCPU()/2, 1),
		delay:    DefaultDelay,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(d.poolSize)
	if err != nil {
		return nil, err
	}
	d.pool = pool
	d.ctx, d.cancel = context.WithCancel(context.Background())

	return d, nil
}

// Submit replaces the pending query and restarts the quiet period.
// It returns the sequence number assigned to the query.
func (d *Dispatcher) Submit(query string) (uint64, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return 0, ErrDispatcherClosed
	}

	d.seq++
	req := request{seq: d.seq, query: query}
	d.pending = &req
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(req.seq) })

	immediate := utf8.RuneCountInString(strings.TrimSpace(query)) <= immediateMaxRunes
	if immediate {
		d.inflight.Add(1)
	}
	d.mu.Unlock()

	if immediate {
		d.dispatch(req)
	}
	return req.seq, nil
}

// Flush runs the pending query without waiting for the quiet period and
// blocks until every dispatched search has been handled.
// It must not be called concurrently with Submit.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	req := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
	if req != nil && !d.closed {
		d.inflight.Add(1)
	} else {
		req = nil
	}
	d.mu.Unlock()

	if req != nil {
		d.dispatch(*req)
	}
	d.inflight.Wait()
}

// Close stops the timer, cancels running searches and releases the pool.
// Results that arrive after Close are discarded.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.cancel()
	return d.pool.ReleaseTimeout(closeTimeout)
}

// fire runs the pending request if it is still the one the timer was armed for.
func (d *Dispatcher) fire(seq uint64) {
	d.mu.Lock()
	req := d.pending
	if d.closed || req == nil || req.seq != seq {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.inflight.Add(1)
	d.mu.Unlock()

	d.dispatch(*req)
}

// dispatch expects the caller to have added req to inflight.
func (d *Dispatcher) dispatch(req request) {
	err := d.pool.Submit(func() {
		defer d.inflight.Done()
		suggestions, err := d.search(d.ctx, req.query)
		d.deliver(Result{Seq: req.seq, Query: req.query, Suggestions: suggestions, Err: err})
	})
	if err != nil {
		d.inflight.Done()
		d.logger.Error("error submitting search", "query", req.query, "err", err)
	}
}

func (d *Dispatcher) deliver(result Result) {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	if d.isClosed() {
		d.logger.Debug("dropping result after close", "seq", result.Seq, "query", result.Query)
		return
	}
	if result.Seq < d.delivered {
		d.logger.Debug("dropping stale result", "seq", result.Seq, "query", result.Query, "delivered", d.delivered)
		return
	}
	d.delivered = result.Seq
	d.handler(result)
}

func (d *Dispatcher) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
