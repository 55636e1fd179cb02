// Package throttle serializes HTTP requests to a rate-limited provider.
//
// All requests go through a FIFO queue drained by a single goroutine that
// enforces a minimum gap between consecutive upstream calls. Requests the
// provider defers (202) or rate-limits (429) are moved to the back of the
// queue and retried after a delay, up to a retry limit.
package throttle

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Marlon154/boardgame-search/pkg/logger"
)

// StatusDeferred is the provider's "accepted but not ready yet" signal.
const StatusDeferred = http.StatusAccepted

// Response is the raw outcome of an upstream fetch.
type Response struct {
	StatusCode int
	Body       []byte
}

// Fetcher performs a single HTTP GET. Injected so tests can fake the provider.
type Fetcher func(url string) (*Response, error)

// RetryExhaustedError is returned when a request keeps getting throttled
// past the retry limit. Callers should treat it as "provider busy".
type RetryExhaustedError struct {
	URL      string
	Attempts int
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("max retries exceeded after %d attempts: %s", e.Attempts, e.URL)
}

// Config holds the throttling parameters. Zero values fall back to the
// package defaults.
type Config struct {
	MinInterval time.Duration
	RetryDelay  time.Duration
	MaxRetries  int
}

const (
	defaultMinInterval = 2 * time.Second
	defaultRetryDelay  = 4 * time.Second
	defaultMaxRetries  = 3
)

type outcome struct {
	resp *Response
	err  error
}

// queuedRequest lives only between enqueue and completion. The result
// channel is buffered so the drain goroutine completes it exactly once
// without blocking.
type queuedRequest struct {
	url     string
	result  chan outcome
	retries int
}

// Throttler owns the request queue and its single drain goroutine.
type Throttler struct {
	fetch       Fetcher
	log         logger.Logger
	minInterval time.Duration
	retryDelay  time.Duration
	maxRetries  int

	mu          sync.Mutex
	queue       []*queuedRequest
	draining    bool
	lastRequest time.Time
}

// New creates a Throttler draining requests through the given fetcher.
func New(cfg Config, fetch Fetcher, log logger.Logger) *Throttler {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = defaultMinInterval
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if log == nil {
		log = logger.New()
	}

	return &Throttler{
		fetch:       fetch,
		log:         log,
		minInterval: cfg.MinInterval,
		retryDelay:  cfg.RetryDelay,
		maxRetries:  cfg.MaxRetries,
	}
}

// Enqueue appends a request to the queue and blocks until it completes.
// It returns the raw response for any non-throttle status; transport
// errors and exhausted retries are returned as errors. Completion order
// matches enqueue order except for requests that get requeued.
func (t *Throttler) Enqueue(url string) (*Response, error) {
	req := &queuedRequest{
		url:    url,
		result: make(chan outcome, 1),
	}

	t.mu.Lock()
	t.queue = append(t.queue, req)
	start := !t.draining
	if start {
		t.draining = true
	}
	t.mu.Unlock()

	if start {
		go t.drain()
	}

	out := <-req.result
	return out.resp, out.err
}

// drain processes the queue one request at a time until it is empty.
// The draining flag guarantees a single instance runs at a time.
func (t *Throttler) drain() {
	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.draining = false
			t.mu.Unlock()
			return
		}
		req := t.queue[0]
		t.queue = t.queue[1:]
		t.mu.Unlock()

		t.pace()

		resp, err := t.fetch(req.url)
		if err != nil {
			req.result <- outcome{err: err}
			continue
		}

		if resp.StatusCode == StatusDeferred || resp.StatusCode == http.StatusTooManyRequests {
			if req.retries >= t.maxRetries {
				t.log.Warnf("[Throttle] giving up on %s after %d retries", req.url, req.retries)
				req.result <- outcome{err: &RetryExhaustedError{URL: req.url, Attempts: req.retries + 1}}
				continue
			}
			req.retries++
			t.log.Debugf("[Throttle] provider returned %d, requeueing %s (retry %d/%d)",
				resp.StatusCode, req.url, req.retries, t.maxRetries)

			t.mu.Lock()
			t.queue = append(t.queue, req)
			t.mu.Unlock()

			time.Sleep(t.retryDelay)
			continue
		}

		req.result <- outcome{resp: resp}
	}
}

// pace sleeps until at least minInterval has passed since the previous
// request, then records the new request time.
func (t *Throttler) pace() {
	t.mu.Lock()
	last := t.lastRequest
	t.mu.Unlock()

	if !last.IsZero() {
		if wait := t.minInterval - time.Since(last); wait > 0 {
			time.Sleep(wait)
		}
	}

	t.mu.Lock()
	t.lastRequest = time.Now()
	t.mu.Unlock()
}

// Pending returns the number of requests currently waiting in the queue.
func (t *Throttler) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}
