// Package notify sends registration confirmations on a bounded worker pool
// that runs detached from the request path.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"altranzfest/internal/domain"
	"altranzfest/internal/platform/metrics"
)

var (
	ErrNotStarted     = errors.New("dispatcher not started")
	ErrAlreadyStarted = errors.New("dispatcher already started")
	ErrStopped        = errors.New("dispatcher stopped")
	ErrQueueFull      = errors.New("notification queue full")
	ErrStopTimeout    = errors.New("dispatcher stop timed out")
)

const (
	defaultWorkers     = 2
	defaultQueueSize   = 100
	defaultSendTimeout = 30 * time.Second
)

// Result is the outcome of one confirmation attempt. Err is nil on success.
type Result struct {
	RegistrationID string
	Email          string
	Err            error
	Duration       time.Duration
}

// Dispatcher implements domain.RegistrationNotifier.
type Dispatcher struct {
	email       domain.EmailService
	logger      *slog.Logger
	metrics     *metrics.Metrics
	onResult    func(Result)
	workers     int
	queueSize   int
	sendTimeout time.Duration

	jobs chan *domain.RegistrationRecord
	wg   sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queueSize = n
		}
	}
}

func WithSendTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		if t > 0 {
			d.sendTimeout = t
		}
	}
}

// WithResultHandler replaces the default logging handler. fn runs on a worker
// goroutine, or on the caller's goroutine for dropped jobs.
func WithResultHandler(fn func(Result)) Option {
	return func(d *Dispatcher) { d.onResult = fn }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher returns a stopped Dispatcher; call Start before Dispatch.
func NewDispatcher(email domain.EmailService, logger *slog.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		email:       email,
		logger:      logger,
		workers:     defaultWorkers,
		queueSize:   defaultQueueSize,
		sendTimeout: defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.onResult == nil {
		d.onResult = d.logResult
	}
	d.jobs = make(chan *domain.RegistrationRecord, d.queueSize)
	return d
}

// Start launches the workers. Sends are bounded by ctx and by the send timeout.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return ErrAlreadyStarted
	}
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	d.started = true
	return nil
}

// Dispatch queues a confirmation for rec without blocking. When the queue is
// full or the dispatcher is not running the job is dropped and reported to
// the result handler.
func (d *Dispatcher) Dispatch(rec *domain.RegistrationRecord) {
	if rec == nil {
		return
	}
	if err := d.enqueue(rec); err != nil {
		d.metrics.IncNotificationDropped()
		d.onResult(Result{RegistrationID: rec.ID, Email: rec.Email, Err: err})
	}
}

func (d *Dispatcher) enqueue(rec *domain.RegistrationRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case d.stopped:
		return ErrStopped
	case !d.started:
		return ErrNotStarted
	}
	select {
	case d.jobs <- rec:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits up to timeout for queued confirmations to be sent.
func (d *Dispatcher) Stop(timeout time.Duration) error {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-d.jobs:
			if !ok {
				return
			}
			d.send(ctx, rec)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, rec *domain.RegistrationRecord) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.email.SendRegistrationConfirmation(sendCtx, domain.NewRegistrationConfirmationEmailData(rec))
	if err != nil {
		d.metrics.IncNotificationFailed()
	} else {
		d.metrics.IncNotificationSent()
	}
	d.onResult(Result{
		RegistrationID: rec.ID,
		Email:          rec.Email,
		Err:            err,
		Duration:       time.Since(start),
	})
}

func (d *Dispatcher) logResult(r Result) {
	if r.Err != nil {
		d.logger.Error("registration confirmation failed",
			"registration_id", r.RegistrationID,
			"email", r.Email,
			"err", r.Err,
		)
		return
	}
	d.logger.Info("registration confirmation delivered",
		"registration_id", r.RegistrationID,
		"email", r.Email,
		"duration_ms", r.Duration.Milliseconds(),
	)
}
