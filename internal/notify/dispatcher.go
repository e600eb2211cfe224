package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store persists notifications for the in-app feed. It is the only delivery
// channel this service owns; anything else (email, push) hangs off the same
// table downstream.
type Store interface {
	Insert(ctx context.Context, n Notification) error
}

// Dispatcher decouples notification writes from the request path: Notify
// enqueues and returns immediately, a single worker drains the queue. A full
// queue drops the notification with a log line rather than blocking a
// booking response.
type Dispatcher struct {
	store Store
	queue chan Notification

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewDispatcher(store Store, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Dispatcher{
		store: store,
		queue: make(chan Notification, queueSize),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (d *Dispatcher) Notify(n Notification) {
	select {
	case d.queue <- n:
	default:
		slog.Warn("notification queue full, dropping notification",
			"user_id", n.UserID, "title", n.Title)
	}
}

// Start launches the worker goroutine. Stop drains what is already queued.
func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	select {
	case <-d.done:
	case <-time.After(5 * time.Second):
		slog.Warn("notification dispatcher did not drain in time")
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-d.stop:
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				default:
					return
				}
			}
		}
	}
}

// deliver failures are logged and swallowed: notification delivery must
// never fail the operation that triggered it.
func (d *Dispatcher) deliver(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.store.Insert(ctx, n); err != nil {
		slog.Error("failed to store notification",
			"user_id", n.UserID, "title", n.Title, "error", err)
	}
}
