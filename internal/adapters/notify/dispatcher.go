package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"fitimprove/internal/domain"
	"fitimprove/internal/metrics"
)

const (
	sendRetryAttempts = 3
	sendRetryDelay    = 500 * time.Millisecond
)

// templateData is what the notification templates render against.
type templateData struct {
	Name          string
	TrainingTitle string
	TrainingTime  string
}

// Dispatcher delivers notifications through a bounded worker pool. Dispatch
// never blocks the caller: when the queue is full the notification is dropped
// and logged. Delivery failures are logged and dropped as well, so a slow or
// broken mail provider can never fail an enrollment operation.
type Dispatcher struct {
	log       *slog.Logger
	mailer    domain.Mailer
	renderer  domain.TemplateRenderer
	queue     chan domain.Notification
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher starts workers goroutines draining a queue of queueSize.
func NewDispatcher(log *slog.Logger, mailer domain.Mailer, renderer domain.TemplateRenderer, queueSize, workers int) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		mailer:   mailer,
		renderer: renderer,
		queue:    make(chan domain.Notification, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Dispatch enqueues the notification without blocking. Must not be called
// after Shutdown.
func (d *Dispatcher) Dispatch(n domain.Notification) {
	select {
	case d.queue <- n:
	default:
		metrics.NotificationsDropped.Inc()
		d.log.Warn("notification queue full, dropping",
			"kind", n.Kind,
			"user_id", n.User.ID,
			"training_id", n.Training.ID,
		)
	}
}

// Shutdown stops accepting work and waits for queued notifications to drain.
func (d *Dispatcher) Shutdown() {
	d.closeOnce.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		d.send(n)
	}
}

func (d *Dispatcher) send(n domain.Notification) {
	data := templateData{
		Name:          n.User.Name,
		TrainingTitle: n.Training.Title,
		TrainingTime:  n.Training.Time.Format("Mon, 2 Jan 2006 15:04"),
	}
	subject, htmlBody, textBody, err := d.renderer.Render(string(n.Kind), data)
	if err != nil {
		d.log.Error("render notification failed", "kind", n.Kind, "err", err)
		return
	}

	err = retry.Do(
		func() error { return d.mailer.Send(n.User.Email, subject, htmlBody, textBody) },
		retry.Attempts(sendRetryAttempts),
		retry.Delay(sendRetryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		d.log.Error("send notification failed", "kind", n.Kind, "user_id", n.User.ID, "err", err)
		return
	}
	metrics.NotificationsSent.Inc()
}
