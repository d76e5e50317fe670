package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

const defaultDispatchTimeout = 30 * time.Second

// Counts aggregates outcomes for one channel.
type Counts struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Total returns the number of deliveries counted.
func (c Counts) Total() int { return c.Sent + c.Failed + c.Skipped }

func (c *Counts) add(o Outcome) {
	switch o.Status() {
	case domain.DeliverySent:
		c.Sent++
	case domain.DeliverySkipped:
		c.Skipped++
	default:
		c.Failed++
	}
}

// Result holds per-channel counts of one dispatch.
type Result struct {
	Push  Counts `json:"push"`
	Email Counts `json:"email"`
	SMS   Counts `json:"sms"`
}

// For returns the counts of channel c.
func (r *Result) For(c domain.Channel) *Counts {
	switch c {
	case domain.ChannelPush:
		return &r.Push
	case domain.ChannelEmail:
		return &r.Email
	}
	return &r.SMS
}

// recipientAddress is the log recipient for channel c: the email address,
// the phone number or, for push, the user id.
func recipientAddress(c domain.Channel, to domain.Recipient) string {
	switch {
	case c == domain.ChannelEmail && to.Email != nil:
		return *to.Email
	case c == domain.ChannelSMS && to.Phone != nil:
		return *to.Phone
	case to.UserID != nil:
		return to.UserID.String()
	}
	return to.Name
}

// Total returns the number of deliveries across all channels.
func (r Result) Total() int { return r.Push.Total() + r.Email.Total() + r.SMS.Total() }

// Dispatcher runs deliveries concurrently and waits for all of them.
type Dispatcher struct {
	senders  map[domain.Channel]Sender
	timeout  time.Duration
	attempts *Log
	log      *slog.Logger
}

// NewDispatcher creates a Dispatcher. A channel without a sender counts
// its deliveries as skipped. attempts records deliveries whose sender
// panicked before writing its own entry; it may be nil.
func NewDispatcher(logger *slog.Logger, timeout time.Duration, attempts *Log, senders map[domain.Channel]Sender) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &Dispatcher{
		senders:  senders,
		timeout:  timeout,
		attempts: attempts,
		log:      logger.With("service", "dispatcher"),
	}
}

// Dispatch sends every delivery and returns aggregated counts. A failing
// delivery never cancels its siblings.
func (d *Dispatcher) Dispatch(ctx context.Context, deliveries []Delivery) Result {
	var (
		res Result
		mu  sync.Mutex
	)
	if len(deliveries) == 0 {
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var g errgroup.Group
	for _, dv := range deliveries {
		g.Go(func() error {
			out := d.send(ctx, dv)

			mu.Lock()
			res.For(dv.Channel).add(out)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	d.log.InfoContext(ctx, "dispatch finished",
		slog.Int("deliveries", len(deliveries)),
		slog.Int("push_sent", res.Push.Sent),
		slog.Int("email_sent", res.Email.Sent),
		slog.Int("sms_sent", res.SMS.Sent),
		slog.Int("failed", res.Push.Failed+res.Email.Failed+res.SMS.Failed),
	)
	return res
}

func (d *Dispatcher) send(ctx context.Context, dv Delivery) (out Outcome) {
	sender, ok := d.senders[dv.Channel]
	if !ok || sender == nil {
		return Outcome{Skipped: true}
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.ErrorContext(ctx, "sender panicked",
				slog.String("channel", string(dv.Channel)),
				slog.Any("panic", r),
			)
			out = Outcome{Err: fmt.Errorf("sender panicked: %v", r)}
			if d.attempts != nil {
				d.attempts.record(ctx, dv.Message, attempt{
					Channel:   dv.Channel,
					Recipient: recipientAddress(dv.Channel, dv.Recipient),
					Status:    domain.DeliveryFailed,
					Note:      out.Err.Error(),
				})
			}
		}
	}()

	return sender.Send(ctx, dv.Recipient, dv.Message)
}
