package enquiry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/enquiry/internal/pkg/validator"
	"go.uber.org/atomic"
)

const (
	// DefaultHideAfter is how long a status stays visible.
	DefaultHideAfter = 5 * time.Second
	// DefaultFallbackEmail and DefaultFallbackPhone are the direct contacts
	// offered when the relay cannot be reached.
	DefaultFallbackEmail = "info@krishnakavach.com"
	DefaultFallbackPhone = "+91 98765 43210"
)

const (
	msgRequired     = "Please fill in all required fields."
	msgInvalidEmail = "Please enter a valid email address."
	msgRejected     = "Failed to send message. Please try again."
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission is still waiting for the relay.
	ErrSubmitInFlight = errors.New("enquiry: submission already in flight")
	// ErrHoneypot is returned when the hidden field is filled. The status is
	// left untouched so a bot learns nothing.
	ErrHoneypot = errors.New("enquiry: honeypot filled")
)

// ControllerConfig tunes a Controller. Zero values fall back to defaults.
type ControllerConfig struct {
	// HideAfter is the delay before a status is hidden.
	HideAfter time.Duration
	// FallbackEmail and FallbackPhone are offered when the relay is unreachable.
	FallbackEmail string
	FallbackPhone string
	// OnChange, if set, is called after every status or in-flight change,
	// including from the hide timer's goroutine.
	OnChange func(Status)
}

// Controller validates a form, submits it to the relay once, and tracks the
// resulting status.
type Controller struct {
	relay Relay
	cfg   ControllerConfig

	inFlight *atomic.Bool

	mu     sync.Mutex
	gen    uint64
	status Status
	timer  *time.Timer
}

// NewController returns a Controller in the idle state.
func NewController(relay Relay, cfg ControllerConfig) *Controller {
	if cfg.HideAfter <= 0 {
		cfg.HideAfter = DefaultHideAfter
	}
	if cfg.FallbackEmail == "" {
		cfg.FallbackEmail = DefaultFallbackEmail
	}
	if cfg.FallbackPhone == "" {
		cfg.FallbackPhone = DefaultFallbackPhone
	}

	return &Controller{
		relay:    relay,
		cfg:      cfg,
		inFlight: atomic.NewBool(false),
	}
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// Submitting reports whether a submission is waiting for the relay.
func (c *Controller) Submitting() bool {
	return c.inFlight.Load()
}

// Submit validates the payload and, if it passes, sends it to the relay.
//
// The returned error is ErrSubmitInFlight or ErrHoneypot, in which case no
// request was made and the status did not change. Every other outcome is
// reported through the returned Status.
func (c *Controller) Submit(ctx context.Context, p Payload) (Status, error) {
	if c.inFlight.Load() {
		return c.Status(), ErrSubmitInFlight
	}

	if p.Website != "" {
		slog.DebugContext(ctx, "enquiry honeypot filled, dropping submission")
		return c.Status(), ErrHoneypot
	}

	if p.Name == "" || p.Email == "" || p.Phone == "" {
		return c.publish(errorStatus(msgRequired, ErrValidation)), nil
	}

	if !validator.IsContactEmail(p.Email) {
		return c.publish(errorStatus(msgInvalidEmail, ErrValidation)), nil
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return c.Status(), ErrSubmitInFlight
	}
	c.notify(c.Status())

	reply, err := c.relay.Submit(ctx, p)
	st := c.outcome(ctx, p, reply, err)

	c.inFlight.Store(false)
	return c.publish(st), nil
}

func (c *Controller) outcome(ctx context.Context, p Payload, reply *Reply, err error) Status {
	switch {
	case err != nil:
		slog.ErrorContext(ctx, "failed to submit enquiry", "error", err)
		return errorStatus(c.transportMessage(), fmt.Errorf("%w: %w", ErrTransport, err))
	case reply.Success:
		msg := reply.Message
		if msg == "" {
			msg = fmt.Sprintf("Thank you %s! Your message has been sent successfully. We'll contact you soon at %s.", p.Name, p.Phone)
		}
		slog.InfoContext(ctx, "enquiry submitted", "reference", reply.Reference())
		return successStatus(msg)
	default:
		msg := reply.Message
		if msg == "" {
			msg = msgRejected
		}
		slog.WarnContext(ctx, "enquiry rejected by relay", "message", reply.Message)
		return errorStatus(msg, ErrRejected)
	}
}

func (c *Controller) transportMessage() string {
	return fmt.Sprintf("Unable to send email at the moment. Please contact us directly at %s or call %s.",
		c.cfg.FallbackEmail, c.cfg.FallbackPhone)
}

// publish makes st the visible status and schedules it to hide. The timer is
// tied to a generation so an older timer can never hide a newer status.
func (c *Controller) publish(st Status) Status {
	st.Visible = true

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.status = st
	c.timer = time.AfterFunc(c.cfg.HideAfter, func() { c.hide(gen) })
	c.mu.Unlock()

	c.notify(st)
	return st
}

func (c *Controller) hide(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || !c.status.Visible {
		c.mu.Unlock()
		return
	}
	c.status.Visible = false
	st := c.status
	c.mu.Unlock()

	c.notify(st)
}

func (c *Controller) notify(st Status) {
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(st)
	}
}

// Close stops a pending hide timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
