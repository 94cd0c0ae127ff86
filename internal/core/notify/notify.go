// Package notify implements the console's transient feedback channel:
// auto-dismissing toasts and confirm/cancel requests. The center is
// headless; the TUI renders whatever Active and PendingConfirm report.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/goddevils777/tgbot3-0-sub001/pkg/randid"
)

// Kind classifies a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// normalize maps unknown kinds to info.
func (k Kind) normalize() Kind {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return k
	}
	return KindInfo
}

// Icon returns the glyph shown next to the toast message.
func (k Kind) Icon() string {
	switch k {
	case KindSuccess:
		return "✔"
	case KindError:
		return "✘"
	case KindWarning:
		return "!"
	}
	return "•"
}

// Lifecycle timing. A toast is inserted invisible, becomes visible after
// ShowDelay, starts hiding after its duration, and is removed once the
// hide transition completes.
const (
	DefaultDuration = 4 * time.Second
	ShowDelay       = 10 * time.Millisecond
	HideTransition  = 300 * time.Millisecond
)

type phase int

const (
	phasePending phase = iota
	phaseVisible
	phaseHiding
	phaseGone
)

// Toast is a handle to a live notification. Dismiss may be called any
// number of times; only the first has an effect.
type Toast struct {
	id       string
	message  string
	kind     Kind
	duration time.Duration

	center *Center
	phase  phase
	timer  *time.Timer // pending transition or auto-dismiss timer
}

// ID returns the toast's identifier.
func (t *Toast) ID() string { return t.id }

// Dismiss cancels the pending auto-dismiss and begins the hide transition.
func (t *Toast) Dismiss() { t.center.hide(t) }

// ToastView is a render snapshot of a live toast.
type ToastView struct {
	ID      string
	Message string
	Kind    Kind
	Hiding  bool
}

// Options configures a Center.
type Options struct {
	// DefaultDuration overrides the package default auto-dismiss delay.
	// Zero keeps DefaultDuration.
	DefaultDuration time.Duration
	// OnChange runs after every lifecycle transition, outside the
	// center's lock. The TUI uses it to request a repaint.
	OnChange func()
}

// Center owns all live toasts and pending confirmations. Construct exactly
// one per application and pass it to the views that need it.
type Center struct {
	mu       sync.Mutex
	toasts   []*Toast
	confirms []*Confirmation

	duration time.Duration
	onChange func()
	log      zerolog.Logger
}

// New creates a Center.
func New(log zerolog.Logger, opts Options) *Center {
	duration := opts.DefaultDuration
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{
		duration: duration,
		onChange: opts.OnChange,
		log:      log,
	}
}

// SetOnChange replaces the change hook. The TUI wires this after the
// program exists, since the hook sends messages into it.
func (c *Center) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Notify inserts a toast. An unknown kind falls back to info; a duration
// <= 0 falls back to the center's default. Never fails.
func (c *Center) Notify(message string, kind Kind, duration time.Duration) *Toast {
	if duration <= 0 {
		duration = c.duration
	}

	t := &Toast{
		id:       randid.Generate(8),
		message:  message,
		kind:     kind.normalize(),
		duration: duration,
		center:   c,
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	t.timer = time.AfterFunc(ShowDelay, func() { c.show(t) })
	c.mu.Unlock()

	c.log.Debug().Str("kind", string(t.kind)).Str("message", message).Msg("toast")
	c.changed()
	return t
}

// Success shows a success toast with the default duration.
func (c *Center) Success(message string) *Toast {
	return c.Notify(message, KindSuccess, 0)
}

// Error shows an error toast with the default duration.
func (c *Center) Error(message string) *Toast {
	return c.Notify(message, KindError, 0)
}

// Warning shows a warning toast with the default duration.
func (c *Center) Warning(message string) *Toast {
	return c.Notify(message, KindWarning, 0)
}

// Info shows an info toast with the default duration.
func (c *Center) Info(message string) *Toast {
	return c.Notify(message, KindInfo, 0)
}

// Active returns render snapshots of all live toasts, oldest first.
// Pending toasts are excluded; they have not reached the visible phase.
func (c *Center) Active() []ToastView {
	c.mu.Lock()
	defer c.mu.Unlock()

	views := make([]ToastView, 0, len(c.toasts))
	for _, t := range c.toasts {
		if t.phase != phaseVisible && t.phase != phaseHiding {
			continue
		}
		views = append(views, ToastView{
			ID:      t.id,
			Message: t.message,
			Kind:    t.kind,
			Hiding:  t.phase == phaseHiding,
		})
	}
	return views
}

func (c *Center) show(t *Toast) {
	c.mu.Lock()
	if t.phase != phasePending {
		c.mu.Unlock()
		return
	}
	t.phase = phaseVisible
	t.timer = time.AfterFunc(t.duration, func() { c.hide(t) })
	c.mu.Unlock()

	c.changed()
}

// hide starts the removal transition. Safe to call more than once and in
// any phase; a toast already hiding or gone is left alone, so a manual
// dismissal followed by the auto-dismiss timer cannot remove twice.
func (c *Center) hide(t *Toast) {
	c.mu.Lock()
	if t.phase == phaseHiding || t.phase == phaseGone {
		c.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.phase = phaseHiding
	t.timer = time.AfterFunc(HideTransition, func() { c.remove(t) })
	c.mu.Unlock()

	c.changed()
}

func (c *Center) remove(t *Toast) {
	c.mu.Lock()
	if t.phase == phaseGone {
		c.mu.Unlock()
		return
	}
	t.phase = phaseGone
	for i, other := range c.toasts {
		if other == t {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.changed()
}

// changed invokes the change hook outside the lock.
func (c *Center) changed() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}
