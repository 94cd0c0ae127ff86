package notify

import (
	"sync"
	"time"

	"github.com/goddevils777/tgbot3-0-sub001/pkg/randid"
)

// Confirmation models a single yes/no decision. Exactly one of the two
// callbacks fires, at most once, after which the modal tears down with the
// same show/hide timing as toasts.
type Confirmation struct {
	id      string
	message string

	center    *Center
	phase     phase
	timer     *time.Timer
	once      sync.Once
	onConfirm func()
	onCancel  func()
}

// ID returns the confirmation's identifier.
func (cf *Confirmation) ID() string { return cf.id }

// Message returns the prompt text.
func (cf *Confirmation) Message() string { return cf.message }

// Confirm resolves the request positively. Subsequent calls to Confirm or
// Cancel are no-ops.
func (cf *Confirmation) Confirm() { cf.resolve(cf.onConfirm) }

// Cancel resolves the request negatively. Covers both explicit cancel and
// dismissing the modal. Subsequent calls to Confirm or Cancel are no-ops.
func (cf *Confirmation) Cancel() { cf.resolve(cf.onCancel) }

func (cf *Confirmation) resolve(fn func()) {
	cf.once.Do(func() {
		if fn != nil {
			fn()
		}
		cf.center.hideConfirm(cf)
	})
}

// ConfirmView is a render snapshot of a pending confirmation.
type ConfirmView struct {
	ID      string
	Message string
	Hiding  bool
}

// Confirm creates a confirmation request. onConfirm and onCancel may be
// nil; whichever applies still resolves the request.
func (c *Center) Confirm(message string, onConfirm, onCancel func()) *Confirmation {
	cf := &Confirmation{
		id:        randid.Generate(8),
		message:   message,
		center:    c,
		onConfirm: onConfirm,
		onCancel:  onCancel,
	}

	c.mu.Lock()
	c.confirms = append(c.confirms, cf)
	cf.timer = time.AfterFunc(ShowDelay, func() { c.showConfirm(cf) })
	c.mu.Unlock()

	c.changed()
	return cf
}

// PendingConfirm returns the most recent unresolved confirmation, or nil.
func (c *Center) PendingConfirm() *Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.confirms) - 1; i >= 0; i-- {
		if cf := c.confirms[i]; cf.phase == phasePending || cf.phase == phaseVisible {
			return cf
		}
	}
	return nil
}

func (c *Center) showConfirm(cf *Confirmation) {
	c.mu.Lock()
	if cf.phase != phasePending {
		c.mu.Unlock()
		return
	}
	cf.phase = phaseVisible
	c.mu.Unlock()

	c.changed()
}

func (c *Center) hideConfirm(cf *Confirmation) {
	c.mu.Lock()
	if cf.phase == phaseHiding || cf.phase == phaseGone {
		c.mu.Unlock()
		return
	}
	if cf.timer != nil {
		cf.timer.Stop()
	}
	cf.phase = phaseHiding
	cf.timer = time.AfterFunc(HideTransition, func() { c.removeConfirm(cf) })
	c.mu.Unlock()

	c.changed()
}

func (c *Center) removeConfirm(cf *Confirmation) {
	c.mu.Lock()
	if cf.phase == phaseGone {
		c.mu.Unlock()
		return
	}
	cf.phase = phaseGone
	for i, other := range c.confirms {
		if other == cf {
			c.confirms = append(c.confirms[:i], c.confirms[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.changed()
}
