// Package irac holds the sending session for a single air conditioner. A
// Controller tracks the desired settings and the settings last put on air,
// and turns the difference into the right vendor frames: absolute fields are
// re-sent as-is, toggle buttons are pressed only when their setting actually
// changed.
package irac

import (
	"context"
	"sync"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

// Controller drives one unit over one transmitter line.
type Controller struct {
	cfg irsend.Config
	tx  irsend.Transmitter

	mu   sync.Mutex
	next aircon.State
	prev *aircon.State // last settings put on air, nil before the first send
}

// NewController creates a session with default desired settings and no send
// history.
func NewController(tx irsend.Transmitter, cfg irsend.Config) *Controller {
	return &Controller{cfg: cfg, tx: tx, next: aircon.DefaultState()}
}

// SetDesired replaces the desired settings for the next Send.
func (c *Controller) SetDesired(st aircon.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = st
}

// Desired returns the pending desired settings.
func (c *Controller) Desired() aircon.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}

// Prev returns the settings last put on air. ok is false before the first
// successful send.
func (c *Controller) Prev() (st aircon.State, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prev == nil {
		return aircon.State{}, false
	}
	return *c.prev, true
}

// HasStateChanged reports whether the desired settings differ from the last
// sent ones. The clock alone never counts as a change; before the first send
// everything does.
func (c *Controller) HasStateChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prev == nil {
		return true
	}
	return aircon.StatesDiffer(c.next, *c.prev)
}

// MarkAsSent records the desired settings as already on air without
// transmitting anything. Useful when the unit is known to be in the desired
// state, at startup after restoring from storage for example.
func (c *Controller) MarkAsSent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markAsSentLocked()
}

func (c *Controller) markAsSentLocked() {
	prev := c.next
	c.prev = &prev
}

// Send transmits the desired settings and commits them as the new send
// history. On failure the history is left untouched, so the next Send
// resolves toggles against the same baseline.
func (c *Controller) Send(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := SendState(ctx, c.tx, c.cfg, c.next, c.prev); err != nil {
		return err
	}
	c.markAsSentLocked()
	return nil
}

// SendOnce transmits the given settings as a one-shot absolute command.
// Toggle handling is suppressed by treating the settings as already current,
// so no buttons are pressed that would flip the unit away from them. The
// settings become the new desired state; the send history is left alone.
func (c *Controller) SendOnce(ctx context.Context, st aircon.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = st
	// Reconcile against the normalized copy, otherwise normalization repairs
	// would read as changes and press toggle buttons.
	norm := aircon.Normalize(st)
	return SendState(ctx, c.tx, c.cfg, norm, &norm)
}

// Prepare returns the exact state a send would put on air for the given
// desired settings and history: normalized, toggle fields resolved against
// prev, temperatures in Celsius.
func Prepare(desired aircon.State, prev *aircon.State) aircon.State {
	return aircon.Reconcile(aircon.Normalize(desired), prev).InCelsius()
}

// SendState prepares and transmits one state over tx. prev is not modified
// and nothing is recorded; callers own the history.
func SendState(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, desired aircon.State, prev *aircon.State) error {
	return irproto.Send(ctx, tx, cfg, Prepare(desired, prev), prev)
}

// Supported reports whether states for the protocol can be transmitted.
func Supported(p aircon.Protocol) bool {
	return irproto.Supported(p)
}
