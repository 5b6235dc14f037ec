// Package irproto dispatches canonical air conditioner states to vendor
// protocol encoders. Vendor packages register themselves in init; importing
// github.com/iracd/iracd/pkg/irproto/protocols pulls in the full set.
package irproto

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irsend"
)

// ErrUnsupportedProtocol is returned when no sender or decoder is registered
// for a protocol.
var ErrUnsupportedProtocol = errors.New("unsupported protocol")

// Sender renders a state into IR messages and transmits them. The state is
// fully prepared: normalized, toggle fields resolved against the previous
// send, temperatures in Celsius. prev may be nil when the previous settings
// are unknown; senders fall back to vendor defaults for anything they need
// from it.
type Sender func(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, send aircon.State, prev *aircon.State) error

var (
	mu      sync.RWMutex
	senders = map[aircon.Protocol]Sender{}
)

// Register installs the sender for a protocol. Vendor packages call it from
// init; registering the same protocol twice panics.
func Register(p aircon.Protocol, s Sender) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := senders[p]; dup {
		panic(fmt.Sprintf("irproto: duplicate sender for %s", p))
	}
	senders[p] = s
}

// Supported reports whether a sender is registered for the protocol.
func Supported(p aircon.Protocol) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := senders[p]
	return ok
}

// Protocols returns every protocol with a registered sender, sorted by name.
func Protocols() []aircon.Protocol {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]aircon.Protocol, 0, len(senders))
	for p := range senders {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Send dispatches the state to its protocol's sender. Nothing is transmitted
// when the protocol has no sender.
func Send(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, send aircon.State, prev *aircon.State) error {
	mu.RLock()
	s, ok := senders[send.Protocol]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedProtocol, send.Protocol)
	}
	return s(ctx, tx, cfg, send, prev)
}
