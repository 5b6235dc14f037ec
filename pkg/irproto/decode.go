package irproto

import (
	"errors"
	"fmt"

	"github.com/iracd/iracd/pkg/aircon"
)

// ErrInvalidFrame is returned by decoders when a capture fails validation,
// a bad signature or checksum.
var ErrInvalidFrame = errors.New("invalid frame")

// Capture is a raw vendor frame read back from a receiver or a log.
// Protocols that fit in 64 bits populate Value; byte-array protocols
// populate Bytes.
type Capture struct {
	Protocol aircon.Protocol `json:"protocol"`
	Value    uint64          `json:"value,omitempty"`
	Bytes    []byte          `json:"bytes,omitempty"`
}

// Decoder converts a captured frame back into a canonical state. prev
// supplies the fields the frame does not carry; protocols whose frames are
// deltas lean on it. A nil prev means default everything the frame is silent
// on.
type Decoder func(c Capture, prev *aircon.State) (aircon.State, error)

var decoders = map[aircon.Protocol]Decoder{}

// RegisterDecoder installs the decoder for a protocol. Like Register, it is
// called from vendor package init and panics on duplicates.
func RegisterDecoder(p aircon.Protocol, d Decoder) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := decoders[p]; dup {
		panic(fmt.Sprintf("irproto: duplicate decoder for %s", p))
	}
	decoders[p] = d
}

// Decodable reports whether a decoder is registered for the protocol.
func Decodable(p aircon.Protocol) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := decoders[p]
	return ok
}

// DecodeToState converts a capture into a canonical state using the decoder
// registered for its protocol.
func DecodeToState(c Capture, prev *aircon.State) (aircon.State, error) {
	mu.RLock()
	d, ok := decoders[c.Protocol]
	mu.RUnlock()
	if !ok {
		return aircon.State{}, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, c.Protocol)
	}
	return d(c, prev)
}

// Describe returns a one-line human summary of a capture, or the empty
// string when the capture cannot be decoded.
func Describe(c Capture) string {
	st, err := DecodeToState(c, nil)
	if err != nil {
		return ""
	}
	return st.String()
}
