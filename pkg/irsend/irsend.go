// Package irsend turns encoded IR frames into pulse trains and carries them
// to an emitter. Vendor adapters describe their frames as bit patterns plus
// a Timing; this package renders the mark/space sequence and hands it to a
// Transmitter, either a USB IR blaster on a serial port or an in-memory
// recorder for tests and dry runs.
package irsend

import "context"

// Config describes the emitter line a message is sent on. It is fixed when a
// controller session is created and applied to every message it transmits.
type Config struct {
	// Channel selects the emitter on blasters that drive several diodes.
	Channel uint8
	// Inverted drives the output active-low.
	Inverted bool
	// Modulation applies the protocol's carrier frequency. Without it the
	// output is a plain mark/space waveform, which some blaster LEDs and
	// wired IR-in ports expect.
	Modulation bool
}

// Message is one fully rendered IR transmission.
type Message struct {
	Channel   uint8
	CarrierHz uint32 // 0 = unmodulated
	Inverted  bool
	Repeats   uint8 // extra sends after the first
	// Pulses alternates mark and space durations in microseconds,
	// beginning with a mark.
	Pulses []uint32
}

// Duration returns the on-air time of a single send of the message in
// microseconds.
func (m Message) Duration() uint64 {
	var total uint64
	for _, p := range m.Pulses {
		total += uint64(p)
	}
	return total
}

// Transmitter carries rendered messages to an emitter.
type Transmitter interface {
	// Transmit sends one message, blocking until the emitter has accepted
	// the whole pulse train or ctx is done.
	Transmit(ctx context.Context, msg Message) error

	// IsConnected reports whether real hardware is attached.
	IsConnected() bool

	// Close releases the underlying device.
	Close() error
}

// Timing holds the pulse durations a protocol's frames are built from.
// All durations are microseconds.
type Timing struct {
	HeaderMark  uint32
	HeaderSpace uint32
	BitMark     uint32
	OneSpace    uint32
	ZeroSpace   uint32
	FooterMark  uint32
	Gap         uint32
	CarrierHz   uint32
}

// EncodeValue renders the low nbits of value MSB-first into a pulse train:
// header, data bits, footer mark and inter-message gap.
func EncodeValue(t Timing, value uint64, nbits uint) []uint32 {
	pulses := make([]uint32, 0, 2*nbits+4)
	pulses = appendHeader(t, pulses)
	pulses = appendBits(t, pulses, value, nbits)
	return appendFooter(t, pulses)
}

// EncodeValueComplement renders the low nbits of value MSB-first with every
// 8-bit chunk immediately followed by its bitwise complement, the inline
// verification scheme several budget protocols use. nbits must be a multiple
// of 8.
func EncodeValueComplement(t Timing, value uint64, nbits uint) []uint32 {
	pulses := make([]uint32, 0, 4*nbits+4)
	pulses = appendHeader(t, pulses)
	for shift := int(nbits) - 8; shift >= 0; shift -= 8 {
		b := uint64(value>>uint(shift)) & 0xFF
		pulses = appendBits(t, pulses, b, 8)
		pulses = appendBits(t, pulses, ^b&0xFF, 8)
	}
	return appendFooter(t, pulses)
}

// EncodeBytes renders a byte-array frame, each byte MSB-first.
func EncodeBytes(t Timing, data []byte) []uint32 {
	pulses := make([]uint32, 0, 16*len(data)+4)
	pulses = appendHeader(t, pulses)
	for _, b := range data {
		pulses = appendBits(t, pulses, uint64(b), 8)
	}
	return appendFooter(t, pulses)
}

func appendHeader(t Timing, pulses []uint32) []uint32 {
	if t.HeaderMark > 0 {
		pulses = append(pulses, t.HeaderMark, t.HeaderSpace)
	}
	return pulses
}

func appendBits(t Timing, pulses []uint32, value uint64, nbits uint) []uint32 {
	for i := int(nbits) - 1; i >= 0; i-- {
		if value>>uint(i)&1 == 1 {
			pulses = append(pulses, t.BitMark, t.OneSpace)
		} else {
			pulses = append(pulses, t.BitMark, t.ZeroSpace)
		}
	}
	return pulses
}

func appendFooter(t Timing, pulses []uint32) []uint32 {
	if t.FooterMark > 0 {
		pulses = append(pulses, t.FooterMark, t.Gap)
	}
	return pulses
}

// NewMessage wraps a pulse train in a Message honoring the line config.
func NewMessage(cfg Config, t Timing, pulses []uint32) Message {
	carrier := t.CarrierHz
	if !cfg.Modulation {
		carrier = 0
	}
	return Message{
		Channel:   cfg.Channel,
		CarrierHz: carrier,
		Inverted:  cfg.Inverted,
		Pulses:    pulses,
	}
}
