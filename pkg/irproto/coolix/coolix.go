// Package coolix implements the 24-bit Coolix protocol used by Midea-built
// units sold under many brands.
//
// On the wire every byte is followed by its bitwise complement and the whole
// message is sent twice. State frames are laid out MSB first:
//
//	bits 23-16  signature, 0xB2
//	bits 15-13  fan speed
//	bits 12-8   zero
//	bits 7-4    temperature code, a reflected map over 17..30C
//	bits 3-2    mode
//	bits 1-0    zero
//
// Swing, sleep, turbo, display and self-clean are one-shot command codes
// rather than state bits, so a single send carries at most one of them. The
// remote keeps no other channel to the unit, which is why the upper layer
// resolves those settings into button presses before calling Send.
package coolix

import (
	"context"
	"math"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

// Bits is the logical frame width; complements double it on the wire.
const Bits = 24

// OffCommand powers the unit down regardless of other settings.
const OffCommand uint32 = 0xB27BE0

const (
	swingCommand uint32 = 0xB26BE0
	sleepCommand uint32 = 0xB2E003
	turboCommand uint32 = 0xB5F5A2
	ledCommand   uint32 = 0xB5F5A5
	cleanCommand uint32 = 0xB5F5AA

	signature uint32 = 0xB2

	fanAuto uint32 = 0b101
	fanMin  uint32 = 0b100
	fanMed  uint32 = 0b010
	fanMax  uint32 = 0b001

	modeCool uint32 = 0b00
	modeDry  uint32 = 0b01
	modeAuto uint32 = 0b10
	modeHeat uint32 = 0b11

	// Fan-only operation is signalled through the temperature bits.
	fanModeTemp uint32 = 0b1110

	minTemp = 17
	maxTemp = 30
)

// tempCodes maps degrees Celsius offset from minTemp to the wire code.
var tempCodes = [maxTemp - minTemp + 1]uint32{
	0b0000, 0b0001, 0b0011, 0b0010, 0b0110, 0b0111, 0b0101,
	0b0100, 0b1100, 0b1101, 0b1001, 0b1000, 0b1010, 0b1011,
}

var timing = irsend.Timing{
	HeaderMark:  4692,
	HeaderSpace: 4416,
	BitMark:     552,
	OneSpace:    1656,
	ZeroSpace:   552,
	FooterMark:  552,
	Gap:         5244,
	CarrierHz:   38000,
}

func init() {
	irproto.Register(aircon.ProtocolCoolix, Send)
}

// Send transmits the single frame the state calls for: the highest-priority
// pending button press, or the plain state frame when none is pending.
func Send(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, send aircon.State, prev *aircon.State) error {
	pulses := irsend.EncodeValueComplement(timing, uint64(frameFor(send)), Bits)
	msg := irsend.NewMessage(cfg, timing, pulses)
	msg.Repeats = 1
	return tx.Transmit(ctx, msg)
}

func frameFor(send aircon.State) uint32 {
	switch {
	case !send.Power:
		return OffCommand
	case send.Turbo:
		return turboCommand
	case send.Light:
		return ledCommand
	case send.Clean:
		return cleanCommand
	case send.Sleep >= 0:
		return sleepCommand
	case send.SwingV != aircon.SwingVOff:
		return swingCommand
	default:
		return stateFrame(send)
	}
}

func stateFrame(send aircon.State) uint32 {
	v := signature << 16
	v |= convertFan(send) << 13
	v |= tempCode(send) << 4
	v |= convertMode(send.Mode) << 2
	return v
}

func convertFan(send aircon.State) uint32 {
	if send.Mode == aircon.ModeDry {
		// Dry mode runs the fan at its fixed low setting.
		return fanMin
	}
	switch send.Fan {
	case aircon.FanMin, aircon.FanLow:
		return fanMin
	case aircon.FanMedium, aircon.FanMediumHigh:
		return fanMed
	case aircon.FanHigh, aircon.FanMax:
		return fanMax
	default:
		return fanAuto
	}
}

func convertMode(m aircon.Mode) uint32 {
	switch m {
	case aircon.ModeCool:
		return modeCool
	case aircon.ModeDry:
		return modeDry
	case aircon.ModeHeat:
		return modeHeat
	default:
		return modeAuto
	}
}

func tempCode(send aircon.State) uint32 {
	if send.Mode == aircon.ModeFan {
		return fanModeTemp
	}
	t := int(math.Round(float64(send.Degrees)))
	if t < minTemp {
		t = minTemp
	}
	if t > maxTemp {
		t = maxTemp
	}
	return tempCodes[t-minTemp]
}
