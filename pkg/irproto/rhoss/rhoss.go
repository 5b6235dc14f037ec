// Package rhoss implements the 96-bit Rhoss Idrowall protocol.
//
// Frames are 12 bytes, each sent MSB first:
//
//	byte 0      preamble, 0xAA
//	byte 1      bit 0 power, bit 1 swing
//	byte 2      mode
//	byte 3      temperature in Celsius
//	byte 4      fan speed
//	bytes 5-10  reserved, zero
//	byte 11     checksum, sum of bytes 0..10
//
// The frame carries the complete basic state, so decoding never needs the
// previous settings.
package rhoss

import (
	"context"
	"fmt"
	"math"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

// FrameLength is the frame size in bytes.
const FrameLength = 12

const (
	preamble byte = 0xAA

	powerBit byte = 0x01
	swingBit byte = 0x02

	modeAuto byte = 0
	modeCool byte = 1
	modeDry  byte = 2
	modeFan  byte = 3
	modeHeat byte = 4

	fanAuto byte = 0
	fanMin  byte = 1
	fanMid  byte = 2
	fanMax  byte = 3

	minTemp = 16
	maxTemp = 30
)

var timing = irsend.Timing{
	HeaderMark:  3000,
	HeaderSpace: 4400,
	BitMark:     650,
	OneSpace:    1550,
	ZeroSpace:   500,
	FooterMark:  650,
	Gap:         100000,
	CarrierHz:   38000,
}

func init() {
	irproto.Register(aircon.ProtocolRhoss, Send)
	irproto.RegisterDecoder(aircon.ProtocolRhoss, Decode)
}

// Send encodes the state into a single Rhoss frame and transmits it.
func Send(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, send aircon.State, prev *aircon.State) error {
	frame := Encode(send)
	msg := irsend.NewMessage(cfg, timing, irsend.EncodeBytes(timing, frame))
	return tx.Transmit(ctx, msg)
}

// Encode renders the state into frame bytes.
func Encode(send aircon.State) []byte {
	frame := make([]byte, FrameLength)
	frame[0] = preamble
	if send.Power {
		frame[1] |= powerBit
	}
	if send.SwingV != aircon.SwingVOff {
		frame[1] |= swingBit
	}
	frame[2] = convertMode(send.Mode)
	frame[3] = clampTemp(send.Degrees)
	frame[4] = convertFan(send.Fan)
	frame[FrameLength-1] = checksum(frame)
	return frame
}

func clampTemp(degrees float32) byte {
	t := int(math.Round(float64(degrees)))
	if t < minTemp {
		t = minTemp
	}
	if t > maxTemp {
		t = maxTemp
	}
	return byte(t)
}

func convertMode(m aircon.Mode) byte {
	switch m {
	case aircon.ModeCool:
		return modeCool
	case aircon.ModeDry:
		return modeDry
	case aircon.ModeFan:
		return modeFan
	case aircon.ModeHeat:
		return modeHeat
	default:
		return modeAuto
	}
}

func convertFan(f aircon.FanSpeed) byte {
	switch f {
	case aircon.FanMin, aircon.FanLow:
		return fanMin
	case aircon.FanMedium, aircon.FanMediumHigh:
		return fanMid
	case aircon.FanHigh, aircon.FanMax:
		return fanMax
	default:
		return fanAuto
	}
}

func checksum(frame []byte) byte {
	var sum byte
	for _, b := range frame[:FrameLength-1] {
		sum += b
	}
	return sum
}

// Valid reports whether the bytes are a well-formed Rhoss frame.
func Valid(frame []byte) bool {
	return len(frame) == FrameLength &&
		frame[0] == preamble &&
		frame[FrameLength-1] == checksum(frame)
}

// Decode converts captured Rhoss frame bytes into a canonical state.
func Decode(c irproto.Capture, _ *aircon.State) (aircon.State, error) {
	if !Valid(c.Bytes) {
		return aircon.State{}, fmt.Errorf("%w: not a Rhoss frame", irproto.ErrInvalidFrame)
	}

	st := aircon.DefaultState()
	st.Protocol = aircon.ProtocolRhoss
	st.Power = c.Bytes[1]&powerBit != 0
	if c.Bytes[1]&swingBit != 0 {
		st.SwingV = aircon.SwingVAuto
	} else {
		st.SwingV = aircon.SwingVOff
	}
	st.Mode = modeFromByte(c.Bytes[2])
	st.Degrees = float32(c.Bytes[3])
	st.Celsius = true
	st.Fan = fanFromByte(c.Bytes[4])
	return st, nil
}

func modeFromByte(b byte) aircon.Mode {
	switch b {
	case modeCool:
		return aircon.ModeCool
	case modeDry:
		return aircon.ModeDry
	case modeFan:
		return aircon.ModeFan
	case modeHeat:
		return aircon.ModeHeat
	default:
		return aircon.ModeAuto
	}
}

func fanFromByte(b byte) aircon.FanSpeed {
	switch b {
	case fanMin:
		return aircon.FanLow
	case fanMid:
		return aircon.FanMedium
	case fanMax:
		return aircon.FanHigh
	default:
		return aircon.FanAuto
	}
}
