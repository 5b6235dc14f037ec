// Package lg implements the 28-bit LG and LG2 air conditioner protocols.
//
// Control frame layout, MSB first:
//
//	bits 27-20  signature, 0x88
//	bits 19-18  power: 0 on, 3 off
//	bits 17-15  unused
//	bits 14-12  mode
//	bits 11-8   temperature minus 15, valid 16..30C
//	bits 7-4    fan speed
//	bits 3-0    checksum, sum of the six payload nibbles
//
// Swing, vane and light frames keep the signature and replace the power and
// mode bits with a command prefix in bits 19-12. LG and LG2 share the frame
// format and differ only in header timing.
package lg

import (
	"context"
	"fmt"
	"math"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

// Bits is the frame width on the wire.
const Bits = 28

const (
	signature uint32 = 0x88
	signShift        = 20

	powerOn  uint32 = 0
	powerOff uint32 = 3

	modeCool uint32 = 0
	modeDry  uint32 = 1
	modeFan  uint32 = 2
	modeAuto uint32 = 3
	modeHeat uint32 = 4

	fanLowest     uint32 = 0
	fanLow        uint32 = 1
	fanMedium     uint32 = 2
	fanMediumHigh uint32 = 3
	fanHigh       uint32 = 4
	fanAuto       uint32 = 5
	fanMax        uint32 = 6

	minTemp = 16
	maxTemp = 30

	// Command prefixes, bits 19-12.
	cmdLight  uint32 = 0x10
	cmdSwingV uint32 = 0x13
	cmdVane   uint32 = 0x14
	cmdSwingH uint32 = 0x15

	// Swing positions, bits 11-4 of swing and vane frames.
	posOff         uint32 = 0x00
	posHighest     uint32 = 0x01
	posHigh        uint32 = 0x02
	posUpperMiddle uint32 = 0x03
	posMiddle      uint32 = 0x04
	posLow         uint32 = 0x05
	posLowest      uint32 = 0x06
	posSwing       uint32 = 0x08

	// Vanes individually addressable on models that support it.
	vaneCount uint32 = 4
)

var (
	// OffCommand turns the unit off regardless of other settings.
	OffCommand = withChecksum(signature<<signShift | powerOff<<18 | fanAuto<<4)

	// lightOffCommand turns the display off; the display relights with
	// every control frame.
	lightOffCommand = withChecksum(signature<<signShift | cmdLight<<12 | 0x0A<<4)

	// swingToggleCommand cycles vertical swing on handsets with a single
	// swing button.
	swingToggleCommand = withChecksum(signature<<signShift | cmdSwingV<<12 | 0xF0)
)

var lgTiming = irsend.Timing{
	HeaderMark:  8500,
	HeaderSpace: 4250,
	BitMark:     560,
	OneSpace:    1600,
	ZeroSpace:   560,
	FooterMark:  560,
	Gap:         100000,
	CarrierHz:   38000,
}

var lg2Timing = irsend.Timing{
	HeaderMark:  3200,
	HeaderSpace: 9900,
	BitMark:     550,
	OneSpace:    1600,
	ZeroSpace:   550,
	FooterMark:  550,
	Gap:         100000,
	CarrierHz:   38000,
}

func init() {
	irproto.Register(aircon.ProtocolLG, Send)
	irproto.Register(aircon.ProtocolLG2, Send)
	irproto.RegisterDecoder(aircon.ProtocolLG, Decode)
	irproto.RegisterDecoder(aircon.ProtocolLG2, Decode)
}

// Send encodes the state into LG frames and transmits them in handset order:
// control first, then whatever swing and light traffic the model needs. prev
// narrows the swing frames to actual changes; with a nil prev the previous
// swing is assumed off.
func Send(ctx context.Context, tx irsend.Transmitter, cfg irsend.Config, send aircon.State, prev *aircon.State) error {
	t := timing(send.Protocol)
	for _, frame := range buildFrames(send, prev) {
		msg := irsend.NewMessage(cfg, t, irsend.EncodeValue(t, uint64(frame), Bits))
		if err := tx.Transmit(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func timing(p aircon.Protocol) irsend.Timing {
	if p == aircon.ProtocolLG2 {
		return lg2Timing
	}
	return lgTiming
}

func buildFrames(send aircon.State, prev *aircon.State) []uint32 {
	frames := []uint32{controlFrame(send)}
	if !send.Power {
		// The off command stands alone.
		return frames
	}

	prevSwingV := aircon.SwingVOff
	prevSwingH := aircon.SwingHOff
	if prev != nil {
		prevSwingV = prev.SwingV
		prevSwingH = prev.SwingH
	}

	switch send.Model {
	case aircon.LG6711A20083V:
		// Single swing button, toggle when crossing the off boundary.
		if (send.SwingV == aircon.SwingVOff) != (prevSwingV == aircon.SwingVOff) {
			frames = append(frames, swingToggleCommand)
		}
	case aircon.LGAKB74955603, aircon.LGAKB73757604:
		if send.SwingV != prevSwingV {
			pos := swingVPosition(send.SwingV)
			for vane := uint32(0); vane < vaneCount; vane++ {
				frames = append(frames, vaneFrame(vane, pos))
			}
		}
		if send.SwingH != prevSwingH {
			frames = append(frames, swingHFrame(send.SwingH != aircon.SwingHOff))
		}
	default:
		if send.SwingV != prevSwingV {
			frames = append(frames, swingVFrame(send.SwingV))
		}
	}

	if !send.Light {
		frames = append(frames, lightOffCommand)
	}
	return frames
}

func controlFrame(send aircon.State) uint32 {
	if !send.Power {
		return OffCommand
	}

	temp := uint32(math.Round(float64(send.Degrees)))
	if temp < minTemp {
		temp = minTemp
	}
	if temp > maxTemp {
		temp = maxTemp
	}

	v := signature<<signShift | powerOn<<18
	v |= convertMode(send.Mode) << 12
	v |= (temp - 15) << 8
	v |= convertFan(send.Fan) << 4
	return withChecksum(v)
}

func swingVFrame(s aircon.SwingV) uint32 {
	return withChecksum(signature<<signShift | cmdSwingV<<12 | swingVPosition(s)<<4)
}

func vaneFrame(vane, pos uint32) uint32 {
	return withChecksum(signature<<signShift | cmdVane<<12 | vane<<8 | pos<<4)
}

func swingHFrame(on bool) uint32 {
	v := signature<<signShift | cmdSwingH<<12
	if on {
		v |= 1 << 4
	}
	return withChecksum(v)
}

func convertMode(m aircon.Mode) uint32 {
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

func convertFan(f aircon.FanSpeed) uint32 {
	switch f {
	case aircon.FanMin:
		return fanLowest
	case aircon.FanLow:
		return fanLow
	case aircon.FanMedium:
		return fanMedium
	case aircon.FanMediumHigh:
		return fanMediumHigh
	case aircon.FanHigh:
		return fanHigh
	case aircon.FanMax:
		return fanMax
	default:
		return fanAuto
	}
}

func swingVPosition(s aircon.SwingV) uint32 {
	switch s {
	case aircon.SwingVHighest:
		return posHighest
	case aircon.SwingVHigh:
		return posHigh
	case aircon.SwingVUpperMiddle:
		return posUpperMiddle
	case aircon.SwingVMiddle:
		return posMiddle
	case aircon.SwingVLow:
		return posLow
	case aircon.SwingVLowest:
		return posLowest
	case aircon.SwingVAuto:
		return posSwing
	default:
		return posOff
	}
}

// Valid reports whether a 28-bit value carries the LG signature and a
// correct checksum.
func Valid(v uint32) bool {
	return v>>signShift == signature && v&0xF == checksum(v)
}

func checksum(v uint32) uint32 {
	var sum uint32
	for p := v >> 4; p > 0; p >>= 4 {
		sum += p & 0xF
	}
	return sum & 0xF
}

func withChecksum(v uint32) uint32 {
	return v&^0xF | checksum(v)
}

// Decode converts a captured LG frame into a canonical state. Fields the
// frame does not carry are taken from prev when present, otherwise from the
// defaults.
func Decode(c irproto.Capture, prev *aircon.State) (aircon.State, error) {
	v := uint32(c.Value)
	if c.Value >= 1<<Bits || !Valid(v) {
		return aircon.State{}, fmt.Errorf("%w: 0x%X is not an LG frame", irproto.ErrInvalidFrame, c.Value)
	}

	st := aircon.DefaultState()
	if prev != nil {
		st = *prev
	}
	st.Protocol = c.Protocol

	if v == OffCommand {
		st.Power = false
		return st, nil
	}

	switch v >> 12 & 0xFF {
	case cmdLight:
		st.Light = false
	case cmdSwingV:
		if v == swingToggleCommand {
			// A toggle flips the previous swing across the off boundary.
			if st.SwingV == aircon.SwingVOff {
				st.SwingV = aircon.SwingVAuto
			} else {
				st.SwingV = aircon.SwingVOff
			}
		} else {
			st.SwingV = swingVFromPosition(v >> 4 & 0xFF)
		}
	case cmdVane:
		st.SwingV = swingVFromPosition(v >> 4 & 0xF)
	case cmdSwingH:
		if v>>4&0xF != 0 {
			st.SwingH = aircon.SwingHAuto
		} else {
			st.SwingH = aircon.SwingHOff
		}
	default:
		st.Power = v>>18&0x3 != powerOff
		st.Mode = modeFromBits(v >> 12 & 0x7)
		st.Degrees = float32((v >> 8 & 0xF) + 15)
		st.Celsius = true
		st.Fan = fanFromBits(v >> 4 & 0xF)
	}
	return st, nil
}

func modeFromBits(b uint32) aircon.Mode {
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

func fanFromBits(b uint32) aircon.FanSpeed {
	switch b {
	case fanLowest:
		return aircon.FanMin
	case fanLow:
		return aircon.FanLow
	case fanMedium:
		return aircon.FanMedium
	case fanMediumHigh:
		return aircon.FanMediumHigh
	case fanHigh:
		return aircon.FanHigh
	case fanMax:
		return aircon.FanMax
	default:
		return aircon.FanAuto
	}
}

func swingVFromPosition(pos uint32) aircon.SwingV {
	switch pos {
	case posHighest:
		return aircon.SwingVHighest
	case posHigh:
		return aircon.SwingVHigh
	case posUpperMiddle:
		return aircon.SwingVUpperMiddle
	case posMiddle:
		return aircon.SwingVMiddle
	case posLow:
		return aircon.SwingVLow
	case posLowest:
		return aircon.SwingVLowest
	case posSwing:
		return aircon.SwingVAuto
	default:
		return aircon.SwingVOff
	}
}
