package irsend

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

var (
	// ErrAckTimeout is returned when the blaster does not acknowledge a
	// frame before the deadline.
	ErrAckTimeout = errors.New("blaster ack timeout")
	// ErrRejected is returned when the blaster answers a frame with NAK.
	ErrRejected = errors.New("blaster rejected frame")
)

// Blaster wire protocol. A request frame is:
//
//	sync, channel, flags, repeats, carrier Hz (uint32 LE),
//	pulse count (uint16 LE), pulses (uint32 LE each, microseconds),
//	CRC-CCITT over everything after sync (big-endian)
//
// The blaster answers with a single ACK or NAK byte once the whole pulse
// train has been emitted.
const (
	wireSync byte = 0xA5
	wireAck  byte = 0x06
	wireNak  byte = 0x15

	wireFlagInverted  byte = 0x01
	wireFlagModulated byte = 0x02

	maxPulses = 2048

	ackGrace = 2 * time.Second
)

// SerialTransmitter drives a USB IR blaster over a serial port.
type SerialTransmitter struct {
	port   serial.Port
	device string

	mu     sync.Mutex
	closed bool
}

// OpenSerial opens the blaster's serial port at 115200 baud, 8N1.
func OpenSerial(device string) (*SerialTransmitter, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}

	// Arduino-class blasters hold the firmware in reset until DTR is asserted.
	if err := port.SetDTR(true); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set DTR: %w", err)
	}

	log.Info().Str("device", device).Msg("IR blaster serial port opened")

	return &SerialTransmitter{port: port, device: device}, nil
}

// Transmit writes one wire frame and waits for the blaster's acknowledgement.
func (s *SerialTransmitter) Transmit(ctx context.Context, msg Message) error {
	if len(msg.Pulses) == 0 {
		return fmt.Errorf("empty pulse train")
	}
	if len(msg.Pulses) > maxPulses {
		return fmt.Errorf("pulse train too long: %d pulses", len(msg.Pulses))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("serial transmitter closed")
	}

	frame := encodeWireFrame(msg)

	log.Debug().
		Str("device", s.device).
		Int("pulses", len(msg.Pulses)).
		Uint32("carrier_hz", msg.CarrierHz).
		Uint8("repeats", msg.Repeats).
		Msg("IR TX")

	if _, err := s.port.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	// The blaster acknowledges only after emitting the pulse train, so the
	// wait must cover the on-air time of every repeat.
	onAir := time.Duration(msg.Duration()*uint64(msg.Repeats+1)) * time.Microsecond
	timeout := ackGrace + onAir
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	reply, err := s.readByte(timeout)
	if err != nil {
		return err
	}

	switch reply {
	case wireAck:
		return nil
	case wireNak:
		return ErrRejected
	default:
		return fmt.Errorf("unexpected blaster reply 0x%02X", reply)
	}
}

// IsConnected reports whether the serial port is still open.
func (s *SerialTransmitter) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close closes the serial port.
func (s *SerialTransmitter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.port.Close()
}

// readByte reads a single byte, treating an expired read timeout as
// ErrAckTimeout.
func (s *SerialTransmitter) readByte(timeout time.Duration) (byte, error) {
	if timeout <= 0 {
		return 0, ErrAckTimeout
	}
	if err := s.port.SetReadTimeout(timeout); err != nil {
		return 0, fmt.Errorf("set read timeout: %w", err)
	}

	buf := make([]byte, 1)
	n, err := s.port.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("read reply: %w", err)
	}
	if n == 0 {
		return 0, ErrAckTimeout
	}
	return buf[0], nil
}

// encodeWireFrame renders a Message into the blaster wire format.
func encodeWireFrame(msg Message) []byte {
	var flags byte
	if msg.Inverted {
		flags |= wireFlagInverted
	}
	if msg.CarrierHz > 0 {
		flags |= wireFlagModulated
	}

	frame := make([]byte, 0, 12+4*len(msg.Pulses))
	frame = append(frame, wireSync, msg.Channel, flags, msg.Repeats)
	frame = binary.LittleEndian.AppendUint32(frame, msg.CarrierHz)
	frame = binary.LittleEndian.AppendUint16(frame, uint16(len(msg.Pulses)))
	for _, p := range msg.Pulses {
		frame = binary.LittleEndian.AppendUint32(frame, p)
	}

	crc := crcCCITT(frame[1:])
	frame = append(frame, byte(crc>>8), byte(crc&0xFF))
	return frame
}

// crcCCITT computes CRC-CCITT (0xFFFF initial, poly 0x1021).
func crcCCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
