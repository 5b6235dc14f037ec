package rhoss

import (
	"context"
	"errors"
	"testing"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

func rhossState() aircon.State {
	st := aircon.DefaultState()
	st.Protocol = aircon.ProtocolRhoss
	st.Power = true
	st.Mode = aircon.ModeHeat
	st.Degrees = 21
	st.Fan = aircon.FanMedium
	st.SwingV = aircon.SwingVAuto
	return st
}

func TestEncode_WellFormed(t *testing.T) {
	frame := Encode(rhossState())

	if len(frame) != FrameLength {
		t.Fatalf("frame length = %d, want %d", len(frame), FrameLength)
	}
	if frame[0] != preamble {
		t.Errorf("preamble = 0x%02X", frame[0])
	}
	if !Valid(frame) {
		t.Error("Encode() produced a frame Valid() rejects")
	}
}

func TestEncode_Decode_RoundTrip(t *testing.T) {
	want := rhossState()
	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolRhoss, Bytes: Encode(want)}, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if got.Power != want.Power || got.Mode != want.Mode || got.Degrees != want.Degrees {
		t.Errorf("round trip lost settings: %+v", got)
	}
	if got.Fan != aircon.FanMedium || got.SwingV != aircon.SwingVAuto {
		t.Errorf("fan/swing = %v/%v", got.Fan, got.SwingV)
	}
	if got.Protocol != aircon.ProtocolRhoss || !got.Celsius {
		t.Errorf("protocol/celsius = %v/%v", got.Protocol, got.Celsius)
	}
}

func TestEncode_PowerOffKeepsSettings(t *testing.T) {
	st := rhossState()
	st.Power = false

	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolRhoss, Bytes: Encode(st)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Power {
		t.Error("decoded power = on")
	}
	if got.Mode != aircon.ModeHeat || got.Degrees != 21 {
		t.Errorf("off frame dropped settings: %+v", got)
	}
}

func TestEncode_ClampsTemperature(t *testing.T) {
	st := rhossState()

	st.Degrees = 5
	if frame := Encode(st); frame[3] != minTemp {
		t.Errorf("low clamp = %d, want %d", frame[3], minTemp)
	}

	st.Degrees = 40
	if frame := Encode(st); frame[3] != maxTemp {
		t.Errorf("high clamp = %d, want %d", frame[3], maxTemp)
	}
}

func TestDecode_RejectsBadFrames(t *testing.T) {
	good := Encode(rhossState())

	short := good[:FrameLength-1]
	if _, err := Decode(irproto.Capture{Bytes: short}, nil); !errors.Is(err, irproto.ErrInvalidFrame) {
		t.Errorf("short frame error = %v, want ErrInvalidFrame", err)
	}

	bad := make([]byte, FrameLength)
	copy(bad, good)
	bad[3] ^= 0xFF
	if _, err := Decode(irproto.Capture{Bytes: bad}, nil); !errors.Is(err, irproto.ErrInvalidFrame) {
		t.Errorf("bad checksum error = %v, want ErrInvalidFrame", err)
	}

	if _, err := Decode(irproto.Capture{}, nil); !errors.Is(err, irproto.ErrInvalidFrame) {
		t.Errorf("empty capture error = %v, want ErrInvalidFrame", err)
	}
}

func TestSend_SingleFrame(t *testing.T) {
	tx := irsend.NewMemoryTransmitter()

	if err := Send(context.Background(), tx, irsend.Config{Modulation: true}, rhossState(), nil); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	sent := tx.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	// header + 96 data bits + footer
	if got := len(sent[0].Pulses); got != 2+FrameLength*8*2+2 {
		t.Errorf("pulse count = %d", got)
	}
	if sent[0].CarrierHz != 38000 {
		t.Errorf("carrier = %d", sent[0].CarrierHz)
	}
}
