package lg

import (
	"context"
	"errors"
	"testing"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
)

func lgState() aircon.State {
	st := aircon.DefaultState()
	st.Protocol = aircon.ProtocolLG2
	st.Model = aircon.LGAKB75215403
	st.Power = true
	st.Mode = aircon.ModeCool
	st.Degrees = 22
	st.Fan = aircon.FanHigh
	st.Light = true
	return st
}

func TestOffCommand_MatchesHandset(t *testing.T) {
	// Code captured from an LG handset's power-off button.
	if OffCommand != 0x88C0051 {
		t.Errorf("OffCommand = 0x%X, want 0x88C0051", OffCommand)
	}
}

func TestValid(t *testing.T) {
	if !Valid(OffCommand) {
		t.Error("Valid(OffCommand) = false")
	}
	if Valid(OffCommand ^ 0x10) {
		t.Error("Valid() accepted a corrupted frame")
	}
	if Valid(0x77C0051) {
		t.Error("Valid() accepted a frame without the signature")
	}
}

func TestControlFrame_RoundTrip(t *testing.T) {
	st := lgState()
	frame := controlFrame(st)

	if !Valid(frame) {
		t.Fatalf("controlFrame produced invalid frame 0x%X", frame)
	}

	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG2, Value: uint64(frame)}, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !got.Power || got.Mode != aircon.ModeCool || got.Degrees != 22 || got.Fan != aircon.FanHigh {
		t.Errorf("round trip lost settings: %+v", got)
	}
	if got.Protocol != aircon.ProtocolLG2 {
		t.Errorf("protocol = %v, want LG2", got.Protocol)
	}
}

func TestControlFrame_ClampsTemperature(t *testing.T) {
	st := lgState()

	st.Degrees = 10
	low, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: uint64(controlFrame(st))}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if low.Degrees != minTemp {
		t.Errorf("low clamp = %v, want %d", low.Degrees, minTemp)
	}

	st.Degrees = 35
	high, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: uint64(controlFrame(st))}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if high.Degrees != maxTemp {
		t.Errorf("high clamp = %v, want %d", high.Degrees, maxTemp)
	}
}

func TestBuildFrames_OffStandsAlone(t *testing.T) {
	st := lgState()
	st.Power = false

	frames := buildFrames(st, nil)
	if len(frames) != 1 || frames[0] != OffCommand {
		t.Errorf("frames = %X, want just the off command", frames)
	}
}

func TestBuildFrames_SwingChangeEmitsPositionFrame(t *testing.T) {
	st := lgState()
	st.SwingV = aircon.SwingVAuto

	frames := buildFrames(st, nil)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want control + swing", len(frames))
	}
	if frames[1] != swingVFrame(aircon.SwingVAuto) {
		t.Errorf("swing frame = 0x%X", frames[1])
	}

	prev := st
	frames = buildFrames(st, &prev)
	if len(frames) != 1 {
		t.Errorf("unchanged swing still emitted %d frames", len(frames))
	}
}

func TestBuildFrames_ToggleModel(t *testing.T) {
	st := lgState()
	st.Protocol = aircon.ProtocolLG
	st.Model = aircon.LG6711A20083V
	st.SwingV = aircon.SwingVAuto

	// Nil prev is treated as swing off, so turning swing on toggles.
	frames := buildFrames(st, nil)
	if len(frames) != 2 || frames[1] != swingToggleCommand {
		t.Fatalf("frames = %X, want control + swing toggle", frames)
	}

	// A position move with swing already on must not toggle it off.
	prev := st
	st.SwingV = aircon.SwingVMiddle
	frames = buildFrames(st, &prev)
	if len(frames) != 1 {
		t.Errorf("position move emitted %d frames, want 1", len(frames))
	}
}

func TestBuildFrames_VaneModel(t *testing.T) {
	st := lgState()
	st.Model = aircon.LGAKB74955603
	st.SwingV = aircon.SwingVHighest

	frames := buildFrames(st, nil)
	if len(frames) != 1+int(vaneCount) {
		t.Fatalf("got %d frames, want control + %d vanes", len(frames), vaneCount)
	}
	for i := uint32(0); i < vaneCount; i++ {
		want := vaneFrame(i, posHighest)
		if frames[1+i] != want {
			t.Errorf("vane %d frame = 0x%X, want 0x%X", i, frames[1+i], want)
		}
	}

	prev := st
	st.SwingH = aircon.SwingHAuto
	frames = buildFrames(st, &prev)
	if len(frames) != 2 || frames[1] != swingHFrame(true) {
		t.Errorf("frames = %X, want control + horizontal swing on", frames)
	}
}

func TestBuildFrames_LightOff(t *testing.T) {
	st := lgState()
	st.Light = false

	frames := buildFrames(st, nil)
	if len(frames) != 2 || frames[1] != lightOffCommand {
		t.Fatalf("frames = %X, want control + light off", frames)
	}

	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: uint64(lightOffCommand)}, nil)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Light {
		t.Error("decoded light-off command left light on")
	}
}

func TestSend_UsesProtocolTiming(t *testing.T) {
	tx := irsend.NewMemoryTransmitter()
	st := lgState()

	err := Send(context.Background(), tx, irsend.Config{Modulation: true}, st, nil)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	sent := tx.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	msg := sent[0]
	if msg.CarrierHz != 38000 {
		t.Errorf("carrier = %d, want 38000", msg.CarrierHz)
	}
	if msg.Pulses[0] != lg2Timing.HeaderMark {
		t.Errorf("header mark = %d, want %d", msg.Pulses[0], lg2Timing.HeaderMark)
	}
	if len(msg.Pulses) != 2+Bits*2+2 {
		t.Errorf("pulse count = %d", len(msg.Pulses))
	}

	tx.Reset()
	st.Protocol = aircon.ProtocolLG
	if err := Send(context.Background(), tx, irsend.Config{}, st, nil); err != nil {
		t.Fatal(err)
	}
	last, _ := tx.Last()
	if last.Pulses[0] != lgTiming.HeaderMark {
		t.Errorf("LG header mark = %d, want %d", last.Pulses[0], lgTiming.HeaderMark)
	}
}

func TestDecode_SwingToggleUsesPrev(t *testing.T) {
	prev := lgState()
	prev.SwingV = aircon.SwingVAuto

	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: uint64(swingToggleCommand)}, &prev)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.SwingV != aircon.SwingVOff {
		t.Errorf("toggle with swing on gave %v, want off", got.SwingV)
	}

	got, err = Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: uint64(swingToggleCommand)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.SwingV != aircon.SwingVAuto {
		t.Errorf("toggle with no prev gave %v, want auto", got.SwingV)
	}
}

func TestDecode_KeepsPrevFields(t *testing.T) {
	prev := lgState()
	prev.Quiet = true

	frame := controlFrame(lgState())
	got, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG2, Value: uint64(frame)}, &prev)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Quiet {
		t.Error("field absent from the frame was not taken from prev")
	}
}

func TestDecode_RejectsBadFrames(t *testing.T) {
	cases := []uint64{
		0,
		0x2345678,              // no signature
		uint64(OffCommand ^ 1), // bad checksum
		uint64(1) << 40,        // too wide
	}
	for _, v := range cases {
		if _, err := Decode(irproto.Capture{Protocol: aircon.ProtocolLG, Value: v}, nil); !errors.Is(err, irproto.ErrInvalidFrame) {
			t.Errorf("Decode(0x%X) error = %v, want ErrInvalidFrame", v, err)
		}
	}
}
