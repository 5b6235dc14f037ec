package coolix

import (
	"context"
	"testing"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irsend"
)

func coolixState() aircon.State {
	st := aircon.DefaultState()
	st.Protocol = aircon.ProtocolCoolix
	st.Power = true
	st.Mode = aircon.ModeCool
	st.Degrees = 24
	return st
}

func TestFrameFor_StateFrame(t *testing.T) {
	// Cool, 24C, auto fan.
	if got := frameFor(coolixState()); got != 0xB2A040 {
		t.Errorf("frameFor() = 0x%X, want 0xB2A040", got)
	}
}

func TestFrameFor_CommandPriority(t *testing.T) {
	st := coolixState()
	st.Turbo = true
	st.Light = true
	st.Clean = true
	st.Sleep = 0
	st.SwingV = aircon.SwingVAuto

	st.Power = false
	if got := frameFor(st); got != OffCommand {
		t.Errorf("power off = 0x%X, want 0x%X", got, OffCommand)
	}

	st.Power = true
	if got := frameFor(st); got != turboCommand {
		t.Errorf("turbo = 0x%X, want 0x%X", got, turboCommand)
	}

	st.Turbo = false
	if got := frameFor(st); got != ledCommand {
		t.Errorf("led = 0x%X, want 0x%X", got, ledCommand)
	}

	st.Light = false
	if got := frameFor(st); got != cleanCommand {
		t.Errorf("clean = 0x%X, want 0x%X", got, cleanCommand)
	}

	st.Clean = false
	if got := frameFor(st); got != sleepCommand {
		t.Errorf("sleep = 0x%X, want 0x%X", got, sleepCommand)
	}

	st.Sleep = aircon.SleepOff
	if got := frameFor(st); got != swingCommand {
		t.Errorf("swing = 0x%X, want 0x%X", got, swingCommand)
	}

	st.SwingV = aircon.SwingVOff
	if got := frameFor(st); got != 0xB2A040 {
		t.Errorf("no pending command = 0x%X, want state frame", got)
	}
}

func TestStateFrame_FanOnlyUsesTempSentinel(t *testing.T) {
	st := coolixState()
	st.Mode = aircon.ModeFan

	frame := stateFrame(st)
	if frame>>4&0xF != fanModeTemp {
		t.Errorf("temp bits = %04b, want %04b", frame>>4&0xF, fanModeTemp)
	}
}

func TestStateFrame_DryForcesMinFan(t *testing.T) {
	st := coolixState()
	st.Mode = aircon.ModeDry
	st.Fan = aircon.FanMax

	frame := stateFrame(st)
	if frame>>13&0x7 != fanMin {
		t.Errorf("fan bits = %03b, want %03b", frame>>13&0x7, fanMin)
	}
}

func TestStateFrame_TemperatureMap(t *testing.T) {
	st := coolixState()

	st.Degrees = 17
	if frame := stateFrame(st); frame>>4&0xF != 0b0000 {
		t.Errorf("17C code = %04b", frame>>4&0xF)
	}

	st.Degrees = 30
	if frame := stateFrame(st); frame>>4&0xF != 0b1011 {
		t.Errorf("30C code = %04b", frame>>4&0xF)
	}

	// Out-of-range temperatures clamp to the nearest supported degree.
	st.Degrees = 10
	if frame := stateFrame(st); frame>>4&0xF != 0b0000 {
		t.Errorf("clamped low code = %04b", frame>>4&0xF)
	}
	st.Degrees = 35
	if frame := stateFrame(st); frame>>4&0xF != 0b1011 {
		t.Errorf("clamped high code = %04b", frame>>4&0xF)
	}
}

func TestSend_ComplementDoublesBits(t *testing.T) {
	tx := irsend.NewMemoryTransmitter()

	if err := Send(context.Background(), tx, irsend.Config{Modulation: true}, coolixState(), nil); err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	sent := tx.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	msg := sent[0]
	// header + 24 data bits doubled by complements + footer
	if got := len(msg.Pulses); got != 2+Bits*2*2+2 {
		t.Errorf("pulse count = %d, want %d", got, 2+Bits*2*2+2)
	}
	if msg.Repeats != 1 {
		t.Errorf("repeats = %d, want 1", msg.Repeats)
	}
	if msg.CarrierHz != 38000 {
		t.Errorf("carrier = %d", msg.CarrierHz)
	}
}
