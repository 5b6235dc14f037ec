package aircon

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseProtocol_CaseInsensitive(t *testing.T) {
	cases := []struct {
		in   string
		want Protocol
	}{
		{"LG2", ProtocolLG2},
		{"lg2", ProtocolLG2},
		{"coolix", ProtocolCoolix},
		{"Hitachi_AC344", ProtocolHitachiAC344},
		{" rhoss ", ProtocolRhoss},
	}
	for _, c := range cases {
		got, ok := ParseProtocol(c.in)
		if !ok {
			t.Errorf("ParseProtocol(%q) not recognized", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ParseProtocol(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, ok := ParseProtocol("NOT_A_PROTOCOL"); ok {
		t.Error("expected unknown protocol to be rejected")
	}
}

func TestProtocol_RoundTrip(t *testing.T) {
	for p, name := range protocolNames {
		back, ok := ParseProtocol(name)
		if !ok || back != p {
			t.Errorf("protocol %v does not round-trip through %q", p, name)
		}
	}
}

func TestParseMode_Aliases(t *testing.T) {
	if got := ParseMode("dehumidify", ModeAuto); got != ModeDry {
		t.Errorf("dehumidify: got %v, want dry", got)
	}
	if got := ParseMode("fan_only", ModeAuto); got != ModeFan {
		t.Errorf("fan_only: got %v, want fan", got)
	}
	if got := ParseMode("bogus", ModeHeat); got != ModeHeat {
		t.Errorf("unknown input must return the default, got %v", got)
	}
}

func TestMode_HVACString(t *testing.T) {
	if got := ModeFan.HVACString(); got != "fan_only" {
		t.Errorf("got %q, want fan_only", got)
	}
	if got := ModeCool.HVACString(); got != "cool" {
		t.Errorf("got %q, want cool", got)
	}
}

func TestParseFanSpeed_Aliases(t *testing.T) {
	cases := []struct {
		in   string
		want FanSpeed
	}{
		{"minimum", FanMin},
		{"med", FanMedium},
		{"medium high", FanMediumHigh},
		{"highest", FanMax},
		{"hi", FanHigh},
	}
	for _, c := range cases {
		if got := ParseFanSpeed(c.in, FanAuto); got != c.want {
			t.Errorf("ParseFanSpeed(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseSwing_Aliases(t *testing.T) {
	if got := ParseSwingV("upper middle", SwingVOff); got != SwingVUpperMiddle {
		t.Errorf("upper middle: got %v", got)
	}
	if got := ParseSwingV("swing", SwingVOff); got != SwingVAuto {
		t.Errorf("swing: got %v, want auto", got)
	}
	if got := ParseSwingH("max left", SwingHOff); got != SwingHLeftMax {
		t.Errorf("max left: got %v", got)
	}
	if got := ParseSwingH("wide", SwingHOff); got != SwingHWide {
		t.Errorf("wide: got %v", got)
	}
}

func TestParseCommand_Aliases(t *testing.T) {
	if got := ParseCommand("ifeel report", CommandControl); got != CommandSensorTempReport {
		t.Errorf("ifeel report: got %v", got)
	}
	if got := ParseCommand("set timer", CommandControl); got != CommandTimer {
		t.Errorf("set timer: got %v", got)
	}
}

func TestParseModel_NamesAndNumbers(t *testing.T) {
	if got := ParseModel("AKB75215403", ModelUnset); got != LGAKB75215403 {
		t.Errorf("AKB75215403: got %v", got)
	}
	if got := ParseModel("ckp", ModelUnset); got != PanasonicCKP {
		t.Errorf("ckp: got %v", got)
	}
	if got := ParseModel("3", ModelUnset); got != Model(3) {
		t.Errorf("numeric model: got %v", got)
	}
	if got := ParseModel("no-such-model", ModelUnset); got != ModelUnset {
		t.Errorf("unknown model must return the default, got %v", got)
	}
}

func TestModelName_ProtocolScoped(t *testing.T) {
	// The same number names different remotes under different protocols.
	if got := ModelName(ProtocolGree, 1); got != "YAW1F" {
		t.Errorf("gree model 1: got %q", got)
	}
	if got := ModelName(ProtocolLG, 1); got != "GE6711AR2853M" {
		t.Errorf("lg model 1: got %q", got)
	}
	if got := ModelName(ProtocolLG2, LG6711A20083V); got != "LG6711A20083V" {
		t.Errorf("lg2 model 5: got %q", got)
	}
	if got := ModelName(ProtocolDaikin, 1); got != "" {
		t.Errorf("unnamed combination should be empty, got %q", got)
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"on", "1", "yes", "TRUE"} {
		if !ParseBool(s, false) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"off", "0", "no", "False"} {
		if ParseBool(s, true) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
	if !ParseBool("maybe", true) {
		t.Error("unknown input must return the default")
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	s := DefaultState()
	s.Protocol = ProtocolCoolix
	s.Power = true
	s.Mode = ModeCool
	s.Fan = FanMediumHigh
	s.SwingV = SwingVUpperMiddle
	s.SwingH = SwingHRightMax

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if StatesDiffer(s, back) {
		t.Errorf("state did not survive the JSON round trip:\n in: %v\nout: %v", s, back)
	}
}

func TestState_JSONUsesNames(t *testing.T) {
	s := DefaultState()
	s.Protocol = ProtocolLG2
	s.Mode = ModeHeat

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["protocol"] != "LG2" {
		t.Errorf("protocol serialized as %v, want \"LG2\"", m["protocol"])
	}
	if m["mode"] != "heat" {
		t.Errorf("mode serialized as %v, want \"heat\"", m["mode"])
	}
}

func TestState_String(t *testing.T) {
	s := DefaultState()
	s.Protocol = ProtocolLG2
	s.Model = LGAKB75215403
	s.Power = true
	s.Mode = ModeCool
	s.Degrees = 22

	got := s.String()
	for _, want := range []string{"LG2", "AKB75215403", "Power: on", "Mode: cool", "22.0C"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q: %s", want, got)
		}
	}
}
