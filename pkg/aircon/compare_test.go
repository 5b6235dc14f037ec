package aircon

import "testing"

func TestStatesDiffer_IdenticalStates(t *testing.T) {
	a := DefaultState()
	a.Protocol = ProtocolLG2
	a.Power = true
	b := a

	if StatesDiffer(a, b) {
		t.Error("identical states must not differ")
	}
}

func TestStatesDiffer_IgnoresClock(t *testing.T) {
	a := DefaultState()
	a.Protocol = ProtocolRhoss
	b := a
	b.Clock = 13*60 + 37

	if StatesDiffer(a, b) {
		t.Error("a clock-only difference must not count as a change")
	}
}

func TestStatesDiffer_DetectsFieldChanges(t *testing.T) {
	base := DefaultState()
	base.Protocol = ProtocolCoolix
	base.Power = true
	base.Mode = ModeCool
	base.Degrees = 24

	cases := []struct {
		name   string
		mutate func(*State)
	}{
		{"protocol", func(s *State) { s.Protocol = ProtocolMidea }},
		{"model", func(s *State) { s.Model = 2 }},
		{"power", func(s *State) { s.Power = false }},
		{"mode", func(s *State) { s.Mode = ModeHeat }},
		{"degrees", func(s *State) { s.Degrees = 25.5 }},
		{"celsius", func(s *State) { s.Celsius = false }},
		{"fan", func(s *State) { s.Fan = FanMax }},
		{"swingv", func(s *State) { s.SwingV = SwingVAuto }},
		{"swingh", func(s *State) { s.SwingH = SwingHWide }},
		{"quiet", func(s *State) { s.Quiet = true }},
		{"turbo", func(s *State) { s.Turbo = true }},
		{"econo", func(s *State) { s.Econo = true }},
		{"light", func(s *State) { s.Light = true }},
		{"filter", func(s *State) { s.Filter = true }},
		{"clean", func(s *State) { s.Clean = true }},
		{"beep", func(s *State) { s.Beep = true }},
		{"sleep", func(s *State) { s.Sleep = 30 }},
		{"command", func(s *State) { s.Command = CommandTimer }},
		{"ifeel", func(s *State) { s.IFeel = true }},
		{"sensor temp", func(s *State) { s.SensorTemp = 21.5 }},
	}
	for _, c := range cases {
		changed := base
		c.mutate(&changed)
		if !StatesDiffer(base, changed) {
			t.Errorf("%s change not detected", c.name)
		}
	}
}
