package aircon

// Normalize repairs caller-supplied states that are internally inconsistent.
// Rules run in order; today there is exactly one. Home-automation front ends
// express "off" as an operating mode, so a state whose mode is off must not
// claim the power is on.
func Normalize(s State) State {
	if s.Mode == ModeOff {
		s.Power = false
	}
	return s
}
