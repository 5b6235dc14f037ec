package aircon

// Reconcile rewrites the fields of desired that correspond to toggle buttons
// on the target remote, using prev as the record of what the device last
// received. The returned state is what should actually go on the wire.
//
// Reconciliation only applies when prev describes the same physical device:
// non-nil, same protocol and same model. Otherwise desired passes through
// untouched. Protocols with no toggle rules always pass through.
func Reconcile(desired State, prev *State) State {
	result := desired
	if prev == nil || desired.Protocol != prev.Protocol || desired.Model != prev.Model {
		return result
	}
	for _, rule := range toggleRules[desired.Protocol] {
		if rule.model != 0 && desired.Model != rule.model {
			continue
		}
		switch rule.kind {
		case xorToggle:
			applyXor(&result, desired, *prev, rule.field)
		case swingEdgeToggle:
			if (desired.SwingV == SwingVOff) != (prev.SwingV == SwingVOff) {
				result.SwingV = SwingVAuto
			} else {
				result.SwingV = SwingVOff
			}
		case sleepEdgeToggle:
			if (desired.Sleep >= 0) != (prev.Sleep >= 0) {
				result.Sleep = 0
			} else {
				result.Sleep = SleepOff
			}
		}
	}
	return result
}

func applyXor(result *State, desired, prev State, f toggleField) {
	switch f {
	case fieldPower:
		result.Power = desired.Power != prev.Power
	case fieldTurbo:
		result.Turbo = desired.Turbo != prev.Turbo
	case fieldLight:
		result.Light = desired.Light != prev.Light
	case fieldEcono:
		result.Econo = desired.Econo != prev.Econo
	case fieldClean:
		result.Clean = desired.Clean != prev.Clean
	case fieldBeep:
		result.Beep = desired.Beep != prev.Beep
	}
}
