package aircon

// StatesDiffer reports whether two states would produce different device
// behavior. The clock is deliberately excluded: a state that differs only in
// wall-clock time is not worth a retransmission.
func StatesDiffer(a, b State) bool {
	return a.Protocol != b.Protocol || a.Model != b.Model || a.Power != b.Power ||
		a.Mode != b.Mode || a.Degrees != b.Degrees || a.Celsius != b.Celsius ||
		a.Fan != b.Fan || a.SwingV != b.SwingV || a.SwingH != b.SwingH ||
		a.Quiet != b.Quiet || a.Turbo != b.Turbo || a.Econo != b.Econo ||
		a.Light != b.Light || a.Filter != b.Filter || a.Clean != b.Clean ||
		a.Beep != b.Beep || a.Sleep != b.Sleep || a.Command != b.Command ||
		a.SensorTemp != b.SensorTemp || a.IFeel != b.IFeel
}
