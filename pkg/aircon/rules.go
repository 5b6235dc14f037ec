package aircon

// Many cheap remotes have no absolute on/off codes for certain settings; the
// physical button transmits "flip it". For those protocols the engine must
// compare the desired state with the previous one and emit the flip, not the
// level. Each protocol's toggle behavior is described here as data; the
// interpreter lives in reconcile.go.

// toggleKind selects how a field is rewritten before transmission.
type toggleKind int

const (
	// xorToggle: transmit true exactly when the setting must flip.
	xorToggle toggleKind = iota
	// swingEdgeToggle: a single swing button. Transmit SwingVAuto when the
	// off-ness of the vertical swing changed, SwingVOff when it did not.
	swingEdgeToggle
	// sleepEdgeToggle: a single sleep button. Transmit 0 when sleep crossed
	// the enabled boundary, SleepOff when it did not.
	sleepEdgeToggle
)

// toggleField names the State field a rule rewrites.
type toggleField int

const (
	fieldPower toggleField = iota
	fieldTurbo
	fieldLight
	fieldEcono
	fieldClean
	fieldBeep
	fieldSleep
	fieldSwingV
)

type toggleRule struct {
	field toggleField
	kind  toggleKind
	model Model // 0 = all models, otherwise the rule is model-specific
}

var toggleRules = map[Protocol][]toggleRule{
	ProtocolCoolix: {
		{field: fieldSwingV, kind: swingEdgeToggle},
		{field: fieldTurbo, kind: xorToggle},
		{field: fieldLight, kind: xorToggle},
		{field: fieldClean, kind: xorToggle},
		{field: fieldSleep, kind: sleepEdgeToggle},
	},
	ProtocolTranscold: {
		{field: fieldSwingV, kind: swingEdgeToggle},
		{field: fieldTurbo, kind: xorToggle},
		{field: fieldLight, kind: xorToggle},
		{field: fieldClean, kind: xorToggle},
		{field: fieldSleep, kind: sleepEdgeToggle},
	},
	ProtocolDaikin128: {
		{field: fieldPower, kind: xorToggle},
		{field: fieldLight, kind: xorToggle},
	},
	ProtocolElectraAC: {
		{field: fieldLight, kind: xorToggle},
	},
	ProtocolFujitsuAC: {
		{field: fieldTurbo, kind: xorToggle},
		{field: fieldEcono, kind: xorToggle},
	},
	ProtocolMidea: {
		{field: fieldTurbo, kind: xorToggle},
		{field: fieldEcono, kind: xorToggle},
		{field: fieldLight, kind: xorToggle},
		{field: fieldClean, kind: xorToggle},
		{field: fieldSwingV, kind: swingEdgeToggle},
	},
	ProtocolCoronaAC: {
		{field: fieldSwingV, kind: swingEdgeToggle},
	},
	ProtocolHitachiAC344: {
		{field: fieldSwingV, kind: swingEdgeToggle},
	},
	ProtocolHitachiAC424: {
		{field: fieldSwingV, kind: swingEdgeToggle},
	},
	ProtocolSharpAC: {
		{field: fieldLight, kind: xorToggle},
		{field: fieldSwingV, kind: swingEdgeToggle},
	},
	ProtocolKelon: {
		{field: fieldSwingV, kind: swingEdgeToggle},
		{field: fieldPower, kind: xorToggle},
	},
	ProtocolAirwell: {
		{field: fieldPower, kind: xorToggle},
	},
	ProtocolDaikin64: {
		{field: fieldPower, kind: xorToggle},
	},
	ProtocolPanasonicAC32: {
		{field: fieldPower, kind: xorToggle},
	},
	ProtocolWhirlpoolAC: {
		{field: fieldPower, kind: xorToggle},
	},
	ProtocolMirage: {
		{field: fieldLight, kind: xorToggle, model: MirageKKG29AC1},
		{field: fieldClean, kind: xorToggle},
	},
	ProtocolPanasonicAC: {
		// CKP models use a power mode toggle.
		{field: fieldPower, kind: xorToggle, model: PanasonicCKP},
	},
	ProtocolSamsungAC: {
		{field: fieldBeep, kind: xorToggle},
		{field: fieldClean, kind: xorToggle},
	},
}
