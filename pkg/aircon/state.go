// Package aircon defines the canonical, protocol-independent model of an
// air conditioner's settings along with the pure functions that prepare a
// desired state for transmission: normalization, toggle reconciliation and
// change comparison. Nothing in this package touches hardware; frame
// encoding lives with the per-vendor adapters.
package aircon

// Protocol identifies a vendor IR protocol family.
type Protocol int

const (
	ProtocolUnknown Protocol = iota
	ProtocolAirton
	ProtocolAirwell
	ProtocolAmcor
	ProtocolArgo
	ProtocolBosch144
	ProtocolCarrierAC64
	ProtocolCoolix
	ProtocolCoronaAC
	ProtocolDaikin
	ProtocolDaikin128
	ProtocolDaikin152
	ProtocolDaikin160
	ProtocolDaikin176
	ProtocolDaikin2
	ProtocolDaikin216
	ProtocolDaikin64
	ProtocolDelonghiAC
	ProtocolEcoclim
	ProtocolElectraAC
	ProtocolFujitsuAC
	ProtocolGoodweather
	ProtocolGree
	ProtocolHaierAC
	ProtocolHaierAC160
	ProtocolHaierAC176
	ProtocolHaierACYRW02
	ProtocolHitachiAC
	ProtocolHitachiAC1
	ProtocolHitachiAC264
	ProtocolHitachiAC296
	ProtocolHitachiAC344
	ProtocolHitachiAC424
	ProtocolKelon
	ProtocolKelvinator
	ProtocolLG
	ProtocolLG2
	ProtocolMidea
	ProtocolMirage
	ProtocolMitsubishiAC
	ProtocolMitsubishi112
	ProtocolMitsubishi136
	ProtocolMitsubishiHeavy88
	ProtocolMitsubishiHeavy152
	ProtocolNeoclima
	ProtocolPanasonicAC
	ProtocolPanasonicAC32
	ProtocolRhoss
	ProtocolSamsungAC
	ProtocolSanyoAC
	ProtocolSanyoAC88
	ProtocolSharpAC
	ProtocolTCL112AC
	ProtocolTechnibelAC
	ProtocolTeco
	ProtocolTeknopoint
	ProtocolToshibaAC
	ProtocolTranscold
	ProtocolTrotec
	ProtocolTrotec3550
	ProtocolTruma
	ProtocolVestelAC
	ProtocolVoltas
	ProtocolWhirlpoolAC
	ProtocolYork
)

// Mode is the operating mode of an A/C unit.
//
// Changing the mode away from ModeOff does NOT power a unit on; that is what
// the separate power setting is for. ModeOff exists because some front ends
// express "off" as a mode.
type Mode int

const (
	ModeOff Mode = iota
	ModeAuto
	ModeCool
	ModeHeat
	ModeDry
	ModeFan
)

// FanSpeed is the fan speed setting.
type FanSpeed int

const (
	FanAuto FanSpeed = iota
	FanMin
	FanLow
	FanMedium
	FanMediumHigh
	FanHigh
	FanMax
)

// SwingV is the vertical vane position. SwingVAuto means continuous swing.
type SwingV int

const (
	SwingVOff SwingV = iota
	SwingVAuto
	SwingVHighest
	SwingVHigh
	SwingVUpperMiddle
	SwingVMiddle
	SwingVLow
	SwingVLowest
)

// SwingH is the horizontal vane position. SwingHAuto means continuous swing.
type SwingH int

const (
	SwingHOff SwingH = iota
	SwingHAuto
	SwingHLeftMax
	SwingHLeft
	SwingHMiddle
	SwingHRight
	SwingHRightMax
	SwingHWide
)

// Command distinguishes what kind of message a state describes. Almost all
// traffic is CommandControl; the others cover remotes that send separate
// sensor-temperature reports, timer programming or configuration frames.
type Command int

const (
	CommandControl Command = iota
	CommandSensorTempReport
	CommandTimer
	CommandConfig
)

// Model selects a remote variant within a protocol family. Model numbers are
// only meaningful relative to a protocol; the same small integers repeat
// across vendors.
type Model int

// ModelUnset means the protocol's default (or only) remote variant.
const ModelUnset Model = -1

// GREE remote models.
const (
	GreeYAW1F Model = iota + 1
	GreeYBOFB
	GreeYX1FSF
)

// HAIER_AC176 remote models.
const (
	HaierV9014557A Model = iota + 1
	HaierV9014557B
)

// HITACHI_AC1 remote models.
const (
	HitachiRLT0541HTAA Model = iota + 1
	HitachiRLT0541HTAB
)

// FUJITSU_AC remote models.
const (
	FujitsuARRAH2E Model = iota + 1
	FujitsuARDB1
	FujitsuARREB1E
	FujitsuARJW2
	FujitsuARRY4
	FujitsuARREW4E
)

// LG / LG2 remote models.
const (
	LGGE6711AR2853M Model = iota + 1
	LGAKB75215403
	LGAKB74955603
	LGAKB73757604
	LG6711A20083V
)

// PANASONIC_AC remote models.
const (
	PanasonicLKE Model = iota + 1
	PanasonicNKE
	PanasonicDKE
	PanasonicJKE
	PanasonicCKP
	PanasonicRKR
)

// SHARP_AC remote models.
const (
	SharpA907 Model = iota + 1
	SharpA705
	SharpA903
)

// TCL112AC remote models.
const (
	TCLTAC09CHSD Model = iota + 1
	TCLGZ055BE1
)

// VOLTAS remote models.
const (
	Voltas122LZF Model = iota + 1
)

// WHIRLPOOL_AC remote models.
const (
	WhirlpoolDG11J13A Model = iota + 1
	WhirlpoolDG11J191
)

// MIRAGE remote models.
const (
	MirageKKG9AC1 Model = iota + 1
	MirageKKG29AC1
)

// ARGO remote models.
const (
	ArgoWREM2 Model = iota + 1
	ArgoWREM3
)

// NoTempValue marks SensorTemp as not provided.
const NoTempValue float32 = -100

const (
	// SleepOff disables sleep mode. Values >= 0 request it; the meaning of
	// the number is protocol specific (minutes of runtime for some remotes,
	// minutes since midnight for others).
	SleepOff = -1
	// ClockUnset means leave the device clock alone.
	ClockUnset = -1
)

// State is the canonical description of everything a remote can ask of an
// A/C unit. It is a plain value; copy it freely.
type State struct {
	Protocol   Protocol `json:"protocol"`
	Model      Model    `json:"model"`
	Power      bool     `json:"power"`
	Mode       Mode     `json:"mode"`
	Degrees    float32  `json:"degrees"`
	Celsius    bool     `json:"celsius"`
	Fan        FanSpeed `json:"fan"`
	SwingV     SwingV   `json:"swingv"`
	SwingH     SwingH   `json:"swingh"`
	Quiet      bool     `json:"quiet"`
	Turbo      bool     `json:"turbo"`
	Econo      bool     `json:"econo"`
	Light      bool     `json:"light"`
	Filter     bool     `json:"filter"`
	Clean      bool     `json:"clean"`
	Beep       bool     `json:"beep"`
	Sleep      int      `json:"sleep"`
	Clock      int      `json:"clock"`
	Command    Command  `json:"command"`
	IFeel      bool     `json:"ifeel"`
	SensorTemp float32  `json:"sensor_temp"`
}

// DefaultState returns the baseline settings every session starts from:
// everything off or automatic, 25 degrees Celsius, timers disabled.
func DefaultState() State {
	return State{
		Protocol:   ProtocolUnknown,
		Model:      ModelUnset,
		Power:      false,
		Mode:       ModeOff,
		Degrees:    25,
		Celsius:    true,
		Fan:        FanAuto,
		SwingV:     SwingVOff,
		SwingH:     SwingHOff,
		Sleep:      SleepOff,
		Clock:      ClockUnset,
		Command:    CommandControl,
		SensorTemp: NoTempValue,
	}
}

// FahrenheitToCelsius converts degrees Fahrenheit to Celsius.
func FahrenheitToCelsius(f float32) float32 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheit converts degrees Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float32) float32 {
	return c*9/5 + 32
}

// InCelsius returns a copy of the state with Degrees and SensorTemp expressed
// in Celsius. Adapters work in Celsius; callers may supply Fahrenheit.
// An unset SensorTemp is left untouched.
func (s State) InCelsius() State {
	if s.Celsius {
		return s
	}
	s.Degrees = FahrenheitToCelsius(s.Degrees)
	if s.SensorTemp != NoTempValue {
		s.SensorTemp = FahrenheitToCelsius(s.SensorTemp)
	}
	s.Celsius = true
	return s
}
