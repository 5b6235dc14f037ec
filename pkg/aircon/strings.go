package aircon

import (
	"fmt"
	"strconv"
	"strings"
)

// Protocol names follow the conventional uppercase spelling used by IR signal
// databases, so captures and configs can be pasted in verbatim.
var protocolNames = map[Protocol]string{
	ProtocolUnknown:            "UNKNOWN",
	ProtocolAirton:             "AIRTON",
	ProtocolAirwell:            "AIRWELL",
	ProtocolAmcor:              "AMCOR",
	ProtocolArgo:               "ARGO",
	ProtocolBosch144:           "BOSCH144",
	ProtocolCarrierAC64:        "CARRIER_AC64",
	ProtocolCoolix:             "COOLIX",
	ProtocolCoronaAC:           "CORONA_AC",
	ProtocolDaikin:             "DAIKIN",
	ProtocolDaikin128:          "DAIKIN128",
	ProtocolDaikin152:          "DAIKIN152",
	ProtocolDaikin160:          "DAIKIN160",
	ProtocolDaikin176:          "DAIKIN176",
	ProtocolDaikin2:            "DAIKIN2",
	ProtocolDaikin216:          "DAIKIN216",
	ProtocolDaikin64:           "DAIKIN64",
	ProtocolDelonghiAC:         "DELONGHI_AC",
	ProtocolEcoclim:            "ECOCLIM",
	ProtocolElectraAC:          "ELECTRA_AC",
	ProtocolFujitsuAC:          "FUJITSU_AC",
	ProtocolGoodweather:        "GOODWEATHER",
	ProtocolGree:               "GREE",
	ProtocolHaierAC:            "HAIER_AC",
	ProtocolHaierAC160:         "HAIER_AC160",
	ProtocolHaierAC176:         "HAIER_AC176",
	ProtocolHaierACYRW02:       "HAIER_AC_YRW02",
	ProtocolHitachiAC:          "HITACHI_AC",
	ProtocolHitachiAC1:         "HITACHI_AC1",
	ProtocolHitachiAC264:       "HITACHI_AC264",
	ProtocolHitachiAC296:       "HITACHI_AC296",
	ProtocolHitachiAC344:       "HITACHI_AC344",
	ProtocolHitachiAC424:       "HITACHI_AC424",
	ProtocolKelon:              "KELON",
	ProtocolKelvinator:         "KELVINATOR",
	ProtocolLG:                 "LG",
	ProtocolLG2:                "LG2",
	ProtocolMidea:              "MIDEA",
	ProtocolMirage:             "MIRAGE",
	ProtocolMitsubishiAC:       "MITSUBISHI_AC",
	ProtocolMitsubishi112:      "MITSUBISHI112",
	ProtocolMitsubishi136:      "MITSUBISHI136",
	ProtocolMitsubishiHeavy88:  "MITSUBISHI_HEAVY_88",
	ProtocolMitsubishiHeavy152: "MITSUBISHI_HEAVY_152",
	ProtocolNeoclima:           "NEOCLIMA",
	ProtocolPanasonicAC:        "PANASONIC_AC",
	ProtocolPanasonicAC32:      "PANASONIC_AC32",
	ProtocolRhoss:              "RHOSS",
	ProtocolSamsungAC:          "SAMSUNG_AC",
	ProtocolSanyoAC:            "SANYO_AC",
	ProtocolSanyoAC88:          "SANYO_AC88",
	ProtocolSharpAC:            "SHARP_AC",
	ProtocolTCL112AC:           "TCL112AC",
	ProtocolTechnibelAC:        "TECHNIBEL_AC",
	ProtocolTeco:               "TECO",
	ProtocolTeknopoint:         "TEKNOPOINT",
	ProtocolToshibaAC:          "TOSHIBA_AC",
	ProtocolTranscold:          "TRANSCOLD",
	ProtocolTrotec:             "TROTEC",
	ProtocolTrotec3550:         "TROTEC_3550",
	ProtocolTruma:              "TRUMA",
	ProtocolVestelAC:           "VESTEL_AC",
	ProtocolVoltas:             "VOLTAS",
	ProtocolWhirlpoolAC:        "WHIRLPOOL_AC",
	ProtocolYork:               "YORK",
}

var protocolValues = func() map[string]Protocol {
	m := make(map[string]Protocol, len(protocolNames))
	for p, name := range protocolNames {
		m[name] = p
	}
	return m
}()

// String returns the conventional uppercase protocol name.
func (p Protocol) String() string {
	if s, ok := protocolNames[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseProtocol maps a protocol name to its Protocol value, case-insensitively.
func ParseProtocol(s string) (Protocol, bool) {
	p, ok := protocolValues[strings.ToUpper(strings.TrimSpace(s))]
	return p, ok
}

// MarshalText renders the protocol name.
func (p Protocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a protocol name.
func (p *Protocol) UnmarshalText(text []byte) error {
	v, ok := ParseProtocol(string(text))
	if !ok {
		return fmt.Errorf("unknown protocol %q", string(text))
	}
	*p = v
	return nil
}

// --- Mode ---

func modeFromString(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "automatic":
		return ModeAuto, true
	case "off", "stop":
		return ModeOff, true
	case "cool", "cooling":
		return ModeCool, true
	case "heat", "heating":
		return ModeHeat, true
	case "dry", "drying", "dehumidify":
		return ModeDry, true
	case "fan", "fanonly", "fan_only", "fan-only", "fan only":
		return ModeFan, true
	}
	return ModeOff, false
}

// ParseMode maps a human string to a Mode, accepting common aliases.
// Unrecognized input returns def.
func ParseMode(s string, def Mode) Mode {
	if m, ok := modeFromString(s); ok {
		return m
	}
	return def
}

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeAuto:
		return "auto"
	case ModeCool:
		return "cool"
	case ModeHeat:
		return "heat"
	case ModeDry:
		return "dry"
	case ModeFan:
		return "fan"
	}
	return "unknown"
}

// HVACString is String except ModeFan renders as "fan_only", the spelling
// home-automation front ends expect.
func (m Mode) HVACString() string {
	if m == ModeFan {
		return "fan_only"
	}
	return m.String()
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	v, ok := modeFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown mode %q", string(text))
	}
	*m = v
	return nil
}

// --- FanSpeed ---

func fanFromString(s string) (FanSpeed, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "automatic":
		return FanAuto, true
	case "min", "minimum", "lowest":
		return FanMin, true
	case "low":
		return FanLow, true
	case "med", "medium", "mid":
		return FanMedium, true
	case "medium-high", "medhigh", "medium high", "mediumhigh":
		return FanMediumHigh, true
	case "high", "hi":
		return FanHigh, true
	case "max", "maximum", "highest", "fast":
		return FanMax, true
	}
	return FanAuto, false
}

// ParseFanSpeed maps a human string to a FanSpeed, accepting common aliases.
// Unrecognized input returns def.
func ParseFanSpeed(s string, def FanSpeed) FanSpeed {
	if f, ok := fanFromString(s); ok {
		return f
	}
	return def
}

func (f FanSpeed) String() string {
	switch f {
	case FanAuto:
		return "auto"
	case FanMin:
		return "min"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanMediumHigh:
		return "medium-high"
	case FanHigh:
		return "high"
	case FanMax:
		return "max"
	}
	return "unknown"
}

func (f FanSpeed) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FanSpeed) UnmarshalText(text []byte) error {
	v, ok := fanFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown fan speed %q", string(text))
	}
	*f = v
	return nil
}

// --- SwingV ---

func swingVFromString(s string) (SwingV, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "no", "stop":
		return SwingVOff, true
	case "auto", "automatic", "on", "swing":
		return SwingVAuto, true
	case "highest", "max", "maximum", "top", "up":
		return SwingVHighest, true
	case "high", "hi":
		return SwingVHigh, true
	case "upper-middle", "upper middle", "uppermiddle", "upper-mid":
		return SwingVUpperMiddle, true
	case "mid", "middle", "med", "centre", "center":
		return SwingVMiddle, true
	case "low":
		return SwingVLow, true
	case "lowest", "min", "minimum", "bottom", "down":
		return SwingVLowest, true
	}
	return SwingVOff, false
}

// ParseSwingV maps a human string to a SwingV, accepting common aliases.
// Unrecognized input returns def.
func ParseSwingV(s string, def SwingV) SwingV {
	if v, ok := swingVFromString(s); ok {
		return v
	}
	return def
}

func (v SwingV) String() string {
	switch v {
	case SwingVOff:
		return "off"
	case SwingVAuto:
		return "auto"
	case SwingVHighest:
		return "highest"
	case SwingVHigh:
		return "high"
	case SwingVUpperMiddle:
		return "upper-middle"
	case SwingVMiddle:
		return "middle"
	case SwingVLow:
		return "low"
	case SwingVLowest:
		return "lowest"
	}
	return "unknown"
}

func (v SwingV) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *SwingV) UnmarshalText(text []byte) error {
	sv, ok := swingVFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown vertical swing %q", string(text))
	}
	*v = sv
	return nil
}

// --- SwingH ---

func swingHFromString(s string) (SwingH, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "no", "stop":
		return SwingHOff, true
	case "auto", "automatic", "on", "swing":
		return SwingHAuto, true
	case "left-max", "left max", "leftmax", "max left", "maxleft", "far left", "farleft":
		return SwingHLeftMax, true
	case "left":
		return SwingHLeft, true
	case "mid", "middle", "med", "centre", "center":
		return SwingHMiddle, true
	case "right":
		return SwingHRight, true
	case "right-max", "right max", "rightmax", "max right", "maxright", "far right", "farright":
		return SwingHRightMax, true
	case "wide":
		return SwingHWide, true
	}
	return SwingHOff, false
}

// ParseSwingH maps a human string to a SwingH, accepting common aliases.
// Unrecognized input returns def.
func ParseSwingH(s string, def SwingH) SwingH {
	if v, ok := swingHFromString(s); ok {
		return v
	}
	return def
}

func (h SwingH) String() string {
	switch h {
	case SwingHOff:
		return "off"
	case SwingHAuto:
		return "auto"
	case SwingHLeftMax:
		return "left-max"
	case SwingHLeft:
		return "left"
	case SwingHMiddle:
		return "middle"
	case SwingHRight:
		return "right"
	case SwingHRightMax:
		return "right-max"
	case SwingHWide:
		return "wide"
	}
	return "unknown"
}

func (h SwingH) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *SwingH) UnmarshalText(text []byte) error {
	sh, ok := swingHFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown horizontal swing %q", string(text))
	}
	*h = sh
	return nil
}

// --- Command ---

func commandFromString(s string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "control":
		return CommandControl, true
	case "sensor-temp-report", "sensor temp report", "ifeel report", "ifeel":
		return CommandSensorTempReport, true
	case "timer", "set timer", "set-timer":
		return CommandTimer, true
	case "config":
		return CommandConfig, true
	}
	return CommandControl, false
}

// ParseCommand maps a human string to a Command, accepting common aliases.
// Unrecognized input returns def.
func ParseCommand(s string, def Command) Command {
	if c, ok := commandFromString(s); ok {
		return c
	}
	return def
}

func (c Command) String() string {
	switch c {
	case CommandControl:
		return "control"
	case CommandSensorTempReport:
		return "sensor-temp-report"
	case CommandTimer:
		return "timer"
	case CommandConfig:
		return "config"
	}
	return "unknown"
}

func (c Command) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Command) UnmarshalText(text []byte) error {
	v, ok := commandFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown command %q", string(text))
	}
	*c = v
	return nil
}

// --- Model names ---

// ModelName returns the marketing name of a remote model within the given
// protocol family, or "" if the combination has no recorded name.
func ModelName(p Protocol, m Model) string {
	switch p {
	case ProtocolGree:
		switch m {
		case GreeYAW1F:
			return "YAW1F"
		case GreeYBOFB:
			return "YBOFB"
		case GreeYX1FSF:
			return "YX1FSF"
		}
	case ProtocolHaierAC176:
		switch m {
		case HaierV9014557A:
			return "V9014557-A"
		case HaierV9014557B:
			return "V9014557-B"
		}
	case ProtocolHitachiAC1:
		switch m {
		case HitachiRLT0541HTAA:
			return "R-LT0541-HTA-A"
		case HitachiRLT0541HTAB:
			return "R-LT0541-HTA-B"
		}
	case ProtocolFujitsuAC:
		switch m {
		case FujitsuARRAH2E:
			return "ARRAH2E"
		case FujitsuARDB1:
			return "ARDB1"
		case FujitsuARREB1E:
			return "ARREB1E"
		case FujitsuARJW2:
			return "ARJW2"
		case FujitsuARRY4:
			return "ARRY4"
		case FujitsuARREW4E:
			return "ARREW4E"
		}
	case ProtocolLG, ProtocolLG2:
		switch m {
		case LGGE6711AR2853M:
			return "GE6711AR2853M"
		case LGAKB75215403:
			return "AKB75215403"
		case LGAKB74955603:
			return "AKB74955603"
		case LGAKB73757604:
			return "AKB73757604"
		case LG6711A20083V:
			return "LG6711A20083V"
		}
	case ProtocolPanasonicAC:
		switch m {
		case PanasonicLKE:
			return "LKE"
		case PanasonicNKE:
			return "NKE"
		case PanasonicDKE:
			return "DKE"
		case PanasonicJKE:
			return "JKE"
		case PanasonicCKP:
			return "CKP"
		case PanasonicRKR:
			return "RKR"
		}
	case ProtocolSharpAC:
		switch m {
		case SharpA907:
			return "A907"
		case SharpA705:
			return "A705"
		case SharpA903:
			return "A903"
		}
	case ProtocolTCL112AC:
		switch m {
		case TCLTAC09CHSD:
			return "TAC09CHSD"
		case TCLGZ055BE1:
			return "GZ055BE1"
		}
	case ProtocolVoltas:
		if m == Voltas122LZF {
			return "122LZF"
		}
	case ProtocolWhirlpoolAC:
		switch m {
		case WhirlpoolDG11J13A:
			return "DG11J13A"
		case WhirlpoolDG11J191:
			return "DG11J191"
		}
	case ProtocolMirage:
		switch m {
		case MirageKKG9AC1:
			return "KKG9AC1"
		case MirageKKG29AC1:
			return "KKG29AC1"
		}
	case ProtocolArgo:
		switch m {
		case ArgoWREM2:
			return "WREM2"
		case ArgoWREM3:
			return "WREM3"
		}
	}
	return ""
}

// ParseModel maps a remote model name to its Model value. Model names are
// unique across protocol families, so no protocol is needed. Plain integers
// are accepted as-is; anything else unrecognized returns def.
func ParseModel(s string, def Model) Model {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YAW1F":
		return GreeYAW1F
	case "YBOFB":
		return GreeYBOFB
	case "YX1FSF":
		return GreeYX1FSF
	case "V9014557-A", "V9014557A":
		return HaierV9014557A
	case "V9014557-B", "V9014557B":
		return HaierV9014557B
	case "R-LT0541-HTA-A", "RLT0541HTAA":
		return HitachiRLT0541HTAA
	case "R-LT0541-HTA-B", "RLT0541HTAB":
		return HitachiRLT0541HTAB
	case "ARRAH2E":
		return FujitsuARRAH2E
	case "ARDB1":
		return FujitsuARDB1
	case "ARREB1E":
		return FujitsuARREB1E
	case "ARJW2":
		return FujitsuARJW2
	case "ARRY4":
		return FujitsuARRY4
	case "ARREW4E":
		return FujitsuARREW4E
	case "GE6711AR2853M":
		return LGGE6711AR2853M
	case "AKB75215403":
		return LGAKB75215403
	case "AKB74955603":
		return LGAKB74955603
	case "AKB73757604":
		return LGAKB73757604
	case "LG6711A20083V":
		return LG6711A20083V
	case "LKE", "PANASONICLKE":
		return PanasonicLKE
	case "NKE", "PANASONICNKE":
		return PanasonicNKE
	case "DKE", "PANASONICDKE":
		return PanasonicDKE
	case "JKE", "PANASONICJKE":
		return PanasonicJKE
	case "CKP", "PANASONICCKP":
		return PanasonicCKP
	case "RKR", "PANASONICRKR":
		return PanasonicRKR
	case "A907":
		return SharpA907
	case "A705":
		return SharpA705
	case "A903":
		return SharpA903
	case "TAC09CHSD":
		return TCLTAC09CHSD
	case "GZ055BE1":
		return TCLGZ055BE1
	case "122LZF":
		return Voltas122LZF
	case "DG11J13A", "DG11J1-3A":
		return WhirlpoolDG11J13A
	case "DG11J191", "DG11J1-91":
		return WhirlpoolDG11J191
	case "KKG9AC1":
		return MirageKKG9AC1
	case "KKG29AC1":
		return MirageKKG29AC1
	case "WREM2":
		return ArgoWREM2
	case "WREM3":
		return ArgoWREM3
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return Model(n)
	}
	return def
}

// --- Bool and display helpers ---

// OnOff renders a boolean the way remote displays label it.
func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// ParseBool interprets a human on/off string. Unrecognized input returns def.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "yes", "true":
		return true
	case "off", "0", "no", "false":
		return false
	}
	return def
}

// String renders the full state on one line for logs and decode summaries.
func (s State) String() string {
	unit := "C"
	if !s.Celsius {
		unit = "F"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Protocol: %s", s.Protocol)
	if name := ModelName(s.Protocol, s.Model); name != "" {
		fmt.Fprintf(&b, ", Model: %d (%s)", s.Model, name)
	} else if s.Model != ModelUnset {
		fmt.Fprintf(&b, ", Model: %d", s.Model)
	}
	fmt.Fprintf(&b, ", Power: %s, Mode: %s, Temp: %.1f%s, Fan: %s, SwingV: %s, SwingH: %s",
		OnOff(s.Power), s.Mode, s.Degrees, unit, s.Fan, s.SwingV, s.SwingH)
	fmt.Fprintf(&b, ", Quiet: %s, Turbo: %s, Econo: %s, Light: %s, Filter: %s, Clean: %s, Beep: %s",
		OnOff(s.Quiet), OnOff(s.Turbo), OnOff(s.Econo), OnOff(s.Light),
		OnOff(s.Filter), OnOff(s.Clean), OnOff(s.Beep))
	fmt.Fprintf(&b, ", Sleep: %d", s.Sleep)
	if s.Clock >= 0 {
		fmt.Fprintf(&b, ", Clock: %02d:%02d", s.Clock/60, s.Clock%60)
	}
	if s.Command != CommandControl {
		fmt.Fprintf(&b, ", Command: %s", s.Command)
	}
	if s.SensorTemp != NoTempValue {
		fmt.Fprintf(&b, ", Sensor Temp: %.1f%s", s.SensorTemp, unit)
	}
	return b.String()
}
