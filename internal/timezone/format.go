package timezone

import "time"

// ===============================
// Formatação para exibição
// ===============================

// Preset de formatação — a UI nunca refaz a conta de fuso.
type Preset string

const (
	PresetShort    Preset = "short"   // 02/01/2006 15:04
	PresetMedium   Preset = "medium"  // 02 Jan 2006 15:04
	PresetLong     Preset = "long"    // Monday, 02 January 2006 15:04 MST
	PresetDateOnly Preset = "date"    // 2006-01-02
	PresetTime12h  Preset = "time12h" // 3:04 PM
	PresetTime24h  Preset = "time24h" // 15:04
)

var presetLayouts = map[Preset]string{
	PresetShort:    "02/01/2006 15:04",
	PresetMedium:   "02 Jan 2006 15:04",
	PresetLong:     "Monday, 02 January 2006 15:04 MST",
	PresetDateOnly: "2006-01-02",
	PresetTime12h:  "3:04 PM",
	PresetTime24h:  "15:04",
}

// FormatInZone renderiza o instante como texto de relógio na zona dada.
func FormatInZone(t time.Time, tz string, preset Preset) (string, error) {
	loc, err := Location(tz)
	if err != nil {
		return "", err
	}

	layout, ok := presetLayouts[preset]
	if !ok {
		layout = presetLayouts[PresetMedium]
	}

	return t.In(loc).Format(layout), nil
}

func FormatDateOnly(t time.Time, tz string) (string, error) {
	return FormatInZone(t, tz, PresetDateOnly)
}

func FormatTimeOnly(t time.Time, tz string, twelveHour bool) (string, error) {
	if twelveHour {
		return FormatInZone(t, tz, PresetTime12h)
	}
	return FormatInZone(t, tz, PresetTime24h)
}
