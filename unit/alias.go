package unit

import "github.com/cuprous-au/fixedpoint"

// Named aliases for the catalog units.
type (
	Voltage     = fixedpoint.Value[Volt]
	LowVoltage  = fixedpoint.Value[PreciseVolt]
	Current     = fixedpoint.Value[Amp]
	Power       = fixedpoint.Value[Watt]
	PowerKW     = fixedpoint.Value[KiloWatt]
	Energy      = fixedpoint.Value[KiloWattHour]
	Resistance  = fixedpoint.Value[CentiOhm]
	Temperature = fixedpoint.Value[Celsius]
)

// Zero values for each alias.
var (
	ZeroVoltage     = Voltage{}
	ZeroLowVoltage  = LowVoltage{}
	ZeroCurrent     = Current{}
	ZeroPower       = Power{}
	ZeroPowerKW     = PowerKW{}
	ZeroEnergy      = Energy{}
	ZeroResistance  = Resistance{}
	ZeroTemperature = Temperature{}
)

// Exact constructors. Each takes an integer already at the unit's
// scale and stores it directly with no float round trip. The suffix
// names the assumed decimal scale: Fix1 is tenths, Fix2 hundredths,
// Fix3 thousandths and Fix0 whole units. The matching extraction is
// the generic Raw method.

// VoltageFix1 constructs a Voltage from an integer at 10x scale.
func VoltageFix1(fix fixedpoint.Fixed) Voltage {
	return fixedpoint.FromRaw[Volt](fix)
}

// LowVoltageFix3 constructs a LowVoltage from an integer at 1000x
// scale.
func LowVoltageFix3(fix fixedpoint.Fixed) LowVoltage {
	return fixedpoint.FromRaw[PreciseVolt](fix)
}

// CurrentFix1 constructs a Current from an integer at 10x scale.
func CurrentFix1(fix fixedpoint.Fixed) Current {
	return fixedpoint.FromRaw[Amp](fix)
}

// PowerFix0 constructs a Power from an integer at 1x scale.
func PowerFix0(fix fixedpoint.Fixed) Power {
	return fixedpoint.FromRaw[Watt](fix)
}

// PowerKWFix1 constructs a PowerKW from an integer at 10x scale.
func PowerKWFix1(fix fixedpoint.Fixed) PowerKW {
	return fixedpoint.FromRaw[KiloWatt](fix)
}

// EnergyFix2 constructs an Energy from an integer at 100x scale.
func EnergyFix2(fix fixedpoint.Fixed) Energy {
	return fixedpoint.FromRaw[KiloWattHour](fix)
}

// ResistanceFix3 constructs a Resistance from an integer at 1000x
// scale.
func ResistanceFix3(fix fixedpoint.Fixed) Resistance {
	return fixedpoint.FromRaw[CentiOhm](fix)
}

// TemperatureFix2 constructs a Temperature from an integer at 100x
// scale.
func TemperatureFix2(fix fixedpoint.Fixed) Temperature {
	return fixedpoint.FromRaw[Celsius](fix)
}

// ToKiloWatts converts power in watts to kilowatts through the
// truncating float path. Values below the kilowatt resolution
// truncate to zero. This helps handle and display larger power
// values.
func ToKiloWatts(p Power) PowerKW {
	return fixedpoint.New[KiloWatt](p.Float() * 0.001)
}
