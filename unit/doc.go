// Package unit provides the catalog of electrical units for fixed
// point values.
//
// Each unit is an empty struct implementing fixedpoint.Spec, so the
// scale, precision and symbol are fixed at the type level and a value
// carries nothing but its raw integer. The catalog covers the
// quantities read from a three phase meter:
//
//	| Unit         | Scale | Precision | Symbol |
//	|--------------|-------|-----------|--------|
//	| Volt         |    10 |         1 | V      |
//	| PreciseVolt  |  1000 |         3 | V      |
//	| Amp          |    10 |         1 | A      |
//	| Watt         |     1 |         0 | W      |
//	| KiloWatt     |    10 |         1 | kW     |
//	| KiloWattHour |   100 |         2 | kWh    |
//	| CentiOhm     |  1000 |         3 | cΩ     |
//	| Celsius      |   100 |         2 | °C     |
//
// Named aliases (Voltage, Current, Power, Energy, ...) and exact
// integer constructors are provided for each unit. The constructors
// take an integer already at the unit's scale and store it directly,
// with no float round trip; constructing through the float path with a
// mismatched scale is lossy.
//
// The only cross unit conversion is ToKiloWatts. Adding another means
// writing an explicit mapping, not a generic scale ratio, so that
// incompatible physical quantities never convert by accident.
package unit
