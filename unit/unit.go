package unit

import "github.com/cuprous-au/fixedpoint"

// Volt represents voltage in tenths of a volt.
type Volt struct{}

func (Volt) Scale() fixedpoint.Float { return 10 }
func (Volt) Symbol() string { return "V" }
func (Volt) Precision() int { return 1 }

// PreciseVolt represents low voltages in thousandths of a volt.
type PreciseVolt struct{}

func (PreciseVolt) Scale() fixedpoint.Float { return 1000 }
func (PreciseVolt) Symbol() string { return "V" }
func (PreciseVolt) Precision() int { return 3 }

// Amp represents current in tenths of an ampere.
type Amp struct{}

func (Amp) Scale() fixedpoint.Float { return 10 }
func (Amp) Symbol() string { return "A" }
func (Amp) Precision() int { return 1 }

// Watt represents power in whole watts.
type Watt struct{}

func (Watt) Scale() fixedpoint.Float { return 1 }
func (Watt) Symbol() string { return "W" }
func (Watt) Precision() int { return 0 }

// KiloWatt represents power in tenths of a kilowatt.
type KiloWatt struct{}

func (KiloWatt) Scale() fixedpoint.Float { return 10 }
func (KiloWatt) Symbol() string { return "kW" }
func (KiloWatt) Precision() int { return 1 }

// KiloWattHour represents energy in hundredths of a kilowatt hour.
type KiloWattHour struct{}

func (KiloWattHour) Scale() fixedpoint.Float { return 100 }
func (KiloWattHour) Symbol() string { return "kWh" }
func (KiloWattHour) Precision() int { return 2 }

// CentiOhm represents resistance in thousandths of a centiohm.
type CentiOhm struct{}

func (CentiOhm) Scale() fixedpoint.Float { return 1000 }
func (CentiOhm) Symbol() string { return "cΩ" }
func (CentiOhm) Precision() int { return 3 }

// Celsius represents temperature in hundredths of a degree.
type Celsius struct{}

func (Celsius) Scale() fixedpoint.Float { return 100 }
func (Celsius) Symbol() string { return "°C" }
func (Celsius) Precision() int { return 2 }
