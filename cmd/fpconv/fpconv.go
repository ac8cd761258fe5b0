package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cuprous-au/fixedpoint"
	"github.com/cuprous-au/fixedpoint/unit"
)

type config struct {
	unit  string
	debug bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run() (err error) {

	// Parse command line options
	var cfg config

	flag.StringVar(&cfg.unit, "unit", "V", "Unit of the input values (V, V3, A, W, kW, kWh, cOhm, C)")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	log := newLogger(cfg.debug)
	defer func() {
		_ = log.Sync()
	}()

	for _, arg := range flag.Args() {
		if err := inspect(log, cfg.unit, arg); err != nil {
			log.Errorf("failed to inspect %q: %s", arg, err)
			return err
		}
	}

	return nil
}

// inspect parses text as a value of the named unit and prints its
// display, debug and wire forms. Watts additionally print their
// kilowatt conversion.
func inspect(log *zap.SugaredLogger, unitName, text string) error {
	switch unitName {
	case "V":
		_, err := show[unit.Volt](log, text)
		return err
	case "V3":
		_, err := show[unit.PreciseVolt](log, text)
		return err
	case "A":
		_, err := show[unit.Amp](log, text)
		return err
	case "W":
		p, err := show[unit.Watt](log, text)
		if err != nil {
			return err
		}

		kw := unit.ToKiloWatts(p)
		fmt.Printf("%s %s\t%#v\n", kw, unit.KiloWatt{}.Symbol(), kw)

		return nil
	case "kW":
		_, err := show[unit.KiloWatt](log, text)
		return err
	case "kWh":
		_, err := show[unit.KiloWattHour](log, text)
		return err
	case "cOhm":
		_, err := show[unit.CentiOhm](log, text)
		return err
	case "C":
		_, err := show[unit.Celsius](log, text)
		return err
	}

	return fmt.Errorf("unknown unit %q", unitName)
}

func show[U fixedpoint.Spec](log *zap.SugaredLogger, text string) (v fixedpoint.Value[U], err error) {
	var u U

	v, err = fixedpoint.Parse[U](text)
	if err != nil {
		return v, err
	}

	wire, err := v.MarshalJSON()
	if err != nil {
		return v, err
	}

	log.Debugf("parsed %q as %#v", text, v)
	fmt.Printf("%s %s\t%#v\t%s\n", v, u.Symbol(), v, wire)

	return v, nil
}

// newLogger instantiates the tool's logger.
func newLogger(debug bool) *zap.SugaredLogger {

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.DisableStacktrace = true
	logCfg.DisableCaller = level > zap.DebugLevel
	logCfg.Level.SetLevel(level)
	zapLogger, err := logCfg.Build()
	if err != nil {
		fmt.Printf("failed to instantiate logger: %s\n", err)
		os.Exit(1)
	}

	return zapLogger.Sugar()
}
