package main

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gantrylab/thermcal/compensate"
	"github.com/gantrylab/thermcal/sample"
)

// config holds the CLI's recognized options: the physical calibration
// constants plus the reference and fit windows.
type config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// StepDistance is the physical distance per encoder step.
	StepDistance float64 `koanf:"step_distance"`

	// FrameLength is the expanding frame member's length, physical units.
	FrameLength float64 `koanf:"frame_length"`

	// ThermalCoeff is the per-degree linear expansion rate.
	ThermalCoeff float64 `koanf:"thermal_coefficient"`

	// ScaleFactor converts the physical model to displacement's scale.
	ScaleFactor float64 `koanf:"scale_factor"`

	// RefStart and RefEnd bound the half-open sample range whose mean frame
	// temperature defines zero delta-temperature.
	RefStart int `koanf:"ref_start"`
	RefEnd   int `koanf:"ref_end"`

	// FitStart and FitEnd bound the half-open sample range the gantry
	// regression is restricted to. FitEnd 0 means "through the last sample".
	FitStart int `koanf:"fit_start"`
	FitEnd   int `koanf:"fit_end"`
}

func defaultConfig() *config {
	return &config{
		LogLevel:     "info",
		StepDistance: sample.DefaultStepDistance,
		FrameLength:  compensate.DefaultFrameLength,
		ThermalCoeff: compensate.DefaultThermalCoeff,
		ScaleFactor:  compensate.DefaultScaleFactor,
		RefStart:     0,
		RefEnd:       1,
		FitStart:     0,
		FitEnd:       0,
	}
}

// loadConfig builds the configuration by layering, lowest precedence first:
//  1. built-in defaults
//  2. YAML file named by THERMCAL_CONFIG, if set
//  3. THERMCAL_-prefixed environment variables (THERMCAL_STEP_DISTANCE, ...)
func loadConfig() (*config, error) {
	k := koanf.New(".")

	if path := os.Getenv("THERMCAL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("THERMCAL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "thermcal_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *defaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.StepDistance <= 0 {
		return nil, errors.New("step_distance must be positive")
	}
	if cfg.FrameLength <= 0 {
		return nil, errors.New("frame_length must be positive")
	}
	if cfg.ScaleFactor == 0 {
		return nil, errors.New("scale_factor must be non-zero")
	}
	if cfg.RefStart < 0 || cfg.RefEnd <= cfg.RefStart {
		return nil, errors.New("reference window must be a non-empty range")
	}

	return &cfg, nil
}
