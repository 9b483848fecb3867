// Command thermcal estimates a gantry thermal-compensation factor from a
// homing-sample log.
//
// It reads a CSV log (optionally gzip/zstd/s2/lz4 compressed), derives the
// displacement series, fits the diagnostic two-temperature drift model, and
// regresses observed displacement against the unit-gain physical expansion
// model to produce the calibrated gantry factor. The result is emitted as a
// JSON record on stdout or to -output.
//
// Configuration is layered: built-in defaults, then a YAML file named by
// THERMCAL_CONFIG, then THERMCAL_-prefixed environment variables.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gantrylab/thermcal/compensate"
	"github.com/gantrylab/thermcal/drift"
	"github.com/gantrylab/thermcal/internal/logger"
	"github.com/gantrylab/thermcal/logfile"
	"github.com/gantrylab/thermcal/sample"
)

// report is the structured calibration result the CLI emits.
type report struct {
	DatasetFingerprint string       `json:"dataset_fingerprint"`
	Samples            int          `json:"samples"`
	StepDistance       float64      `json:"step_distance"`
	Drift              *driftReport `json:"drift,omitempty"`
	GantryFactor       float64      `json:"gantry_factor"`
	Intercept          float64      `json:"intercept"`
	SlopeStdErr        float64      `json:"slope_std_err"`
	RSquared           float64      `json:"r_squared"`
}

type driftReport struct {
	Intercept  float64 `json:"intercept"`
	BedCoeff   float64 `json:"bed_coefficient"`
	FrameCoeff float64 `json:"frame_coefficient"`
	RSquared   float64 `json:"r_squared"`
}

func main() {
	input := flag.String("input", "", "path to the homing-sample log (CSV, optionally compressed)")
	output := flag.String("output", "-", "path for the JSON result, '-' for stdout")
	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}

	if err := run(*input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "thermcal: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel)

	if input == "" {
		return fmt.Errorf("no input log given, use -input or a positional argument")
	}

	ds, err := logfile.Read(input)
	if err != nil {
		return err
	}
	log.Info("log loaded", "path", input, "records", len(ds.Records),
		"fingerprint", fmt.Sprintf("%016x", ds.Fingerprint))

	series, err := sample.Ingest(ds.Records, sample.WithStepDistance(cfg.StepDistance))
	if err != nil {
		return err
	}

	rep := report{
		DatasetFingerprint: fmt.Sprintf("%016x", ds.Fingerprint),
		Samples:            series.Len(),
		StepDistance:       cfg.StepDistance,
	}

	// Diagnostic only: a degenerate drift fit does not block calibration.
	if model, err := drift.Fit(series); err != nil {
		log.Warn("drift model fit skipped", "error", err)
	} else {
		log.Info("drift model fitted",
			"bed_coefficient", model.BedCoeff,
			"frame_coefficient", model.FrameCoeff,
			"r_squared", model.RSquared)
		rep.Drift = &driftReport{
			Intercept:  model.Intercept,
			BedCoeff:   model.BedCoeff,
			FrameCoeff: model.FrameCoeff,
			RSquared:   model.RSquared,
		}
	}

	compCfg := compensate.Config{
		FrameLength:  cfg.FrameLength,
		ThermalCoeff: cfg.ThermalCoeff,
		ScaleFactor:  cfg.ScaleFactor,
	}
	win := compensate.ReferenceWindow{Start: cfg.RefStart, End: cfg.RefEnd}

	offsets, err := compensate.PreviewOffsets(series, compCfg, win)
	if err != nil {
		return err
	}

	lo, hi, err := fitRange(cfg, series.Len())
	if err != nil {
		return err
	}

	est, err := compensate.EstimateGantryFactor(series.Displacements()[lo:hi], offsets[lo:hi])
	if err != nil {
		return err
	}
	log.Info("gantry factor estimated",
		"gantry_factor", est.Slope,
		"std_err", est.SlopeStdErr,
		"r_squared", est.RSquared)

	rep.GantryFactor = est.Slope
	rep.Intercept = est.Intercept
	rep.SlopeStdErr = est.SlopeStdErr
	rep.RSquared = est.RSquared

	return writeReport(output, &rep)
}

// fitRange resolves the configured fit window against the series length.
// A zero FitEnd means "through the last sample".
func fitRange(cfg *config, n int) (lo, hi int, err error) {
	lo, hi = cfg.FitStart, cfg.FitEnd
	if hi == 0 {
		hi = n
	}
	if lo < 0 || hi > n || lo >= hi {
		return 0, 0, fmt.Errorf("fit window [%d, %d) invalid for %d samples", lo, hi, n)
	}

	return lo, hi, nil
}

func writeReport(output string, rep *report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(output, data, 0o644)
}
