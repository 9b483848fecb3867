// Package thermcal estimates the thermal-compensation coefficient ("gantry
// factor") that corrects a 3D printer's measured vertical tool position for
// frame expansion caused by temperature changes.
//
// The estimation is a two-stage procedure over a time series of homing
// samples paired with bed and frame temperature readings:
//
//  1. Raw encoder positions become a physical displacement series relative
//     to the first sample (package sample).
//  2. A fixed physical expansion model, evaluated at unit gain, predicts a
//     preview compensation offset per sample; the slope of an ordinary
//     least squares regression of observed displacement on these offsets is
//     the calibrated gantry factor (package compensate).
//
// An independent diagnostic fit regresses displacement on both temperatures
// to report how well a two-temperature additive model explains the drift
// (package drift). Both fits specialize the same OLS primitive (package
// regression).
//
// # Basic Usage
//
//	ds, err := logfile.Read("homing.csv.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	series, err := sample.Ingest(ds.Records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	est, err := thermcal.Calibrate(series, compensate.DefaultConfig(),
//	    compensate.ReferenceWindow{Start: 0, End: 5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("gantry_factor = %.4f (R²=%.4f)\n", est.Slope, est.RSquared)
//
// All computations are pure functions over immutable series: deterministic,
// free of shared state, and safe to run concurrently over independent
// datasets.
package thermcal

import (
	"github.com/gantrylab/thermcal/compensate"
	"github.com/gantrylab/thermcal/sample"
)

// Calibrate runs the two-stage gantry factor estimation over every sample in
// the series: it evaluates the unit-gain physical model against the
// reference window and regresses observed displacement on the resulting
// preview offsets.
//
// Callers wanting the regression restricted to a thermally stable window
// should pass a sliced series, or use compensate.PreviewOffsets and
// compensate.EstimateGantryFactor directly over the subset of their choice.
func Calibrate(s sample.Series, cfg compensate.Config, win compensate.ReferenceWindow) (*compensate.Estimate, error) {
	offsets, err := compensate.PreviewOffsets(s, cfg, win)
	if err != nil {
		return nil, err
	}

	return compensate.EstimateGantryFactor(s.Displacements(), offsets)
}
