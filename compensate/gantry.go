package compensate

import (
	"fmt"

	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/regression"
)

// Estimate is the output of the gantry factor regression.
type Estimate struct {
	// Slope is the calibrated gantry factor: the scalar by which the
	// unit-gain compensation model must be multiplied to match observed
	// displacement.
	Slope float64
	// Intercept absorbs any unmodeled constant bias.
	Intercept float64
	// SlopeStdErr is the standard error of the slope.
	SlopeStdErr float64
	// RSquared is the coefficient of determination of the regression.
	RSquared float64
}

// String returns a compact summary of the estimate.
func (e *Estimate) String() string {
	return fmt.Sprintf("Estimate{gantry_factor: %.4f ± %.4f, R²: %.4f}",
		e.Slope, e.SlopeStdErr, e.RSquared)
}

// EstimateGantryFactor regresses observed displacement on the unit-gain
// preview offsets by simple ordinary least squares:
//
//	displacement ≈ α + γ·offset
//
// The slope γ is the gantry factor. Callers restrict both slices to the
// subset they want fitted, e.g. a thermally stable window; the slices must
// be aligned and of equal length.
//
// Fails with errs.ErrDegenerateRegression when fewer than two pairs are
// given or when the offsets are constant across the subset, leaving the
// slope undefined. The computation is a single deterministic pass; there
// are no retries.
func EstimateGantryFactor(displacement, offsets []float64) (*Estimate, error) {
	if len(displacement) != len(offsets) {
		return nil, fmt.Errorf("mismatched lengths: %d displacements vs %d offsets",
			len(displacement), len(offsets))
	}
	if len(offsets) < 2 {
		return nil, fmt.Errorf("%w: %d samples", errs.ErrDegenerateRegression, len(offsets))
	}
	if constant(offsets) {
		return nil, fmt.Errorf("%w: preview offset has zero variance", errs.ErrDegenerateRegression)
	}

	res, err := regression.Fit(displacement, offsets)
	if err != nil {
		return nil, err
	}

	return &Estimate{
		Slope:       res.Coefficients[1],
		Intercept:   res.Coefficients[0],
		SlopeStdErr: res.StdErrs[1],
		RSquared:    res.RSquared,
	}, nil
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}
