// Package drift fits the additive two-temperature model that explains
// vertical displacement as a linear function of bed and frame temperature.
//
// The fit is purely diagnostic: it reports how well the additive model
// explains observed drift and does not feed into gantry factor estimation.
package drift

import (
	"fmt"

	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/regression"
	"github.com/gantrylab/thermcal/sample"
)

// modelParams is the number of fitted parameters: intercept plus the two
// temperature coefficients.
const modelParams = 3

// Model is the result of regressing displacement on bed and frame
// temperature:
//
//	displacement ≈ Intercept + BedCoeff·bed_t + FrameCoeff·frame_t
//
// Fitted and Residuals are aligned with the input series and satisfy
// displacement[i] == Fitted[i] + Residuals[i] exactly. StdErrs holds the
// standard error of the intercept, bed coefficient, and frame coefficient,
// in that order.
type Model struct {
	Intercept  float64
	BedCoeff   float64
	FrameCoeff float64
	Fitted     []float64
	Residuals  []float64
	RSquared   float64
	StdErrs    []float64
}

// String returns a compact human-readable summary of the fitted model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{displacement = %.6f + %.6f·bed_t + %.6f·frame_t, R²: %.4f}",
		m.Intercept, m.BedCoeff, m.FrameCoeff, m.RSquared)
}

// Fit regresses the series' displacement on its bed and frame temperatures
// by ordinary least squares, using every sample it is given. Any windowing,
// such as excluding startup or shutdown segments, is the caller's
// responsibility and is expressed by which samples are in the series.
//
// Fit fails with errs.ErrUnderdeterminedModel for fewer than three samples
// and with errs.ErrSingularDesignMatrix when the two temperature columns are
// perfectly collinear. Coefficient sign and magnitude are not validated:
// any finite values are a valid fit, only numerical degeneracy is an error.
func Fit(s sample.Series) (*Model, error) {
	if s.Len() == 0 {
		return nil, errs.ErrEmptyInput
	}
	if s.Len() < modelParams {
		return nil, errs.Underdetermined(s.Len(), modelParams)
	}

	res, err := regression.Fit(s.Displacements(), s.BedTemps(), s.FrameTemps())
	if err != nil {
		return nil, err
	}

	return &Model{
		Intercept:  res.Coefficients[0],
		BedCoeff:   res.Coefficients[1],
		FrameCoeff: res.Coefficients[2],
		Fitted:     res.Fitted,
		Residuals:  res.Residuals,
		RSquared:   res.RSquared,
		StdErrs:    res.StdErrs,
	}, nil
}
