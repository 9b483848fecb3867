package compensate

import (
	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/sample"
)

// unitGain is the gantry factor the preview model is evaluated at. The
// estimator later derives the multiplier that corrects this unit-gain model.
const unitGain = 1.0

// ReferenceTemperature returns the mean frame temperature over the given
// window. A single-index window degenerates to that sample's reading.
func ReferenceTemperature(s sample.Series, win ReferenceWindow) (float64, error) {
	if s.Len() == 0 {
		return 0, errs.ErrEmptyInput
	}
	if err := win.validate(s.Len()); err != nil {
		return 0, err
	}

	var sum float64
	for i := win.Start; i < win.End; i++ {
		sum += s.At(i).FrameTemp
	}

	return sum / float64(win.End-win.Start), nil
}

// PreviewOffsets computes the unit-gain compensation offset for every sample
// in the series:
//
//	offset[i] = -1 · FrameLength · ThermalCoeff · (frame_t[i] - T_ref) · ScaleFactor
//
// where T_ref is the mean frame temperature over win. This is a closed-form
// elementwise transform with no fitting involved.
func PreviewOffsets(s sample.Series, cfg Config, win ReferenceWindow) ([]float64, error) {
	refTemp, err := ReferenceTemperature(s, win)
	if err != nil {
		return nil, err
	}

	offsets := make([]float64, s.Len())
	for i := range offsets {
		deltaT := s.At(i).FrameTemp - refTemp
		offsets[i] = -1 * cfg.FrameLength * cfg.ThermalCoeff * deltaT * unitGain * cfg.ScaleFactor
	}

	return offsets, nil
}
