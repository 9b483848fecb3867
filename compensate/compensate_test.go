package compensate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/sample"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func seriesWithFrameTemps(t *testing.T, temps []float64) sample.Series {
	t.Helper()

	records := make([]sample.Record, len(temps))
	for i, ft := range temps {
		records[i] = sample.Record{
			RawPosition: i64(int64(1000 + i)),
			BedTemp:     f64(40),
			FrameTemp:   f64(ft),
			BedTarget:   f64(60),
		}
	}

	s, err := sample.Ingest(records)
	require.NoError(t, err)

	return s
}

func TestReferenceTemperature(t *testing.T) {
	s := seriesWithFrameTemps(t, []float64{25, 26, 27, 28})

	ref, err := ReferenceTemperature(s, ReferenceWindow{Start: 0, End: 2})
	require.NoError(t, err)
	assert.InDelta(t, 25.5, ref, 1e-12)
}

func TestReferenceTemperatureSingleSample(t *testing.T) {
	s := seriesWithFrameTemps(t, []float64{25, 26, 27})

	ref, err := ReferenceTemperature(s, ReferenceWindow{Start: 1, End: 2})
	require.NoError(t, err)
	assert.Equal(t, 26.0, ref)
}

func TestReferenceTemperatureBadWindow(t *testing.T) {
	s := seriesWithFrameTemps(t, []float64{25, 26})

	for _, win := range []ReferenceWindow{
		{Start: -1, End: 1},
		{Start: 0, End: 3},
		{Start: 1, End: 1},
		{Start: 2, End: 1},
	} {
		_, err := ReferenceTemperature(s, win)
		assert.Error(t, err, "window %+v", win)
	}
}

func TestPreviewOffsetsSign(t *testing.T) {
	// Frame warmer than reference must produce a negative (retracting) offset.
	s := seriesWithFrameTemps(t, []float64{25, 25, 30})
	cfg := DefaultConfig()

	offsets, err := PreviewOffsets(s, cfg, ReferenceWindow{Start: 0, End: 2})
	require.NoError(t, err)
	require.Len(t, offsets, 3)

	assert.Equal(t, 0.0, offsets[0])
	assert.Equal(t, 0.0, offsets[1])
	assert.Less(t, offsets[2], 0.0)

	// -1 * 0.530 * 23.4e-6 * 5 * 1000
	assert.InDelta(t, -0.062010, offsets[2], 1e-9)
}

func TestPreviewOffsetsCoolerFrame(t *testing.T) {
	s := seriesWithFrameTemps(t, []float64{30, 30, 25})
	cfg := DefaultConfig()

	offsets, err := PreviewOffsets(s, cfg, ReferenceWindow{Start: 0, End: 2})
	require.NoError(t, err)
	assert.Greater(t, offsets[2], 0.0)
}

func TestPreviewOffsetsEmptySeries(t *testing.T) {
	_, err := PreviewOffsets(sample.Series{}, DefaultConfig(), ReferenceWindow{Start: 0, End: 1})
	assert.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestEstimateGantryFactorRecovery(t *testing.T) {
	// displacement = 3.0 * offset exactly: slope 3, R² 1.
	offsets := []float64{0, -0.01, -0.02, -0.035, -0.05, -0.07}
	displacement := make([]float64, len(offsets))
	for i, o := range offsets {
		displacement[i] = 3.0 * o
	}

	est, err := EstimateGantryFactor(displacement, offsets)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, est.Slope, 1e-9)
	assert.InDelta(t, 0.0, est.Intercept, 1e-9)
	assert.InDelta(t, 1.0, est.RSquared, 1e-12)
}

func TestEstimateGantryFactorAbsorbsBias(t *testing.T) {
	// A constant baseline offset lands in the intercept, not the slope.
	offsets := []float64{0, -0.01, -0.02, -0.03, -0.04}
	displacement := make([]float64, len(offsets))
	for i, o := range offsets {
		displacement[i] = 0.125 + 2.0*o
	}

	est, err := EstimateGantryFactor(displacement, offsets)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, est.Slope, 1e-9)
	assert.InDelta(t, 0.125, est.Intercept, 1e-9)
}

func TestEstimateGantryFactorDegenerate(t *testing.T) {
	// Constant preview offsets leave the slope undefined.
	offsets := []float64{-0.01, -0.01, -0.01}
	displacement := []float64{0.1, 0.2, 0.3}

	_, err := EstimateGantryFactor(displacement, offsets)
	assert.ErrorIs(t, err, errs.ErrDegenerateRegression)
}

func TestEstimateGantryFactorTooFewSamples(t *testing.T) {
	_, err := EstimateGantryFactor([]float64{0.1}, []float64{-0.01})
	assert.ErrorIs(t, err, errs.ErrDegenerateRegression)
}

func TestEstimateGantryFactorMismatchedLengths(t *testing.T) {
	_, err := EstimateGantryFactor([]float64{1, 2, 3}, []float64{1, 2})
	assert.Error(t, err)
}

func TestEndToEndPreviewAndEstimate(t *testing.T) {
	// Build a series whose displacement is exactly 1.8x the unit-gain model.
	const gantryFactor = 1.8
	cfg := DefaultConfig()
	temps := []float64{25, 25, 26, 27.5, 29, 31, 33}

	refWin := ReferenceWindow{Start: 0, End: 2}

	// Offsets at unit gain for the chosen temperatures, relative to T_ref=25.
	records := make([]sample.Record, len(temps))
	const step = sample.DefaultStepDistance
	for i, ft := range temps {
		offset := -1 * cfg.FrameLength * cfg.ThermalCoeff * (ft - 25.0) * cfg.ScaleFactor
		steps := int64(gantryFactor * offset / step)
		records[i] = sample.Record{
			RawPosition: i64(50000 + steps),
			BedTemp:     f64(40),
			FrameTemp:   f64(ft),
			BedTarget:   f64(60),
		}
	}

	s, err := sample.Ingest(records)
	require.NoError(t, err)

	offsets, err := PreviewOffsets(s, cfg, refWin)
	require.NoError(t, err)

	est, err := EstimateGantryFactor(s.Displacements(), offsets)
	require.NoError(t, err)

	// Step quantization bounds the recovery accuracy.
	assert.InDelta(t, gantryFactor, est.Slope, 0.15)
	assert.Greater(t, est.RSquared, 0.95)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.530, cfg.FrameLength)
	assert.Equal(t, 23.4e-6, cfg.ThermalCoeff)
	assert.Equal(t, 1000.0, cfg.ScaleFactor)
}
