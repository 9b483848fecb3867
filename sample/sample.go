package sample

import (
	"github.com/gantrylab/thermcal/errs"
	"github.com/gantrylab/thermcal/internal/options"
)

// DefaultStepDistance is the physical distance travelled per encoder step.
const DefaultStepDistance = 0.0025

// Field names used in missing-field errors. They mirror the semantic roles
// of the upstream data columns, not any particular serialization.
const (
	FieldRawPosition = "raw_position"
	FieldBedTemp     = "bed_temperature"
	FieldFrameTemp   = "frame_temperature"
	FieldBedTarget   = "bed_target"
)

// Record is one raw observation as produced by a measurement run.
//
// Fields are pointers so the reader can represent absent values; Ingest
// rejects records with any required field missing.
type Record struct {
	// RawPosition is the integer step count from the position encoder.
	RawPosition *int64
	// BedTemp is the measured bed temperature in °C.
	BedTemp *float64
	// FrameTemp is the measured frame temperature in °C.
	FrameTemp *float64
	// BedTarget is the bed's commanded setpoint in °C. Used only for
	// downstream filtering, never by the fits themselves.
	BedTarget *float64
}

// Sample is one fully typed observation with its derived displacement.
type Sample struct {
	// Index is the ordinal position in the sequence, used as a time proxy.
	Index int
	// RawPosition is the integer step count from the position encoder.
	RawPosition int64
	// BedTemp is the measured bed temperature in °C.
	BedTemp float64
	// FrameTemp is the measured frame temperature in °C.
	FrameTemp float64
	// BedTarget is the bed's commanded setpoint in °C.
	BedTarget float64
	// Displacement is the physical vertical deviation relative to the first
	// sample: (RawPosition - RawPosition[0]) * stepDistance.
	Displacement float64
}

// Series is an immutable ordered sequence of samples.
type Series struct {
	samples      []Sample
	stepDistance float64
}

type ingestConfig struct {
	stepDistance float64
}

// Option configures Ingest.
type Option = options.Option[*ingestConfig]

// WithStepDistance overrides the physical distance per encoder step.
func WithStepDistance(d float64) Option {
	return options.NoError(func(cfg *ingestConfig) {
		cfg.stepDistance = d
	})
}

// Ingest converts raw records into a Series, deriving displacement relative
// to the first record's raw position.
//
// Parameters:
//   - records: Ordered raw observations; must be non-empty
//   - opts: Optional overrides, e.g. WithStepDistance
//
// Returns:
//   - Series: Immutable typed sample sequence
//   - error: errs.ErrEmptyInput for zero records, or errs.ErrMissingField
//     (wrapped with the field name and record index) when a required field
//     is absent
//
// Ingest is a purely functional transform: it never modifies the input and
// has no side effects.
func Ingest(records []Record, opts ...Option) (Series, error) {
	if len(records) == 0 {
		return Series{}, errs.ErrEmptyInput
	}

	cfg := &ingestConfig{stepDistance: DefaultStepDistance}
	if err := options.Apply(cfg, opts...); err != nil {
		return Series{}, err
	}

	for i, r := range records {
		switch {
		case r.RawPosition == nil:
			return Series{}, errs.MissingField(FieldRawPosition, i)
		case r.BedTemp == nil:
			return Series{}, errs.MissingField(FieldBedTemp, i)
		case r.FrameTemp == nil:
			return Series{}, errs.MissingField(FieldFrameTemp, i)
		case r.BedTarget == nil:
			return Series{}, errs.MissingField(FieldBedTarget, i)
		}
	}

	origin := *records[0].RawPosition
	samples := make([]Sample, len(records))
	for i, r := range records {
		samples[i] = Sample{
			Index:        i,
			RawPosition:  *r.RawPosition,
			BedTemp:      *r.BedTemp,
			FrameTemp:    *r.FrameTemp,
			BedTarget:    *r.BedTarget,
			Displacement: float64(*r.RawPosition-origin) * cfg.stepDistance,
		}
	}

	return Series{samples: samples, stepDistance: cfg.stepDistance}, nil
}

// Len returns the number of samples in the series.
func (s Series) Len() int {
	return len(s.samples)
}

// At returns the sample at index i.
func (s Series) At(i int) Sample {
	return s.samples[i]
}

// StepDistance returns the step distance the series was ingested with.
func (s Series) StepDistance() float64 {
	return s.stepDistance
}

// Samples returns a copy of all samples.
func (s Series) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)

	return out
}

// Slice returns a new Series restricted to the half-open index range
// [lo, hi). The derived displacement column is preserved as-is; the first
// sample of the slice keeps its original reference, it is not re-zeroed.
func (s Series) Slice(lo, hi int) Series {
	sub := make([]Sample, hi-lo)
	copy(sub, s.samples[lo:hi])

	return Series{samples: sub, stepDistance: s.stepDistance}
}

// Displacements returns the displacement column.
func (s Series) Displacements() []float64 {
	return s.column(func(sm Sample) float64 { return sm.Displacement })
}

// BedTemps returns the bed temperature column.
func (s Series) BedTemps() []float64 {
	return s.column(func(sm Sample) float64 { return sm.BedTemp })
}

// FrameTemps returns the frame temperature column.
func (s Series) FrameTemps() []float64 {
	return s.column(func(sm Sample) float64 { return sm.FrameTemp })
}

// BedTargets returns the bed setpoint column.
func (s Series) BedTargets() []float64 {
	return s.column(func(sm Sample) float64 { return sm.BedTarget })
}

func (s Series) column(get func(Sample) float64) []float64 {
	out := make([]float64, len(s.samples))
	for i, sm := range s.samples {
		out[i] = get(sm)
	}

	return out
}
