package compensate

import "fmt"

// Default physical-model parameters. Frame length and scale factor are in
// meters and meters-to-millimeters respectively; the thermal coefficient is
// the per-degree linear expansion rate of an aluminium extrusion.
const (
	DefaultFrameLength  = 0.530
	DefaultThermalCoeff = 23.4e-6
	DefaultScaleFactor  = 1000.0
)

// Config holds the immutable physical-model parameters. Pass it explicitly
// to each estimation call; there is no global configuration.
type Config struct {
	// FrameLength is the length of the expanding frame member, in physical
	// units.
	FrameLength float64
	// ThermalCoeff is the per-degree linear thermal expansion rate.
	ThermalCoeff float64
	// ScaleFactor converts the physical model's output to the same scale as
	// displacement.
	ScaleFactor float64
}

// DefaultConfig returns a Config populated with the default physical
// constants.
func DefaultConfig() Config {
	return Config{
		FrameLength:  DefaultFrameLength,
		ThermalCoeff: DefaultThermalCoeff,
		ScaleFactor:  DefaultScaleFactor,
	}
}

// ReferenceWindow identifies the half-open sample index range [Start, End)
// whose mean frame temperature defines zero delta-temperature.
//
// The window is caller-supplied: the package does not infer or validate
// thermal stability, it only checks that the range is within bounds and
// non-empty.
type ReferenceWindow struct {
	Start int
	End   int
}

func (w ReferenceWindow) validate(n int) error {
	if w.Start < 0 || w.End > n || w.Start >= w.End {
		return fmt.Errorf("reference window [%d, %d) invalid for %d samples", w.Start, w.End, n)
	}

	return nil
}
