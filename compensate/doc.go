// Package compensate evaluates the physical frame-expansion model and
// calibrates it against observed displacement.
//
// The model predicts a compensation offset per sample from the frame
// temperature's deviation from a reference temperature:
//
//	offset[i] = -1 · frameLength · thermalCoeff · (frame_t[i] - T_ref) · unitGain · scaleFactor
//
// evaluated at unit gain (gantry factor = 1). The negative sign encodes that
// a warmer frame must lower the effective toolhead position; it is part of
// the model's contract and must not be dropped.
//
// The gantry factor is then the slope of a simple OLS regression of observed
// displacement on these unit-gain offsets: the scalar the physical model
// must be multiplied by to reproduce the observed drift, decoupled from any
// constant baseline bias which the regression intercept absorbs.
//
// Reference window selection is the caller's responsibility. The package
// deliberately does not check that the bed had stabilized before the window;
// callers choose a window near a known stable point and pass it in.
package compensate
