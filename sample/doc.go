// Package sample converts raw homing records into an immutable, ordered
// series of typed samples with a derived displacement column.
//
// A Record carries the raw fields a measurement run produces: an encoder
// step count, bed and frame temperatures, and the bed's commanded setpoint.
// Ingest validates the records and derives physical displacement relative to
// the first sample:
//
//	displacement[i] = (rawPosition[i] - rawPosition[0]) * stepDistance
//
// so displacement[0] is always exactly zero. The step distance defaults to
// 0.0025 physical units per step and can be overridden with
// WithStepDistance.
//
// Ingested series are immutable; accessors return copies. All downstream
// fits are pure functions of a Series, so series may be shared freely across
// goroutines.
package sample
