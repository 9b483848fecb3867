// Package regression provides the ordinary least squares primitive shared by
// the drift fitter and the gantry factor estimator.
//
// A single Fit function regresses a response vector on one or more covariate
// columns plus an implicit intercept, returning coefficients, fitted values,
// residuals, the coefficient of determination (R²), and per-coefficient
// standard errors. Both higher-level fits in this module are specializations
// of this primitive over different covariate sets.
//
// # Degeneracy Handling
//
// The normal equations are solved by Gauss-Jordan elimination with partial
// pivoting. A pivot whose magnitude falls below a relative threshold marks
// the design matrix as rank deficient and Fit fails with
// errs.ErrSingularDesignMatrix instead of emitting NaN or arbitrary
// coefficients. Fewer observations than parameters fail with
// errs.ErrUnderdeterminedModel.
//
// # Numerical Contracts
//
//   - response[i] == Fitted[i] + Residuals[i] exactly: residuals are the
//     literal subtraction, never recomputed from coefficients.
//   - R² follows the 1 - SS_res/SS_tot convention and reports 0 when the
//     response has zero variance.
//   - Identical inputs always produce identical outputs; the computation is
//     a single bounded-cost pass with no randomness.
package regression
