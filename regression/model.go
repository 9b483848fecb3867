package regression

import "fmt"

// Result holds the outcome of an ordinary least squares fit.
//
// Coefficients[0] is the intercept; Coefficients[j] for j >= 1 corresponds to
// the j-th covariate column passed to Fit, in order. Fitted and Residuals are
// aligned with the input response: response[i] == Fitted[i] + Residuals[i]
// exactly for every i.
type Result struct {
	// Coefficients contains the fitted parameters, intercept first.
	Coefficients []float64
	// Fitted contains the model prediction for each observation.
	Fitted []float64
	// Residuals contains response minus fitted, per observation.
	Residuals []float64
	// RSquared is the coefficient of determination (0-1, higher is better).
	RSquared float64
	// StdErrs contains the standard error of each coefficient, aligned with
	// Coefficients. Zero when the fit has no residual degrees of freedom.
	StdErrs []float64
	// DegreesOfFreedom is the residual degrees of freedom (n - parameters).
	DegreesOfFreedom int
}

// String returns a compact summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Coefficients: %v, R²: %.4f, DoF: %d}",
		r.Coefficients, r.RSquared, r.DegreesOfFreedom)
}
