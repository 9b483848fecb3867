package regression

import (
	"fmt"
	"math"

	"github.com/gantrylab/thermcal/errs"
)

// pivotTolerance is the relative threshold below which a pivot marks the
// normal matrix as rank deficient.
const pivotTolerance = 1e-12

// Fit regresses response on the given covariate columns by ordinary least
// squares, minimizing the sum of squared residuals. An intercept term is
// always included, so the fitted model is
//
//	response ≈ β0 + β1·covariates[0] + β2·covariates[1] + ...
//
// Parameters:
//   - response: Observed values, one per observation
//   - covariates: Zero or more columns, each the same length as response
//
// Returns:
//   - *Result: Coefficients (intercept first), fitted values, residuals,
//     R², and per-coefficient standard errors
//   - error: errs.ErrEmptyInput for an empty response,
//     errs.ErrUnderdeterminedModel when there are fewer observations than
//     parameters, errs.ErrSingularDesignMatrix when the design matrix is
//     rank deficient (e.g. perfectly collinear covariates)
//
// The normal equations are solved by Gauss-Jordan elimination with partial
// pivoting; rank deficiency is detected via a pivot threshold rather than
// silently producing NaN coefficients.
func Fit(response []float64, covariates ...[]float64) (*Result, error) {
	n := len(response)
	if n == 0 {
		return nil, errs.ErrEmptyInput
	}

	p := 1 + len(covariates)
	for j, col := range covariates {
		if len(col) != n {
			return nil, fmt.Errorf("covariate %d has %d values, response has %d", j, len(col), n)
		}
	}

	if n < p {
		return nil, errs.Underdetermined(n, p)
	}

	// column returns the design matrix entry X[i][j]; column 0 is the intercept.
	column := func(j, i int) float64 {
		if j == 0 {
			return 1.0
		}

		return covariates[j-1][i]
	}

	// Normal equations: (X'X) β = X'y.
	xtx := make([][]float64, p)
	xty := make([]float64, p)
	for j := range p {
		xtx[j] = make([]float64, p)
		for k := range p {
			var sum float64
			for i := range n {
				sum += column(j, i) * column(k, i)
			}
			xtx[j][k] = sum
		}

		var sum float64
		for i := range n {
			sum += column(j, i) * response[i]
		}
		xty[j] = sum
	}

	inv, ok := invert(xtx)
	if !ok {
		return nil, errs.ErrSingularDesignMatrix
	}

	coefs := make([]float64, p)
	for j := range p {
		var sum float64
		for k := range p {
			sum += inv[j][k] * xty[k]
		}
		coefs[j] = sum
	}

	// Fitted values and residuals. Residuals are the literal subtraction so
	// that response[i] == fitted[i] + residual[i] holds exactly.
	fitted := make([]float64, n)
	residuals := make([]float64, n)
	var meanY, ssRes float64
	for i := range n {
		var pred float64
		for j := range p {
			pred += coefs[j] * column(j, i)
		}
		fitted[i] = pred
		residuals[i] = response[i] - pred
		ssRes += residuals[i] * residuals[i]
		meanY += response[i]
	}
	meanY /= float64(n)

	var ssTot float64
	for i := range n {
		d := response[i] - meanY
		ssTot += d * d
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1.0 - ssRes/ssTot
	}

	// Standard errors from the residual variance and the diagonal of (X'X)⁻¹.
	dof := n - p
	stdErrs := make([]float64, p)
	if dof > 0 {
		sigma2 := ssRes / float64(dof)
		for j := range p {
			v := sigma2 * inv[j][j]
			if v > 0 {
				stdErrs[j] = math.Sqrt(v)
			}
		}
	}

	return &Result{
		Coefficients:     coefs,
		Fitted:           fitted,
		Residuals:        residuals,
		RSquared:         rSquared,
		StdErrs:          stdErrs,
		DegreesOfFreedom: dof,
	}, nil
}

// invert computes the inverse of a square matrix by Gauss-Jordan elimination
// with partial pivoting. It reports false when a pivot falls below
// pivotTolerance relative to the largest entry, indicating rank deficiency.
// The input matrix is not modified.
func invert(m [][]float64) ([][]float64, bool) {
	p := len(m)

	var maxAbs float64
	for j := range p {
		for k := range p {
			if v := math.Abs(m[j][k]); v > maxAbs {
				maxAbs = v
			}
		}
	}
	if maxAbs == 0 {
		return nil, false
	}
	threshold := pivotTolerance * maxAbs

	// Augmented system [m | I], reduced in place.
	work := make([][]float64, p)
	for j := range p {
		work[j] = make([]float64, 2*p)
		copy(work[j], m[j])
		work[j][p+j] = 1.0
	}

	for col := range p {
		// Partial pivoting: pick the row with the largest pivot magnitude.
		pivotRow := col
		for row := col + 1; row < p; row++ {
			if math.Abs(work[row][col]) > math.Abs(work[pivotRow][col]) {
				pivotRow = row
			}
		}
		if math.Abs(work[pivotRow][col]) < threshold {
			return nil, false
		}
		work[col], work[pivotRow] = work[pivotRow], work[col]

		pivot := work[col][col]
		for k := range 2 * p {
			work[col][k] /= pivot
		}

		for row := range p {
			if row == col {
				continue
			}
			factor := work[row][col]
			if factor == 0 {
				continue
			}
			for k := range 2 * p {
				work[row][k] -= factor * work[col][k]
			}
		}
	}

	inv := make([][]float64, p)
	for j := range p {
		inv[j] = work[j][p:]
	}

	return inv, true
}
