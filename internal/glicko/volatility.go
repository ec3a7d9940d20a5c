package glicko

import "math"

const convergenceTolerance = 1e-6

// VolatilityParams are the Glicko-2 scale inputs of the volatility update.
type VolatilityParams struct {
	Delta      float64 // estimated improvement Δ
	Deviation  float64 // pre-period φ
	Variance   float64 // estimated variance v
	Volatility float64 // pre-period σ
	Tau        float64
}

// SolveVolatility finds σ' as the root of f(x) with x = ln(σ'²), using the
// Illinois variant of regula falsi. It returns σ' and the number of
// iterations taken.
func SolveVolatility(params VolatilityParams) (float64, int) {
	delta2 := params.Delta * params.Delta
	phi2 := params.Deviation * params.Deviation
	v := params.Variance
	tau := params.Tau
	a := math.Log(params.Volatility * params.Volatility)

	f := func(x float64) float64 {
		ex := math.Exp(x)
		den := phi2 + v + ex
		return ex*(delta2-phi2-v-ex)/(2*den*den) - (x-a)/(tau*tau)
	}

	A := a
	var B float64
	if delta2 > phi2+v {
		B = math.Log(delta2 - phi2 - v)
	} else {
		k := 1.0
		for f(a-k*tau) < 0 {
			k++
		}
		B = a - k*tau
	}

	fA := f(A)
	fB := f(B)
	iterations := 0
	for math.Abs(B-A) >= convergenceTolerance {
		iterations++
		C := A + (A-B)*fA/(fB-fA)
		fC := f(C)
		if fC == 0 {
			// an exact root would stall the update below
			A = C
			break
		}
		if fB*fC < 0 {
			A = B
			fA = fB
		} else {
			fA /= 2
		}
		B = C
		fB = fC
	}

	return math.Exp(A / 2), iterations
}
