package soltrans

import (
	"math"
	"math/rand"
)

// The six HTBCMG process placeholders. Each yields (or applies) an array
// sized to the run's step count.

// hydraulicFlow: uniform Darcy flux set by the hydraulic gradient.
func hydraulicFlow(nstep int, gradient float64) []float64 {
	q := make([]float64, nstep)
	for i := range q {
		q[i] = gradient
	}
	return q
}

// thermalTransport: linear warming ramp from the reference temperature.
func thermalTransport(nstep int) []float64 {
	return ramp(refTempC, maxTempC, nstep)
}

// biodegradation: first-order (Monod-style) decay applied in place.
func biodegradation(c []float64, kdecay float64) {
	for i := range c {
		c[i] *= math.Exp(-kdecay * float64(i))
	}
}

// chemicalInteractions: linear equilibrium sorption (Kd) applied in place.
func chemicalInteractions(c []float64, kd float64) {
	for i := range c {
		c[i] /= 1. + kd
	}
}

// mechanicalResponse: Gaussian deformation draw.
func mechanicalResponse(rng *rand.Rand, nstep int) []float64 {
	d := make([]float64, nstep)
	for i := range d {
		d[i] = rng.NormFloat64() * deformSD
	}
	return d
}

// gasTransport: linear gas-fraction generation.
func gasTransport(nstep int) []float64 {
	return ramp(0., 1., nstep)
}

func ramp(lo, hi float64, n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = lo
		if n > 1 {
			f[i] += (hi - lo) * float64(i) / float64(n-1)
		}
	}
	return f
}
