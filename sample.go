package soltrans

import "github.com/maseology/mmaths"

const nSmplDim = 4

// par4 maps a unit-hypercube draw to the run's scalar parameter space.
func par4(u []float64) (conc0, gradient, kdecay, kd float64) {
	conc0 = mmaths.LinearTransform(10., 500., u[0])
	gradient = mmaths.LinearTransform(0., 5., u[1])
	kdecay = mmaths.LogLinearTransform(.001, 1., u[2]) // anything greater decays out within a few steps
	kd = mmaths.LogLinearTransform(.01, 10., u[3])
	return
}
