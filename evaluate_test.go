package soltrans

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBasic(t *testing.T) {
	par := DefaultParameter()
	par.Nstep = 50
	ev := Evaluator{Mdl: Basic, Par: par}
	s := ev.Evaluate()

	require.Len(t, s.T, 50)
	require.Len(t, s.C, 50)
	for i := range s.C {
		assert.Equal(t, i, s.T[i])
		assert.InDelta(t, par.Conc0*math.Exp(-baseDecay*float64(i)), s.C[i], 1e-12)
	}
}

func TestEvaluateBiodegradationAlone(t *testing.T) {
	par := DefaultParameter()
	par.Nstep = 40
	par.Kdecay = .25
	ev := Evaluator{Mdl: Model("B"), Par: par}
	s := ev.Evaluate()
	for i := range s.C {
		assert.InDelta(t, par.Conc0*math.Exp(-par.Kdecay*float64(i)), s.C[i], 1e-12)
	}
}

func TestEvaluateThermal(t *testing.T) {
	par := DefaultParameter()
	ev := Evaluator{Mdl: HT, Par: par}
	s := ev.Evaluate()
	assert.InDelta(t, par.Conc0, s.C[0], 1e-12) // ramp starts at the reference temperature
	assert.InDelta(t, par.Conc0*(1.+thermalCoef*(maxTempC-refTempC)), s.C[par.Nstep-1], 1e-9)
}

func TestEvaluateChemicalSorption(t *testing.T) {
	par := DefaultParameter()
	par.Kd = 1.5
	ev := Evaluator{Mdl: Model("C"), Par: par}
	for _, c := range ev.Evaluate().C {
		assert.InDelta(t, par.Conc0/2.5, c, 1e-12)
	}
}

func TestEvaluateGasStripping(t *testing.T) {
	par := DefaultParameter()
	ev := Evaluator{Mdl: Model("G"), Par: par}
	s := ev.Evaluate()
	assert.InDelta(t, par.Conc0, s.C[0], 1e-12)
	assert.InDelta(t, 0., s.C[par.Nstep-1], 1e-12) // fully stripped at the end of the ramp
}

func TestEvaluateHydraulicScaling(t *testing.T) {
	par := DefaultParameter()
	par.Gradient = 2.5 // uniform flow normalizes to unity
	ev := Evaluator{Mdl: Hydro, Par: par}
	for _, c := range ev.Evaluate().C {
		assert.InDelta(t, par.Conc0, c, 1e-12)
	}

	par.Gradient = 0. // no flow: scaling skipped rather than dividing by zero
	ev = Evaluator{Mdl: Hydro, Par: par}
	for _, c := range ev.Evaluate().C {
		assert.InDelta(t, par.Conc0, c, 1e-12)
	}
}

func TestEvaluateMechanicalBounds(t *testing.T) {
	par := DefaultParameter()
	ev := Evaluator{Mdl: Model("M"), Par: par, Seed: 7}
	for _, c := range ev.Evaluate().C {
		assert.Greater(t, c, 0.)
		assert.LessOrEqual(t, c, par.Conc0)
	}
}

func TestEvaluateSeedDeterminism(t *testing.T) {
	par := DefaultParameter()
	a := Evaluator{Mdl: HTBCMG, Par: par, Seed: 42}
	b := Evaluator{Mdl: HTBCMG, Par: par, Seed: 42}
	require.Equal(t, a.Evaluate(), b.Evaluate())
}
