package soltrans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrateDecay1(t *testing.T) {
	truth := DefaultParameter()
	truth.Nstep = 80
	truth.Kdecay = .05
	obs := (&Evaluator{Mdl: Model("B"), Par: truth, Seed: 1}).Evaluate().C

	of, final := CalibrateDecay1(Model("B"), DefaultParameter(), obs)
	require.Less(t, of, .5)
	assert.InDelta(t, truth.Kdecay, final.Kdecay, 2e-3)
	assert.Equal(t, len(obs), final.Nstep)
}

func TestCalibrateDecay(t *testing.T) {
	truth := DefaultParameter()
	truth.Nstep = 80
	truth.Kdecay = .05
	truth.Kd = .5
	obs := (&Evaluator{Mdl: HTBCM, Par: truth, Seed: 1}).Evaluate().C

	of, final := CalibrateDecay(HTBCM, DefaultParameter(), obs, false)
	require.Less(t, of, .5)
	assert.InDelta(t, truth.Kdecay, final.Kdecay, .01)
	assert.InDelta(t, truth.Kd, final.Kd, .05)
}
