package soltrans

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

const nCalibDim = 2

// CalibrateDecay fits the biodegradation rate and distribution coefficient to
// an observed concentration record by minimizing RMSE. The run length is taken
// from the record. Returns the final objective value and parameter set.
func CalibrateDecay(mdl Model, par Parameter, obs []float64, print bool) (float64, Parameter) {
	par.Nstep = len(obs)

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		smpl := par
		smpl.Kdecay = mmaths.LogLinearTransform(.0001, 1., u[0])
		smpl.Kd = mmaths.LogLinearTransform(.001, 10., u[1])
		ev := Evaluator{Mdl: mdl, Par: smpl, Seed: 1}
		sim := ev.Evaluate()
		return objfunc.RMSE(obs, sim.C)
	}

	if print {
		fmt.Println(" optimizing..")
	}
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), nCalibDim, rng, gen, true)
	// uFinal, _ := glbopt.SurrogateRBF(500, nCalibDim, rng, gen)

	final := par
	final.Kdecay = mmaths.LogLinearTransform(.0001, 1., uFinal[0])
	final.Kd = mmaths.LogLinearTransform(.001, 10., uFinal[1])
	ev := Evaluator{Mdl: mdl, Par: final, Seed: 1}
	sim := ev.Evaluate()

	rmse := objfunc.RMSE(obs, sim.C)
	if print {
		kge := objfunc.KGE(obs, sim.C)
		nse := objfunc.NSE(obs, sim.C)
		bias := objfunc.Bias(obs, sim.C)
		fmt.Printf("\nfinal parameters:\n\tKdecay:\t%v\n\tKd:\t%v\n\n", final.Kdecay, final.Kd)
		fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", kge, nse, rmse, bias)
		mmio.ObsSim("calib.png", obs, sim.C)
	}
	return rmse, final
}

// CalibrateDecay1 fits only the biodegradation rate, holding all else fixed.
func CalibrateDecay1(mdl Model, par Parameter, obs []float64) (float64, Parameter) {
	par.Nstep = len(obs)

	smpl := func(u float64) float64 {
		return mmaths.LogLinearTransform(.0001, 1., u)
	}
	opt := func(u []float64) float64 {
		s := par
		s.Kdecay = smpl(u[0])
		ev := Evaluator{Mdl: mdl, Par: s, Seed: 1}
		return objfunc.RMSE(obs, ev.Evaluate().C)
	}
	u, _ := glbopt.Fibonacci(opt)

	final := par
	final.Kdecay = smpl(u)
	ev := Evaluator{Mdl: mdl, Par: final, Seed: 1}
	return objfunc.RMSE(obs, ev.Evaluate().C), final
}
