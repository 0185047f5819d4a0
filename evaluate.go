package soltrans

import (
	"math"
	"math/rand"
	"time"

	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// Evaluator couples a model selection to a parameter set. Evaluate runs the
// placeholder transforms in HTBCMG order over a fresh series; it is
// synchronous and keeps no state between runs.
type Evaluator struct {
	Mdl  Model
	Par  Parameter
	Seed int64 // deformation draw seed; <=0 seeds from the wall clock
}

func (ev *Evaluator) Evaluate() Series {
	p := ev.Mdl.processes()
	nt := ev.Par.Nstep
	s := newSeries(nt, ev.Par.Conc0)

	if ev.Mdl == Basic {
		for i := range s.C {
			s.C[i] *= math.Exp(-baseDecay * float64(i))
		}
	}

	if p.hydr {
		q := hydraulicFlow(nt, ev.Par.Gradient)
		if qx := maxOf(q); qx != 0. { // zero gradient: no flow scaling
			for i := range s.C {
				s.C[i] *= q[i] / qx
			}
		}
	}

	if p.thrm {
		tmp := thermalTransport(nt)
		for i := range s.C {
			s.C[i] *= 1. + thermalCoef*(tmp[i]-refTempC)
		}
	}

	if p.bio {
		biodegradation(s.C, ev.Par.Kdecay)
	}

	if p.chem {
		chemicalInteractions(s.C, ev.Par.Kd)
	}

	if p.mech {
		rng := rand.New(mrg63k3a.New())
		if ev.Seed > 0 {
			rng.Seed(ev.Seed)
		} else {
			rng.Seed(time.Now().UnixNano())
		}
		for i, d := range mechanicalResponse(rng, nt) {
			s.C[i] *= 1. - math.Abs(d)
		}
	}

	if p.gas {
		g := gasTransport(nt)
		if gx := maxOf(g); gx != 0. { // single-step run: no gas stripping
			for i := range s.C {
				s.C[i] *= 1. - g[i]/gx
			}
		}
	}

	return s
}
