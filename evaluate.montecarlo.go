package soltrans

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// GenerateSamples draws a Latin hypercube over the scalar parameter space and
// evaluates the model once per sample, writing the sample space and one result
// CSV per sample under a timestamped batch prefix. Returns the batch prefix.
func GenerateSamples(mdl Model, nstep, n, nwrkrs int, outdir string) (string, error) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, nSmplDim, false) // smpln.NewHalton(s, n)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() {                                                  // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < nSmplDim; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	uiprogress.Start()
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()

	var wg sync.WaitGroup
	ksmpl := make(chan int, nwrkrs)
	errs := make(chan error, n)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			for k := range ksmpl {
				ut := make([]float64, nSmplDim)
				for j := 0; j < nSmplDim; j++ {
					ut[j] = sp.U[j][k]
				}

				conc0, gradient, kdecay, kd := par4(ut)
				ev := Evaluator{
					Mdl:  mdl,
					Par:  Parameter{Nstep: nstep, Conc0: conc0, Gradient: gradient, Kdecay: kdecay, Kd: kd},
					Seed: int64(k + 1), // reproducible per sample
				}
				s := ev.Evaluate()
				if err := s.WriteCSV(fmt.Sprintf("%s.%d.csv", outdirbatch, k)); err != nil {
					errs <- err
				}
				bar.Incr()
				wg.Done()
			}
		}()
	}

	wg.Add(n)
	for k := 0; k < n; k++ {
		ksmpl <- k
	}
	wg.Wait()
	close(ksmpl)
	close(errs)
	uiprogress.Stop()

	for err := range errs {
		return outdirbatch, fmt.Errorf(" soltrans.GenerateSamples %v", err)
	}
	return outdirbatch, nil
}
