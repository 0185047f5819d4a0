package soltrans

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Parameter holds the scalar inputs to a run.
type Parameter struct {
	Nstep    int     // number of time steps [10,500]
	Conc0    float64 // initial concentration [mg/L]
	Gradient float64 // hydraulic gradient [-]
	Kdecay   float64 // biodegradation rate [1/day]
	Kd       float64 // distribution coefficient [-]
}

// DefaultParameter returns the defaults presented by the demonstration page.
func DefaultParameter() Parameter {
	return Parameter{
		Nstep:    100,
		Conc0:    100.,
		Gradient: 1.,
		Kdecay:   .1,
		Kd:       .5,
	}
}

// Check validates the parameter set ahead of a run.
func (par *Parameter) Check() error {
	if par.Nstep < MinNstep || par.Nstep > MaxNstep {
		return fmt.Errorf(" parameter.Check: time steps %d out of range [%d,%d]", par.Nstep, MinNstep, MaxNstep)
	}
	if par.Conc0 < 0. {
		return fmt.Errorf(" parameter.Check: negative initial concentration %g", par.Conc0)
	}
	if par.Kdecay < 0. {
		return fmt.Errorf(" parameter.Check: negative biodegradation rate %g", par.Kdecay)
	}
	if par.Kd < 0. {
		return fmt.Errorf(" parameter.Check: negative distribution coefficient %g", par.Kd)
	}
	return nil
}

func (par *Parameter) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" parameter.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(par); err != nil {
		return fmt.Errorf(" parameter.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobParameter(fp string) (*Parameter, error) {
	var par Parameter
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&par); err != nil {
		return nil, err
	}
	f.Close()
	return &par, nil
}
