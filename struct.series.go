package soltrans

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Series pairs an integer time index with a concentration value. Both slices
// share the run's step count. A Series is created fresh on every run and held
// only until exported.
type Series struct {
	T []int
	C []float64
}

func newSeries(nstep int, conc0 float64) Series {
	t, c := make([]int, nstep), make([]float64, nstep)
	for i := range t {
		t[i] = i
		c[i] = conc0
	}
	return Series{T: t, C: c}
}

func maxOf(f []float64) float64 {
	x := f[0]
	for _, v := range f[1:] {
		if v > x {
			x = v
		}
	}
	return x
}

func (s *Series) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" series.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" series.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobSeries(fp string) (*Series, error) {
	var s Series
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	f.Close()
	return &s, nil
}
