package soltrans

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesCSVGolden(t *testing.T) {
	s := Series{
		T: []int{0, 1, 2, 3},
		C: []float64{100., 50.5, .25, 0.},
	}
	g := goldie.New(t)
	g.Assert(t, "series_csv", s.CSV())
}

func TestCSVRoundTrip(t *testing.T) {
	par := DefaultParameter()
	par.Nstep = 60
	ev := Evaluator{Mdl: Basic, Par: par}
	s := ev.Evaluate()

	fp := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, s.WriteCSV(fp))

	obs, err := ReadObsCSV(fp)
	require.NoError(t, err)
	require.Equal(t, s.C, obs) // byte-exact representation must reproduce the series
}

func TestReadObsCSVMissing(t *testing.T) {
	_, err := ReadObsCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestDrawChartPNG(t *testing.T) {
	ev := Evaluator{Mdl: HTB, Par: DefaultParameter()}
	s := ev.Evaluate()

	b := new(bytes.Buffer)
	require.NoError(t, s.DrawChart(b))
	require.Greater(t, b.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b.Bytes()[:4])
}
