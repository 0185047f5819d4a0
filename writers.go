package soltrans

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// CSV renders the series as the exported table, one row per time step.
// Concentrations use the shortest decimal representation so that a re-read of
// the file reproduces the series exactly.
func (s *Series) CSV() []byte {
	b := new(bytes.Buffer)
	b.WriteString("Time,Concentration\n")
	for i, t := range s.T {
		b.WriteString(strconv.Itoa(t))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(s.C[i], 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func (s *Series) WriteCSV(fp string) error {
	if err := os.WriteFile(fp, s.CSV(), 0644); err != nil {
		return fmt.Errorf(" series.WriteCSV failed: %v", err)
	}
	return nil
}

// DrawChart renders the concentration-vs-time line chart as a PNG.
func (s *Series) DrawChart(w io.Writer) error {
	xs := make([]float64, len(s.T))
	for i, t := range s.T {
		xs[i] = float64(t)
	}
	ch := chart.Chart{
		Width:  900,
		Height: 480,
		XAxis:  chart.XAxis{Name: "Time"},
		YAxis:  chart.YAxis{Name: "Concentration (mg/L)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Concentration",
				XValues: xs,
				YValues: s.C,
				Style: chart.Style{
					StrokeWidth: 2.,
					StrokeColor: chart.ColorBlue,
				},
			},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf(" series.DrawChart failed: %v", err)
	}
	return nil
}

func (s *Series) WriteChart(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" series.WriteChart failed: %v", err)
	}
	defer f.Close()
	return s.DrawChart(f)
}
