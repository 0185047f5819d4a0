// Package soltrans generates synthetic solute-concentration series for the
// HTBCMG (hydraulic/thermal/biological/chemical/mechanical/gas) family of
// demonstration models. Every process is a closed-form placeholder transform
// applied elementwise over a fixed-length series.
package soltrans

const (
	// MinNstep and MaxNstep bound the number of time steps per run.
	MinNstep = 10
	MaxNstep = 500

	baseDecay   = .01 // 1/day, ambient first-order decay of the Basic model
	refTempC    = 20.
	maxTempC    = 60.
	thermalCoef = .01 // fractional concentration change per °C above reference
	deformSD    = .01 // standard deviation of the deformation placeholder
)
