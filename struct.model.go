package soltrans

import (
	"fmt"
	"strings"
)

// Model names which optional processes are coupled to the run, following the
// HTBCMG naming scheme. Membership is by substring so, for instance, HT
// enables thermal transport but not hydraulic flow.
type Model string

const (
	Basic  Model = "Basic"
	Hydro  Model = "Hydro"
	HT     Model = "HT"
	HTB    Model = "HTB"
	HTBCM  Model = "HTBCM"
	HTBCMG Model = "HTBCMG"
)

// Models lists the supported model types in menu order.
func Models() []Model {
	return []Model{Basic, Hydro, HT, HTB, HTBCM, HTBCMG}
}

// ParseModel resolves a selector string to one of the supported model types.
func ParseModel(s string) (Model, error) {
	for _, m := range Models() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf(" soltrans.ParseModel: unknown model type %q", s)
}

type processes struct{ hydr, thrm, bio, chem, mech, gas bool }

// Basic carries no optional process; it only applies the ambient decay in
// Evaluate. (A literal substring test would also match the B in "Basic".)
func (m Model) processes() (p processes) {
	if m == Basic {
		return
	}
	s := string(m)
	p.hydr = strings.Contains(s, "Hydro")
	p.thrm = strings.Contains(s, "HT")
	p.bio = strings.Contains(s, "B")
	p.chem = strings.Contains(s, "C")
	p.mech = strings.Contains(s, "M")
	p.gas = strings.Contains(s, "G")
	return
}
