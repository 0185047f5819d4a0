package soltrans

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// ReadObsCSV loads an observed concentration record from a Time,Concentration
// table, as written by WriteCSV. A header row is optional.
func ReadObsCSV(fp string) ([]float64, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf(" soltrans.ReadObsCSV: file not found: %s", fp)
	}
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" soltrans.ReadObsCSV %v", err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf(" soltrans.ReadObsCSV %v", err)
	}
	if len(recs) > 0 {
		if _, err := strconv.ParseFloat(recs[0][len(recs[0])-1], 64); err != nil {
			recs = recs[1:] // header
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf(" soltrans.ReadObsCSV: no records in %s", fp)
	}

	obs := make([]float64, len(recs))
	for i, r := range recs {
		v, err := strconv.ParseFloat(r[len(r)-1], 64)
		if err != nil {
			return nil, fmt.Errorf(" soltrans.ReadObsCSV: line %d: %v", i+1, err)
		}
		obs[i] = v
	}
	return obs, nil
}
