// Package fake generates the synthetic records of the sales dataset: the
// customer, product and sales rep dimensions plus the transaction fact
// table. Each generator owns a seeded random source, so a fixed seed yields
// the same series of records on a given version of Go and of the fake-data
// library.
package fake

import (
	"math"
	"math/rand"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

func choice(r *rand.Rand, vals []string) string {
	return vals[r.Intn(len(vals))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
