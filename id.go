package datagen

import (
	"fmt"
	"math/rand"
)

// IDFormat renders counter values as fixed-width, prefix-tagged identifiers
// like CUST00000042. Given the same counter it always produces the same
// string, so uniqueness of the counter implies uniqueness of the identifier.
type IDFormat struct {
	Prefix string
	Width  int
}

// Identifier formats for each entity kind. The transaction suffix is wider
// because fact rows outnumber dimension rows by orders of magnitude.
var (
	CustomerIDs    = IDFormat{Prefix: "CUST", Width: 8}
	ProductIDs     = IDFormat{Prefix: "PROD", Width: 8}
	SalesRepIDs    = IDFormat{Prefix: "SREP", Width: 8}
	TransactionIDs = IDFormat{Prefix: "TXN", Width: 12}
	SupplierIDs    = IDFormat{Prefix: "SUPP", Width: 6}
)

// Format renders n in this format.
func (f IDFormat) Format(n uint64) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, n)
}

// IDPool holds the materialized identifiers of one dimension. It is filled
// by a dimension generator and then read by the transaction generator;
// foreign keys are only ever sampled from a pool, never invented. Not safe
// for concurrent mutation - build it fully, then share it read-only.
type IDPool struct {
	ids []string
}

// NewIDPool returns an empty pool with room for capacity identifiers.
func NewIDPool(capacity int) *IDPool {
	return &IDPool{ids: make([]string, 0, capacity)}
}

// Add appends an identifier to the pool.
func (p *IDPool) Add(id string) {
	p.ids = append(p.ids, id)
}

// Len returns the number of identifiers in the pool.
func (p *IDPool) Len() int {
	return len(p.ids)
}

// Sample returns a uniformly chosen identifier. Sampling is with
// replacement; a dimension row is expected to be referenced by many facts.
func (p *IDPool) Sample(r *rand.Rand) string {
	return p.ids[r.Intn(len(p.ids))]
}

// Contains reports whether id is in the pool. It scans linearly and exists
// for verification, not for the generation hot path.
func (p *IDPool) Contains(id string) bool {
	for _, have := range p.ids {
		if have == id {
			return true
		}
	}
	return false
}
