package catalog

import (
	"sort"

	"github.com/agentstation/skymap/pkg/errors"
)

// Registry is the mutable star registry shared by all pipeline stages.
//
// Registry keys occupy four contiguous blocks in fixed order:
//
//	[1 .. PrimaryEnd]         primary catalog records (keys are FK5 numbers;
//	                          keys skipped by the source remain absent)
//	(PrimaryEnd .. BrightEnd] bright-star additions
//	(BrightEnd .. AstroEnd]   astrometry additions
//	(AstroEnd .. Last]        deep-sky objects
//
// Only the primary block may contain gaps; every other block is dense.
// Blocks are sealed in order as the pipeline advances; appending assigns
// monotonically increasing keys, so block ordering is structural.
type Registry struct {
	records map[int]*StarRecord
	last    int

	primaryEnd int
	brightEnd  int
	astroEnd   int

	primarySealed bool
	brightSealed  bool
	astroSealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[int]*StarRecord)}
}

// InsertPrimary inserts a primary-block record under its own catalog
// number, which becomes its registry key. Returns ErrSealed once the
// primary block has been sealed.
func (reg *Registry) InsertPrimary(key int, rec *StarRecord) error {
	if reg.primarySealed {
		return errors.ErrSealed
	}
	if key < 1 {
		return errors.ErrInvalidInput
	}
	rec.Key = key
	reg.records[key] = rec
	if key > reg.last {
		reg.last = key
	}
	return nil
}

// Append inserts a record at the next free key and returns that key.
func (reg *Registry) Append(rec *StarRecord) int {
	reg.last++
	rec.Key = reg.last
	reg.records[reg.last] = rec
	return reg.last
}

// Get returns the record stored under key, if present. Absent keys below
// PrimaryEnd are gaps; the binary writer encodes them explicitly.
func (reg *Registry) Get(key int) (*StarRecord, bool) {
	rec, ok := reg.records[key]
	return rec, ok
}

// Has reports whether a record is present under key.
func (reg *Registry) Has(key int) bool {
	_, ok := reg.records[key]
	return ok
}

// SealPrimary fixes the end of the primary block at the highest key
// assigned so far. Bright-star additions extend the registry past it.
func (reg *Registry) SealPrimary() {
	reg.primaryEnd = reg.last
	reg.primarySealed = true
}

// SealBright fixes the end of the bright-star addition block.
func (reg *Registry) SealBright() {
	reg.brightEnd = reg.last
	reg.brightSealed = true
}

// SealAstrometry fixes the end of the astrometry addition block. Every key
// appended afterwards belongs to the deep-sky block.
func (reg *Registry) SealAstrometry() {
	reg.astroEnd = reg.last
	reg.astroSealed = true
}

// PrimaryEnd returns the last key of the primary block (0 before sealing).
func (reg *Registry) PrimaryEnd() int { return reg.primaryEnd }

// BrightEnd returns the last key of the bright-star block (0 before sealing).
func (reg *Registry) BrightEnd() int { return reg.brightEnd }

// AstroEnd returns the last key of the astrometry block (0 before sealing).
func (reg *Registry) AstroEnd() int { return reg.astroEnd }

// Last returns the highest key assigned so far.
func (reg *Registry) Last() int { return reg.last }

// Len returns the number of records present (gaps excluded).
func (reg *Registry) Len() int { return len(reg.records) }

// Keys returns all present keys in ascending order.
func (reg *Registry) Keys() []int {
	keys := make([]int, 0, len(reg.records))
	for k := range reg.records {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// CrossRef maps one external catalog's integer identifiers to registry
// keys. The sentinel value 0 marks an identifier that was seen in the
// source but matched no registry record. Each table is built by exactly
// one pipeline stage and is read-only afterwards.
type CrossRef struct {
	entries map[int]int
}

// NewCrossRef creates an empty cross-reference table.
func NewCrossRef() *CrossRef {
	return &CrossRef{entries: make(map[int]int)}
}

// Mark records an identifier as seen without binding it to a registry key.
// An existing binding is left untouched.
func (x *CrossRef) Mark(id int) {
	if _, ok := x.entries[id]; !ok {
		x.entries[id] = 0
	}
}

// Set binds an identifier to a registry key.
func (x *CrossRef) Set(id, key int) {
	x.entries[id] = key
}

// Lookup returns the entry for id. seen is false if the identifier never
// appeared in the source; a seen identifier with key 0 is known but
// unmatched.
func (x *CrossRef) Lookup(id int) (key int, seen bool) {
	key, seen = x.entries[id]
	return key, seen
}

// Resolve returns the registry key bound to id, with ok true only for a
// real (non-zero) binding.
func (x *CrossRef) Resolve(id int) (key int, ok bool) {
	key = x.entries[id]
	return key, key > 0
}

// Len returns the number of identifiers in the table.
func (x *CrossRef) Len() int { return len(x.entries) }
