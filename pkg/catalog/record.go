// Package catalog defines the unified star catalog data model: the star
// record, the key-ordered registry it lives in, and the cross-reference
// tables that link external catalog numbering schemes to registry keys.
package catalog

// UnknownMagnitude is the sentinel visual magnitude for records whose
// brightness was never measured by any merged source.
const UnknownMagnitude = 1000.0

// DeepSkyFamily identifies which deep-sky catalog a designation belongs to.
type DeepSkyFamily int

// Deep-sky catalog families.
const (
	FamilyNone DeepSkyFamily = iota
	FamilyNGC
	FamilyIC
)

// String returns the catalog prefix for the family.
func (f DeepSkyFamily) String() string {
	switch f {
	case FamilyNGC:
		return "NGC"
	case FamilyIC:
		return "IC"
	default:
		return ""
	}
}

// DeepSkyID is a tagged deep-sky catalog designation. The zero value means
// "not a deep-sky object".
type DeepSkyID struct {
	Family DeepSkyFamily
	Number int
}

// IsZero reports whether the designation is unset.
func (id DeepSkyID) IsZero() bool {
	return id.Family == FamilyNone
}

// Signed returns the sign-encoded form used by the binary format and the
// transient name-info table: NGC numbers are positive, IC numbers negative.
func (id DeepSkyID) Signed() int {
	switch id.Family {
	case FamilyNGC:
		return id.Number
	case FamilyIC:
		return -id.Number
	default:
		return 0
	}
}

// DeepSkyIDFromSigned decodes a sign-encoded deep-sky catalog number.
func DeepSkyIDFromSigned(n int) DeepSkyID {
	switch {
	case n > 0:
		return DeepSkyID{Family: FamilyNGC, Number: n}
	case n < 0:
		return DeepSkyID{Family: FamilyIC, Number: -n}
	default:
		return DeepSkyID{}
	}
}

// StarRecord is one physical star or deep-sky object in the registry.
//
// Positions are equatorial: RA in hours [0,24), Dec in degrees [-90,90].
// Proper motions are normalized across sources to seconds of time per year
// (RA) and arcseconds per year (Dec).
type StarRecord struct {
	// Key is the 1-based registry key; it doubles as the serialization
	// position in the binary catalog.
	Key int

	// External catalog identifiers. At most one block-defining id is
	// non-zero per record depending on which block it belongs to.
	FK5 int // primary reference catalog number
	HR  int // bright-star catalog number
	HIP int // high-precision astrometry catalog number

	// DeepSky is set only for records in the deep-sky block.
	DeepSky DeepSkyID

	// Messier is the optional Messier list number overlaid on deep-sky
	// designations.
	Messier int

	// Designation: exactly one of Flamsteed or BayerRank is set for
	// stellar records that carry a designation, never both, and only
	// together with a resolved constellation code.
	Flamsteed  int // Flamsteed number within the constellation
	BayerRank  int // Greek-letter ordinal 1..24
	BayerIndex int // superscript sub-index (e.g. pi-3 Orionis), 0 if none

	// Constellation is the 1..88 constellation code, 0 if unresolved.
	Constellation int

	// Name is the proper name, title-cased, empty if none.
	Name string

	RA    float64 // right ascension, hours
	Dec   float64 // declination, degrees
	PMRA  float64 // proper motion in RA, seconds of time per year
	PMDec float64 // proper motion in Dec, arcseconds per year

	// Mag is the visual magnitude, UnknownMagnitude if unmeasured.
	Mag float64
}

// HasDesignation reports whether the record carries a Flamsteed or Bayer
// designation.
func (r *StarRecord) HasDesignation() bool {
	return r.Flamsteed != 0 || r.BayerRank != 0
}

// ClearDesignation removes the Flamsteed/Bayer designation entirely.
// Used when the constellation abbreviation cannot be resolved: a
// designation without a constellation is meaningless.
func (r *StarRecord) ClearDesignation() {
	r.Flamsteed = 0
	r.BayerRank = 0
	r.BayerIndex = 0
	r.Constellation = 0
}

// SetFlamsteed replaces any existing designation with a Flamsteed number.
func (r *StarRecord) SetFlamsteed(number, constellation int) {
	r.Flamsteed = number
	r.BayerRank = 0
	r.BayerIndex = 0
	r.Constellation = constellation
}

// SetBayer replaces any existing designation with a Bayer rank.
func (r *StarRecord) SetBayer(rank, index, constellation int) {
	r.Flamsteed = 0
	r.BayerRank = rank
	r.BayerIndex = index
	r.Constellation = constellation
}
