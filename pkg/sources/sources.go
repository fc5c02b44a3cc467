// Package sources retrieves the raw text of the astronomical source
// catalogs the build pipeline consumes. A Provider returns complete,
// already-decompressed, newline-delimited text for a logical source name;
// the pipeline applies no further validation and silently skips malformed
// lines per parser.
package sources

import "context"

// Name identifies a logical catalog source.
type Name string

// The logical sources consumed by the build pipeline.
const (
	// Primary is the FK5-like reference catalog seeding the registry.
	Primary Name = "fk5"

	// BrightStars is the all-sky bright-star catalog.
	BrightStars Name = "bsc"

	// BrightStarNotes is the supplementary notes file carrying proper names.
	BrightStarNotes Name = "bsc-notes"

	// Astrometry is the high-precision position/proper-motion catalog.
	Astrometry Name = "hip"

	// DeepSkyNames is the deep-sky name index.
	DeepSkyNames Name = "ngc-names"

	// DeepSkyPositions is the deep-sky position/magnitude index.
	DeepSkyPositions Name = "ngc-pos"
)

// All lists every logical source in pipeline consumption order.
var All = []Name{
	Primary,
	BrightStars,
	BrightStarNotes,
	Astrometry,
	DeepSkyNames,
	DeepSkyPositions,
}

// Provider returns the full text of a logical source. Implementations own
// any caching or refresh behavior; the pipeline treats Fetch as a
// synchronous call returning complete text.
type Provider interface {
	Fetch(ctx context.Context, name Name) (string, error)
}
