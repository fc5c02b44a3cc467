// Package build implements the five-stage reconciliation pipeline that
// turns the raw source catalogs into one unified star registry, plus the
// writer producing the final binary catalog file.
//
// Stages run strictly in sequence over a shared mutable Context. Each
// stage documents which Context state it requires and which it produces;
// the Pipeline enforces the ordering.
package build

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/logging"
)

// Context is the mutable state threaded through the pipeline stages.
// There are no hidden globals: every accumulator a stage mutates lives
// here, and stages own their mutations exclusively while they run.
type Context struct {
	Config *Config
	Log    *zerolog.Logger

	// Registry is the star registry, built across stages 1-5 and frozen
	// before the writer runs.
	Registry *catalog.Registry

	// PrimaryRef maps primary (FK5) catalog numbers to registry keys.
	// Written by the primary loader, read-only afterwards.
	PrimaryRef *catalog.CrossRef

	// BrightRef maps bright-star (HR) numbers to registry keys, with the
	// zero sentinel for entries seen but unmatched. Written by the
	// bright-star merger, read-only afterwards.
	BrightRef *catalog.CrossRef

	// BrightByHR indexes merged records by bright-star number for the
	// annotator and astrometry stages.
	BrightByHR map[int]*catalog.StarRecord

	// ClusterKey is the registry key of the star-cluster anchor found
	// during the primary load, 0 if the anchor id never appeared.
	ClusterKey int
}

// NewContext creates a build context with an empty registry.
func NewContext(cfg *Config) *Context {
	return &Context{
		Config:     cfg,
		Log:        logging.Default(),
		Registry:   catalog.NewRegistry(),
		PrimaryRef: catalog.NewCrossRef(),
		BrightRef:  catalog.NewCrossRef(),
		BrightByHR: make(map[int]*catalog.StarRecord),
	}
}
