package build

import (
	"context"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/logging"
	"github.com/agentstation/skymap/pkg/sources"
)

// Stage is one step of the build pipeline. Stages share the mutable build
// Context and must run strictly in the order Stages returns them: each
// stage dereferences registry and cross-reference state only earlier
// stages populated.
type Stage struct {
	Name    string
	Sources []sources.Name
	Run     func(bc *Context, texts []string) error
}

// Stages returns the fixed, ordered stage list. The ordering is part of
// the output contract and must never be rearranged.
func Stages() []Stage {
	return []Stage{
		{
			Name:    "primary-loader",
			Sources: []sources.Name{sources.Primary},
			Run: func(bc *Context, texts []string) error {
				return loadPrimary(bc, texts[0])
			},
		},
		{
			Name:    "bright-star-merger",
			Sources: []sources.Name{sources.BrightStars},
			Run: func(bc *Context, texts []string) error {
				return mergeBrightStars(bc, texts[0])
			},
		},
		{
			Name:    "bright-star-annotator",
			Sources: []sources.Name{sources.BrightStarNotes},
			Run: func(bc *Context, texts []string) error {
				return annotateBrightStars(bc, texts[0])
			},
		},
		{
			Name:    "astrometry-merger",
			Sources: []sources.Name{sources.Astrometry},
			Run: func(bc *Context, texts []string) error {
				return mergeAstrometry(bc, texts[0])
			},
		},
		{
			Name:    "deep-sky-merger",
			Sources: []sources.Name{sources.DeepSkyNames, sources.DeepSkyPositions},
			Run: func(bc *Context, texts []string) error {
				return mergeDeepSky(bc, texts[0], texts[1])
			},
		},
	}
}

// Pipeline runs the full reconciliation over a source provider.
type Pipeline struct {
	Provider sources.Provider
	Config   *Config
}

// Run executes every stage in order and returns the fully reconciled
// registry. Any stage or fetch failure aborts the whole run: the pipeline
// either produces a complete registry or none.
func (p *Pipeline) Run(ctx context.Context) (*catalog.Registry, error) {
	bc := NewContext(p.Config)
	base := logging.FromContext(ctx)

	for _, stage := range Stages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log := base.With().Str("stage", stage.Name).Logger()
		bc.Log = &log

		texts := make([]string, len(stage.Sources))
		for i, name := range stage.Sources {
			text, err := p.Provider.Fetch(ctx, name)
			if err != nil {
				return nil, err
			}
			texts[i] = text
		}

		if err := stage.Run(bc, texts); err != nil {
			return nil, err
		}
	}

	return bc.Registry, nil
}
