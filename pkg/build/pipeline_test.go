package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/sources"
)

// writeFixtureSources lays a complete six-file source set into dir,
// small but touching every merge path: a matched bright star, a new
// bright star, a legacy bright star, a matched and a new astrometry
// row, the cluster anchor, and one named deep-sky object.
func writeFixtureSources(t *testing.T, dir string) {
	t.Helper()

	files := map[sources.Name]string{
		sources.Primary: strings.Join([]string{
			primarySpec{
				id: 41, raH: 2, raM: 31, raS: 49.09,
				decSign: "+", decD: 89, decM: 15, decS: 50.8,
				pmRA: 19.88, pmDec: -1.52,
				mag: " 2.02", hr: 424, desig: "alp", constAbbr: "UMi",
				name: "POLARIS; ALPHA UMI.",
			}.line(),
			primarySpec{
				id: 100, raH: 6, raM: 45, raS: 8.92,
				decSign: "-", decD: 16, decM: 42, decS: 58.0,
				pmRA: -3.85, pmDec: -121.40,
				mag: " 5.50", constAbbr: "CMa",
			}.line(),
			primarySpec{
				id: 139, raH: 3, raM: 47, raS: 29.08,
				decSign: "+", decD: 24, decM: 6, decS: 18.5,
				pmRA: 1.34, pmDec: -4.34,
				mag: " 2.87", hr: 1165, desig: "eta", constAbbr: "Tau",
				name: "ALCYONE",
			}.line(),
		}, "\n"),

		sources.BrightStars: strings.Join([]string{
			brightSpec{
				hr: 424, flam: "  1", bayer: "alp", constAbbr: "UMi",
				fk5: 41, raH: 2, raM: 31, raS: 49.1,
				decSign: "+", decD: 89, decM: 15, decS: 51,
				mag: " 2.02", pmRA: 0.038, pmDec: -0.015,
			}.line(),
			brightSpec{
				hr: 500, flam: " 61", constAbbr: "Cyg",
				raH: 21, raM: 6, raS: 54.0,
				decSign: "+", decD: 38, decM: 44, decS: 58,
				mag: " 4.50", pmRA: 4.133, pmDec: 3.201,
			}.line(),
			brightSpec{
				hr: 7001, constAbbr: "Lyr",
				raH: 18, raM: 36, raS: 56.3,
				decSign: "+", decD: 38, decM: 47, decS: 1,
				mag: " 5.80", pmRA: 0.2, pmDec: 0.286,
			}.line(),
		}, "\n"),

		sources.BrightStarNotes: noteLine(500, "NAME", "PIAZZI; the Flying Star."),

		sources.Astrometry: strings.Join([]string{
			"|field |mag  |ra       |dec      |pmra     |pmdec    |fk5 |hr  |",
			astroLine(11767, 1.97, 37.95, 89.26, 44.48, -11.85, 41, 0),
			astroLine(60000, 7.00, 120.0, -10.0, 25.0, -8.0, 0, 0),
			astroLine(60001, 7.80, 130.0, -20.0, 0, 0, 0, 0),
		}, "\n"),

		sources.DeepSkyNames: strings.Join([]string{
			deepSkyNameLine("Great Nebula in Orion", false, 1976),
			deepSkyNameLine("M 42", false, 1976),
		}, "\n"),

		sources.DeepSkyPositions: deepSkyPosSpec{
			number: 1976, raH: 5, raM: 35.4,
			decSign: "-", decD: 5, decM: 27,
			constAbbr: "Ori", mag: " 4.0",
		}.line(),
	}

	for name, text := range files {
		path := filepath.Join(dir, string(name)+".dat")
		require.NoError(t, os.WriteFile(path, []byte(text+"\n"), 0o644))
	}
}

func TestPipelineRun(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSources(t, dir)

	p := &Pipeline{Provider: sources.NewDirProvider(dir), Config: testConfig()}
	reg, err := p.Run(context.Background())
	require.NoError(t, err)

	// Blocks stay contiguous and strictly ordered.
	assert.Equal(t, 139, reg.PrimaryEnd())
	assert.Equal(t, 141, reg.BrightEnd(), "new and legacy bright stars follow the primary block")
	assert.Equal(t, 142, reg.AstroEnd(), "one new astrometry record before the scan stops")
	assert.Equal(t, 144, reg.Last(), "cluster entry plus one deep-sky object close the catalog")

	polaris, ok := reg.Get(41)
	require.True(t, ok)
	assert.Equal(t, "Polaris", polaris.Name)
	assert.Equal(t, 424, polaris.HR)
	assert.InDelta(t, 1.97, polaris.Mag, 1e-9, "astrometry magnitude is brighter and wins")
	assert.InDelta(t, 37.95/15, polaris.RA, 1e-9, "astrometry position overrides the primary one")

	newBright, ok := reg.Get(140)
	require.True(t, ok)
	assert.Equal(t, 500, newBright.HR)
	assert.Equal(t, 61, newBright.Flamsteed)
	assert.Equal(t, "Piazzi", newBright.Name, "annotated from the notes file")

	legacy, ok := reg.Get(141)
	require.True(t, ok)
	assert.Equal(t, 7001, legacy.HR)
	assert.InDelta(t, 5.80, legacy.Mag, 1e-9)

	newAstro, ok := reg.Get(142)
	require.True(t, ok)
	assert.Equal(t, 60000, newAstro.HIP)
	assert.InDelta(t, 7.00, newAstro.Mag, 1e-9)

	cluster, ok := reg.Get(143)
	require.True(t, ok)
	assert.Equal(t, "Pleiades", cluster.Name)
	assert.Equal(t, 45, cluster.Messier)
	assert.Equal(t, catalog.DeepSkyID{Family: catalog.FamilyNGC, Number: 1432}, cluster.DeepSky)
	anchor, _ := reg.Get(139)
	assert.Equal(t, anchor.RA, cluster.RA, "cluster entry reuses the anchor position")

	orion, ok := reg.Get(144)
	require.True(t, ok)
	assert.Equal(t, "Great Nebula in Orion", orion.Name)
	assert.Equal(t, 42, orion.Messier)
}

func TestPipelineRunDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSources(t, dir)

	cfg := testConfig()
	p := &Pipeline{Provider: sources.NewDirProvider(dir), Config: cfg}

	out := t.TempDir()
	var payloads [][]byte
	for _, name := range []string{"a.dat", "b.dat"} {
		reg, err := p.Run(context.Background())
		require.NoError(t, err)

		path := filepath.Join(out, name)
		require.NoError(t, WriteCatalog(path, reg, cfg))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		payloads = append(payloads, data)
	}

	assert.Equal(t, payloads[0], payloads[1], "repeated builds produce byte-identical output")
}

func TestPipelineRunMissingSource(t *testing.T) {
	p := &Pipeline{Provider: sources.NewDirProvider(t.TempDir()), Config: testConfig()}
	_, err := p.Run(context.Background())
	require.Error(t, err)
}

func TestPipelineRunCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSources(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Pipeline{Provider: sources.NewDirProvider(dir), Config: testConfig()}
	_, err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
