package build

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAstrometryMatchedOverride(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30) // seeded at mag 4.00

	t.Run("never dims a known star", func(t *testing.T) {
		text := astroLine(11767, 4.50, 37.95, 89.26, 44.48, -11.85, 30, 0)
		require.NoError(t, mergeAstrometry(bc, text))

		rec, _ := bc.Registry.Get(30)
		assert.InDelta(t, 4.00, rec.Mag, 1e-9, "fainter new magnitude ignored")
		assert.InDelta(t, 37.95/15.0, rec.RA, 1e-9, "position always overwritten")
		assert.InDelta(t, 89.26, rec.Dec, 1e-9)
	})
}

func TestMergeAstrometryBrightensMatch(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30)

	text := astroLine(11767, 3.10, 37.95, 89.26, 0, 0, 30, 0)
	require.NoError(t, mergeAstrometry(bc, text))

	rec, _ := bc.Registry.Get(30)
	assert.InDelta(t, 3.10, rec.Mag, 1e-9, "brighter new magnitude wins")
}

func TestMergeAstrometryResolutionPriority(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30, 31)
	require.NoError(t, mergeBrightStars(bc, brightSpec{hr: 700, mag: " 2.00"}.line()))
	brightKey := bc.BrightByHR[700].Key

	// Row carries both ids; the primary table must win.
	text := astroLine(1, 2.00, 15.0, 10.0, 0, 0, 31, 700)
	require.NoError(t, mergeAstrometry(bc, text))

	rec, _ := bc.Registry.Get(31)
	assert.InDelta(t, 1.0, rec.RA, 1e-9, "primary match updated")

	brightRec, _ := bc.Registry.Get(brightKey)
	assert.Greater(t, math.Abs(brightRec.RA-1.0), 1e-9, "bright match untouched when primary resolves")
}

func TestMergeAstrometryMatchesViaBrightTable(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30)
	require.NoError(t, mergeBrightStars(bc, brightSpec{hr: 700, mag: " 2.00"}.line()))

	text := astroLine(2, 1.80, 30.0, -5.0, 0, 0, 0, 700)
	require.NoError(t, mergeAstrometry(bc, text))

	rec := bc.BrightByHR[700]
	assert.InDelta(t, 2.0, rec.RA, 1e-9)
	assert.InDelta(t, 1.80, rec.Mag, 1e-9)
}

func TestMergeAstrometryNewRecordsAndStopRule(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30)
	require.NoError(t, mergeBrightStars(bc, ""))

	// Magnitude-sorted rows: one faint-but-acceptable new record, then a
	// row past the ceiling that must stop the scan, so the final matched
	// row never applies.
	text := strings.Join([]string{
		astroLine(90001, 6.90, 120.0, 12.0, 10.0, -5.0, 0, 0),
		astroLine(90002, 7.80, 130.0, 13.0, 0, 0, 0, 0),
		astroLine(90003, 7.90, 140.0, 14.0, 0, 0, 30, 0),
	}, "\n")
	require.NoError(t, mergeAstrometry(bc, text))

	assert.Equal(t, bc.Registry.BrightEnd()+1, bc.Registry.AstroEnd(), "exactly one astrometry addition")

	rec, ok := bc.Registry.Get(bc.Registry.AstroEnd())
	require.True(t, ok)
	assert.Equal(t, 90001, rec.HIP)
	assert.InDelta(t, 8.0, rec.RA, 1e-9)

	primary, _ := bc.Registry.Get(30)
	assert.Greater(t, math.Abs(primary.RA-140.0/15.0), 1e-9, "rows after the stop row are never processed")
}

func TestMergeAstrometrySkipsNonDataRows(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30)
	require.NoError(t, mergeBrightStars(bc, ""))

	text := strings.Join([]string{
		"# leading comment",
		"|field|mag|ra|dec|pmra|pmdec|fk5|hr|",
		"|---|---|---|---|---|---|---|---|",
		astroLine(500, 5.00, 45.0, 0.0, 0, 0, 30, 0),
	}, "\n")
	require.NoError(t, mergeAstrometry(bc, text))

	rec, _ := bc.Registry.Get(30)
	assert.InDelta(t, 3.0, rec.RA, 1e-9, "only the data row applied")
}

func TestMergeAstrometryCosineCorrection(t *testing.T) {
	bc := testContext()
	seedPrimary(t, bc, 30)
	require.NoError(t, mergeBrightStars(bc, ""))

	// 100 mas/yr at Dec 60: cos(60 deg) = 0.5 doubles the RA rate before
	// the arcsec-to-time conversion.
	text := astroLine(600, 5.00, 90.0, 60.0, 100.0, 50.0, 30, 0)
	require.NoError(t, mergeAstrometry(bc, text))

	rec, _ := bc.Registry.Get(30)
	wantPMRA := (100.0 / 1000.0) / (15.0 * math.Cos(60.0*math.Pi/180.0))
	assert.InDelta(t, wantPMRA, rec.PMRA, 1e-9)
	assert.InDelta(t, 0.05, rec.PMDec, 1e-9)
}

func TestClusterEntryAppended(t *testing.T) {
	bc := testContext()

	anchor := primarySpec{
		id: 139, raH: 3, raM: 47, raS: 29.08,
		decSign: "+", decD: 24, decM: 6, decS: 18.5,
		mag: " 2.87",
	}
	require.NoError(t, loadPrimary(bc, anchor.line()))
	require.NoError(t, mergeBrightStars(bc, ""))
	require.NoError(t, mergeAstrometry(bc, ""))

	require.Equal(t, bc.Registry.AstroEnd()+1, bc.Registry.Last(), "one deep-sky entry appended")

	rec, ok := bc.Registry.Get(bc.Registry.Last())
	require.True(t, ok)
	assert.Equal(t, "Pleiades", rec.Name)
	assert.Equal(t, 45, rec.Messier)
	assert.Equal(t, 1432, rec.DeepSky.Number)
	assert.InDelta(t, 1.6, rec.Mag, 1e-9)

	anchorRec, _ := bc.Registry.Get(139)
	assert.Equal(t, anchorRec.RA, rec.RA, "cluster reuses the anchor position")
	assert.Equal(t, anchorRec.Dec, rec.Dec)
}

func TestClusterEntrySkippedWithoutAnchor(t *testing.T) {
	bc := testContext()
	require.NoError(t, loadPrimary(bc, primarySpec{id: 7, raH: 1, decSign: "+", decD: 5}.line()))
	require.NoError(t, mergeBrightStars(bc, ""))
	require.NoError(t, mergeAstrometry(bc, ""))

	assert.Equal(t, bc.Registry.AstroEnd(), bc.Registry.Last())
}
