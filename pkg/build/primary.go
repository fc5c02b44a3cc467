package build

import (
	"strings"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/parse"
)

// Primary source column layout (0-based, end-exclusive), one record per
// line, strictly positional:
//
//	 0- 4   primary catalog number
//	 6- 8   RA hours
//	 9-11   RA minutes
//	12-18   RA seconds
//	20-21   Dec sign
//	21-23   Dec degrees
//	24-26   Dec minutes
//	27-32   Dec seconds
//	34-41   pm RA, seconds of time per century
//	42-49   pm Dec, arcseconds per century
//	51-56   visual magnitude
//	58-62   bright-star number, optional
//	64-67   designation abbreviation (Flamsteed digits or Greek letters)
//	67-68   designation sub-index
//	69-72   constellation abbreviation
//	74-     proper name, ';'-delimited suffix discarded
const (
	fkID0, fkID1       = 0, 4
	fkRAh0, fkRAh1     = 6, 8
	fkRAm0, fkRAm1     = 9, 11
	fkRAs0, fkRAs1     = 12, 18
	fkSign0, fkSign1   = 20, 21
	fkDecD0, fkDecD1   = 21, 23
	fkDecM0, fkDecM1   = 24, 26
	fkDecS0, fkDecS1   = 27, 32
	fkPMRA0, fkPMRA1   = 34, 41
	fkPMDec0, fkPMDec1 = 42, 49
	fkMag0, fkMag1     = 51, 56
	fkHR0, fkHR1       = 58, 62
	fkDesig0, fkDesig1 = 64, 67
	fkIndex0, fkIndex1 = 67, 68
	fkConst0, fkConst1 = 69, 72
	fkName0            = 74
)

// Centennial to annual proper motion, with RA converted from seconds of
// time to our internal unit (also seconds of time, per year).
const primaryPMScale = 1.0 / 100.0

// loadPrimary seeds the registry from the primary reference catalog.
//
// Context mutations: inserts every parsed record into Registry under its
// own catalog number, fills PrimaryRef, records ClusterKey when the
// configured anchor id appears, and seals the primary block.
func loadPrimary(ctx *Context, text string) error {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id := parse.Int(line, fkID0, fkID1)
		if id <= 0 {
			continue
		}

		rec := &catalog.StarRecord{
			FK5: id,
			HR:  parse.Int(line, fkHR0, fkHR1),
			RA: parse.RAHours(
				parse.Float(line, fkRAh0, fkRAh1),
				parse.Float(line, fkRAm0, fkRAm1),
				parse.Float(line, fkRAs0, fkRAs1),
			),
			Dec: parse.DecDegrees(
				parse.Field(line, fkSign0, fkSign1),
				parse.Float(line, fkDecD0, fkDecD1),
				parse.Float(line, fkDecM0, fkDecM1),
				parse.Float(line, fkDecS0, fkDecS1),
			),
			PMRA:  parse.Float(line, fkPMRA0, fkPMRA1) * primaryPMScale,
			PMDec: parse.Float(line, fkPMDec0, fkPMDec1) * primaryPMScale,
			Mag:   parse.FloatOr(line, fkMag0, fkMag1, catalog.UnknownMagnitude),
		}

		applyDesignation(rec,
			parse.Field(line, fkDesig0, fkDesig1),
			parse.Int(line, fkIndex0, fkIndex1),
			parse.Field(line, fkConst0, fkConst1),
		)

		if len(line) > fkName0 {
			if name, ok := AcceptProperName(line[fkName0:]); ok {
				rec.Name = name
			}
		}

		if err := ctx.Registry.InsertPrimary(id, rec); err != nil {
			return err
		}
		ctx.PrimaryRef.Set(id, id)

		if id == ctx.Config.Rules.Cluster.AnchorFK5 {
			ctx.ClusterKey = id
		}
		count++
	}

	ctx.Registry.SealPrimary()
	ctx.Log.Info().
		Int("records", count).
		Int("highest", ctx.Registry.PrimaryEnd()).
		Msg("Loaded primary catalog")
	return nil
}

// applyDesignation interprets a designation abbreviation as either a
// Flamsteed number (digits) or a Greek-letter Bayer rank, resolving the
// constellation. A failed constellation lookup clears the whole
// designation: a bare Flamsteed or Bayer token is meaningless without one.
func applyDesignation(rec *catalog.StarRecord, abbr string, index int, constAbbr string) {
	code := catalog.ConstellationCode(constAbbr)

	if rank := catalog.GreekRank(abbr); rank > 0 {
		rec.SetBayer(rank, index, code)
	} else if n := parse.Int(abbr, 0, len(abbr)); n > 0 {
		rec.SetFlamsteed(n, code)
	} else {
		return
	}

	if code == 0 {
		rec.ClearDesignation()
	}
}
