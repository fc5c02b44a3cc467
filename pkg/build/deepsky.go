package build

import (
	"regexp"
	"strings"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/parse"
)

// Deep-sky name index layout (0-based, end-exclusive):
//
//	 0-35   object name; "M nn" names carry the Messier number
//	36-37   catalog family flag, "I" for the IC family
//	37-42   catalog number
//
// Deep-sky position index layout:
//
//	 0- 1   catalog family flag, "I" for the IC family
//	 1- 5   catalog number
//	10-12   RA hours
//	13-17   RA minutes (decimal, no seconds)
//	19-20   Dec sign
//	20-22   Dec degrees
//	23-25   Dec minutes
//	26-29   constellation abbreviation
//	40-44   visual magnitude
const (
	dnName0, dnName1 = 0, 36
	dnFam0, dnFam1   = 36, 37
	dnID0, dnID1     = 37, 42

	dpFam0, dpFam1     = 0, 1
	dpID0, dpID1       = 1, 5
	dpRAh0, dpRAh1     = 10, 12
	dpRAm0, dpRAm1     = 13, 17
	dpSign0, dpSign1   = 19, 20
	dpDecD0, dpDecD1   = 20, 22
	dpDecM0, dpDecM1   = 23, 25
	dpConst0, dpConst1 = 26, 29
	dpMag0, dpMag1     = 40, 44
)

// messierName matches Messier-list designations in the name index.
var messierName = regexp.MustCompile(`^M\s+(\d+)$`)

// deepSkyNameInfo accumulates the names and Messier number claimed for
// one deep-sky catalog number while the name index is parsed.
type deepSkyNameInfo struct {
	name    string // multiple names joined with "/"
	messier int
}

// mergeDeepSky cross-references the deep-sky name index against the
// position index and appends the accepted objects as the final registry
// block. The name-info table is transient: built by the first sub-parser,
// consumed by the second, discarded when this stage returns.
//
// Context mutations: appends deep-sky records only.
func mergeDeepSky(ctx *Context, namesText, positionsText string) error {
	names := collectDeepSkyNames(ctx, namesText)

	added := 0
	for _, line := range strings.Split(positionsText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id := deepSkyID(
			parse.Field(line, dpFam0, dpFam1),
			parse.Int(line, dpID0, dpID1),
		)
		if id.IsZero() {
			continue
		}

		info, named := names[id.Signed()]
		mag := parse.FloatOr(line, dpMag0, dpMag1, catalog.UnknownMagnitude)
		if !named && mag > ctx.Config.Rules.DeepSky.Ceiling {
			continue
		}

		rec := &catalog.StarRecord{
			DeepSky: id,
			RA: parse.RAHours(
				parse.Float(line, dpRAh0, dpRAh1),
				parse.Float(line, dpRAm0, dpRAm1),
				0,
			),
			Dec: parse.DecDegrees(
				parse.Field(line, dpSign0, dpSign1),
				parse.Float(line, dpDecD0, dpDecD1),
				parse.Float(line, dpDecM0, dpDecM1),
				0,
			),
			Constellation: catalog.ConstellationCode(parse.Field(line, dpConst0, dpConst1)),
			Mag:           mag,
		}
		if named {
			rec.Name = info.name
			rec.Messier = info.messier
		}

		ctx.Registry.Append(rec)
		added++
	}

	ctx.Log.Info().Int("added", added).Msg("Merged deep-sky objects")
	return nil
}

// collectDeepSkyNames parses the name index into the transient name-info
// table keyed by sign-encoded catalog number.
func collectDeepSkyNames(ctx *Context, text string) map[int]*deepSkyNameInfo {
	names := make(map[int]*deepSkyNameInfo)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id := deepSkyID(
			parse.Field(line, dnFam0, dnFam1),
			parse.Int(line, dnID0, dnID1),
		)
		if id.IsZero() {
			continue
		}
		name := parse.Field(line, dnName0, dnName1)
		if name == "" {
			continue
		}

		info := names[id.Signed()]
		if info == nil {
			info = &deepSkyNameInfo{}
			names[id.Signed()] = info
		}

		if m := messierName.FindStringSubmatch(name); m != nil {
			messier := parse.Int(m[1], 0, len(m[1]))
			switch {
			case info.messier == 0:
				info.messier = messier
			case info.messier != messier:
				// Two Messier numbers claiming one object has no safe
				// resolution; the first writer wins.
				ctx.Log.Warn().
					Str("object", id.Family.String()).
					Int("number", id.Number).
					Int("kept", info.messier).
					Int("ignored", messier).
					Msg("Conflicting Messier numbers for deep-sky object")
			}
			continue
		}

		if info.name == "" {
			info.name = name
		} else {
			info.name += "/" + name
		}
	}
	return names
}

// deepSkyID builds a tagged designation from a family flag and number.
func deepSkyID(familyFlag string, number int) catalog.DeepSkyID {
	if number <= 0 {
		return catalog.DeepSkyID{}
	}
	if familyFlag == "I" {
		return catalog.DeepSkyID{Family: catalog.FamilyIC, Number: number}
	}
	return catalog.DeepSkyID{Family: catalog.FamilyNGC, Number: number}
}
