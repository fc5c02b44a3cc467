package build

import (
	"math"
	"strings"
	"unicode"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/parse"
)

// Astrometry source rows are pipe-delimited. A data row starts with a pipe
// followed by a non-lowercase character; everything else (headers,
// separators, comments) is skipped. Field positions after splitting on '|':
//
//	1   astrometry catalog number
//	2   visual magnitude
//	3   RA, degrees
//	4   Dec, degrees
//	5   pm RA, mas/yr (includes the cos(Dec) factor)
//	6   pm Dec, mas/yr
//	7   primary catalog number, optional
//	8   bright-star number, optional
const (
	hipFieldID = iota + 1
	hipFieldMag
	hipFieldRA
	hipFieldDec
	hipFieldPMRA
	hipFieldPMDec
	hipFieldFK5
	hipFieldHR
	hipNumFields
)

// mergeAstrometry overwrites matched records with the denser astrometric
// values and extends the registry with new entries.
//
// Precondition on input ordering: rows are sorted by ascending magnitude.
// The first unmatched row past the configured ceiling terminates the
// source, since no later row could be accepted as a new record.
//
// Context mutations: overwrites position/proper-motion/magnitude fields of
// matched records (the only in-place overwrite in the pipeline), appends
// new records as the astrometry block, seals that block, and finally
// appends the synthetic cluster entry if the anchor was found.
func mergeAstrometry(ctx *Context, text string) error {
	updated, added := 0, 0

scan:
	for _, line := range strings.Split(text, "\n") {
		if !isAstrometryRow(line) {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < hipNumFields {
			continue
		}

		id := parseField(fields, hipFieldID)
		if id <= 0 {
			continue
		}
		mag := parseFieldMag(fields, hipFieldMag)

		rec := ctx.resolveAstrometry(fields)
		if rec == nil {
			if mag > ctx.Config.Rules.Astrometry.NewRecordCeiling {
				// Rows are magnitude-sorted: nothing past this point can
				// qualify as a new record.
				break scan
			}
			rec = &catalog.StarRecord{HIP: id, Mag: mag}
			applyAstrometry(rec, fields)
			ctx.Registry.Append(rec)
			added++
			continue
		}

		// Never dim a known star; positions and proper motions always
		// take this source's values.
		rec.Mag = math.Min(rec.Mag, mag)
		applyAstrometry(rec, fields)
		updated++
	}

	ctx.Registry.SealAstrometry()
	appendClusterEntry(ctx)

	ctx.Log.Info().
		Int("updated", updated).
		Int("added", added).
		Msg("Merged astrometry catalog")
	return nil
}

// isAstrometryRow reports whether a line is a data row: a leading pipe
// followed by a non-lowercase character.
func isAstrometryRow(line string) bool {
	if len(line) < 2 || line[0] != '|' {
		return false
	}
	return !unicode.IsLower(rune(line[1]))
}

// resolveAstrometry finds the registry record a row refers to, trying the
// primary cross-reference table before the bright-star one.
func (ctx *Context) resolveAstrometry(fields []string) *catalog.StarRecord {
	if fk5 := parseField(fields, hipFieldFK5); fk5 > 0 {
		if key, ok := ctx.PrimaryRef.Resolve(fk5); ok {
			if rec, present := ctx.Registry.Get(key); present {
				return rec
			}
		}
	}
	if hr := parseField(fields, hipFieldHR); hr > 0 {
		if key, ok := ctx.BrightRef.Resolve(hr); ok {
			if rec, present := ctx.Registry.Get(key); present {
				return rec
			}
		}
	}
	return nil
}

// applyAstrometry overwrites a record's position and proper motion with
// the row's values. RA arrives in degrees; proper motion in mas/yr, with
// the RA component carrying the cos(Dec) foreshortening factor that must
// be divided back out for our polar-safe internal unit.
func applyAstrometry(rec *catalog.StarRecord, fields []string) {
	rec.RA = parseFieldFloat(fields, hipFieldRA) / 15.0
	rec.Dec = parseFieldFloat(fields, hipFieldDec)

	// mas/yr -> arcsec/yr
	pmRA := parseFieldFloat(fields, hipFieldPMRA) / 1000.0
	pmDec := parseFieldFloat(fields, hipFieldPMDec) / 1000.0

	cosDec := math.Cos(rec.Dec * math.Pi / 180.0)
	if cosDec != 0 {
		// arcsec/yr of great circle -> seconds of time per year in RA.
		rec.PMRA = pmRA / (15.0 * cosDec)
	} else {
		rec.PMRA = 0
	}
	rec.PMDec = pmDec
}

// appendClusterEntry appends the synthetic deep-sky entry for the star
// cluster anchored during the primary load. It reuses the anchor star's
// refined position and proper motion with the configured fixed
// designation, name and magnitude.
func appendClusterEntry(ctx *Context) {
	if ctx.ClusterKey == 0 {
		return
	}
	anchor, ok := ctx.Registry.Get(ctx.ClusterKey)
	if !ok {
		return
	}

	cluster := ctx.Config.Rules.Cluster
	ctx.Registry.Append(&catalog.StarRecord{
		DeepSky: catalog.DeepSkyID{Family: catalog.FamilyNGC, Number: cluster.NGC},
		Messier: cluster.Messier,
		Name:    cluster.Name,
		RA:      anchor.RA,
		Dec:     anchor.Dec,
		PMRA:    anchor.PMRA,
		PMDec:   anchor.PMDec,
		Mag:     cluster.Magnitude,
	})
	ctx.Log.Debug().Str("name", cluster.Name).Msg("Appended synthetic cluster entry")
}

// parseField reads a pipe-delimited field as an integer, 0 if malformed.
func parseField(fields []string, i int) int {
	return parse.Int(fields[i], 0, len(fields[i]))
}

// parseFieldFloat reads a pipe-delimited field as a float, 0 if malformed.
func parseFieldFloat(fields []string, i int) float64 {
	return parse.Float(fields[i], 0, len(fields[i]))
}

// parseFieldMag reads a magnitude field, unknown-sentinel if malformed.
func parseFieldMag(fields []string, i int) float64 {
	return parse.FloatOr(fields[i], 0, len(fields[i]), catalog.UnknownMagnitude)
}
