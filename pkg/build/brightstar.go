package build

import (
	"strings"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/parse"
)

// Bright-star source column layout (0-based, end-exclusive). The embedded
// fixed-width name field at [4,14) splits into Flamsteed digits, a
// Greek-letter abbreviation, a sub-index digit and the constellation:
//
//	  0-  4   bright-star number
//	  4- 14   name field (4-7 Flamsteed, 7-10 Bayer, 10-11 index, 11-14 const)
//	 37- 41   primary catalog number, optional
//	 75- 77   RA hours
//	 77- 79   RA minutes
//	 79- 83   RA seconds
//	 83- 84   Dec sign
//	 84- 86   Dec degrees
//	 86- 88   Dec minutes
//	 88- 90   Dec seconds
//	102-107   visual magnitude
//	148-154   pm RA, arcseconds per year
//	154-160   pm Dec, arcseconds per year
const (
	bsHR0, bsHR1       = 0, 4
	bsName0, bsName1   = 4, 14
	bsFlam0, bsFlam1   = 4, 7
	bsBayer0, bsBayer1 = 7, 10
	bsIndex0, bsIndex1 = 10, 11
	bsConst0, bsConst1 = 11, 14
	bsFK0, bsFK1       = 37, 41
	bsRAh0, bsRAh1     = 75, 77
	bsRAm0, bsRAm1     = 77, 79
	bsRAs0, bsRAs1     = 79, 83
	bsSign0, bsSign1   = 83, 84
	bsDecD0, bsDecD1   = 84, 86
	bsDecM0, bsDecM1   = 86, 88
	bsDecS0, bsDecS1   = 88, 90
	bsMag0, bsMag1     = 102, 107
	bsPMRA0, bsPMRA1   = 148, 154
	bsPMDec0, bsPMDec1 = 154, 160
)

// Proper motion in RA arrives as arcseconds per year; internal RA unit is
// seconds of time per year.
const brightPMRAScale = 1.0 / 15.0

// brightLine is one surviving bright-star source line after dedup.
type brightLine struct {
	hr        int
	nameField string // raw embedded name field, dedup comparison key
	fk5       int
	mag       float64
	line      string
	drop      bool
}

// mergeBrightStars merges the all-sky bright-star catalog into the registry.
//
// Precondition on input ordering: the source is pre-sorted so that two
// entries recording the same physical star are ADJACENT. Dedup compares
// only the embedded name field of consecutive lines; a global dedup would
// change output composition and is deliberately not attempted.
//
// Context mutations: appends accepted new records past the primary block,
// overlays designation fields on matched primary records, fills BrightRef
// and BrightByHR, and seals the bright block.
func mergeBrightStars(ctx *Context, text string) error {
	lines := collectBrightLines(ctx, text)

	added, matched, rejected := 0, 0, 0
	for _, bl := range lines {
		if bl.drop {
			continue
		}
		switch mergeBrightLine(ctx, bl) {
		case brightAdded:
			added++
		case brightMatched:
			matched++
		case brightRejected:
			rejected++
		}
	}

	ctx.Registry.SealBright()
	ctx.Log.Info().
		Int("added", added).
		Int("matched", matched).
		Int("rejected", rejected).
		Msg("Merged bright stars")
	return nil
}

// collectBrightLines is pass 1: parse dedup keys and drop the dimmer of
// two consecutive lines sharing a name field. The survivor carries the
// maximum primary id seen across the pair. Every bright-star number gets
// a provisional zero entry in BrightRef.
func collectBrightLines(ctx *Context, text string) []brightLine {
	var lines []brightLine
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hr := parse.Int(line, bsHR0, bsHR1)
		if hr <= 0 {
			continue
		}
		ctx.BrightRef.Mark(hr)

		bl := brightLine{
			hr:        hr,
			nameField: parse.Field(line, bsName0, bsName1),
			fk5:       parse.Int(line, bsFK0, bsFK1),
			mag:       parse.FloatOr(line, bsMag0, bsMag1, catalog.UnknownMagnitude),
			line:      line,
		}

		if n := len(lines); n > 0 && bl.nameField != "" && lines[n-1].nameField == bl.nameField {
			prev := &lines[n-1]
			maxFK5 := max(prev.fk5, bl.fk5)
			// Keep the brighter entry; the survivor inherits the pair's
			// highest primary id.
			if bl.mag < prev.mag {
				prev.drop = true
				bl.fk5 = maxFK5
			} else {
				bl.drop = true
				prev.fk5 = maxFK5
			}
			ctx.Log.Debug().
				Int("hr", bl.hr).
				Str("name", bl.nameField).
				Msg("Dropped duplicate bright-star entry")
		}
		lines = append(lines, bl)
	}
	return lines
}

// mergeBrightLine outcomes.
type brightOutcome int

const (
	brightRejected brightOutcome = iota
	brightMatched
	brightAdded
)

// mergeBrightLine is pass 2 for one surviving line: resolve the primary
// id, match or accept, then overlay the designation fields.
func mergeBrightLine(ctx *Context, bl brightLine) brightOutcome {
	if bl.fk5 > 0 && bl.fk5 <= ctx.Registry.PrimaryEnd() {
		rec, ok := ctx.Registry.Get(bl.fk5)
		if !ok {
			// Dangling reference into the primary block: reject the
			// record, not the run.
			ctx.Log.Debug().Int("hr", bl.hr).Int("fk5", bl.fk5).Msg("Rejected dangling primary reference")
			return brightRejected
		}
		applyBrightFields(rec, bl.line)
		ctx.BrightRef.Set(bl.hr, rec.Key)
		ctx.BrightByHR[bl.hr] = rec
		return brightMatched
	}

	if !ctx.acceptBright(bl) {
		return brightRejected
	}

	rec := &catalog.StarRecord{
		HR: bl.hr,
		RA: parse.RAHours(
			parse.Float(bl.line, bsRAh0, bsRAh1),
			parse.Float(bl.line, bsRAm0, bsRAm1),
			parse.Float(bl.line, bsRAs0, bsRAs1),
		),
		Dec: parse.DecDegrees(
			parse.Field(bl.line, bsSign0, bsSign1),
			parse.Float(bl.line, bsDecD0, bsDecD1),
			parse.Float(bl.line, bsDecM0, bsDecM1),
			parse.Float(bl.line, bsDecS0, bsDecS1),
		),
		PMRA:  parse.Float(bl.line, bsPMRA0, bsPMRA1) * brightPMRAScale,
		PMDec: parse.Float(bl.line, bsPMDec0, bsPMDec1),
		Mag:   bl.mag,
	}
	applyBrightFields(rec, bl.line)

	key := ctx.Registry.Append(rec)
	ctx.BrightRef.Set(bl.hr, key)
	ctx.BrightByHR[bl.hr] = rec
	return brightAdded
}

// acceptBright decides inclusion of a bright-star entry that matched no
// existing registry record.
func (ctx *Context) acceptBright(bl brightLine) bool {
	if bl.mag <= ctx.Config.Rules.Bright.Ceiling {
		return true
	}
	if ctx.Config.LegacyBrightStar(bl.hr) {
		return true
	}
	rank := catalog.GreekRank(parse.Field(bl.line, bsBayer0, bsBayer1))
	return ctx.Config.RankQualifies(rank, bl.mag)
}

// applyBrightFields overlays the designation parsed from the embedded
// name field onto a record, whether matched or newly added. A recognized
// Greek letter takes precedence over a Flamsteed number so each record
// ends up with exactly one designation form.
func applyBrightFields(rec *catalog.StarRecord, line string) {
	code := catalog.ConstellationCode(parse.Field(line, bsConst0, bsConst1))

	if rank := catalog.GreekRank(parse.Field(line, bsBayer0, bsBayer1)); rank > 0 {
		rec.SetBayer(rank, parse.Int(line, bsIndex0, bsIndex1), code)
	} else if flam := parse.Int(line, bsFlam0, bsFlam1); flam > 0 {
		rec.SetFlamsteed(flam, code)
	} else {
		return
	}

	if code == 0 {
		rec.ClearDesignation()
	}
}
