package build

import (
	"regexp"
	"strings"

	"github.com/agentstation/skymap/pkg/parse"
)

// Notes source column layout (0-based, end-exclusive):
//
//	 0- 5   bright-star number
//	 7-11   classification code; only "NAME" entries carry a proper name
//	12-     explanatory text
const (
	ntHR0, ntHR1     = 0, 5
	ntCode0, ntCode1 = 7, 11
	ntText0          = 12
)

// nameMarker is the classification code of proper-name notes.
const nameMarker = "NAME"

// properNamePattern captures the leading run of uppercase letters and
// spaces before a terminator; everything after is commentary.
var properNamePattern = regexp.MustCompile(`^([A-Z][A-Z ]*)[.;]`)

// annotateBrightStars recovers proper names for merged bright stars from
// the notes source. Only notes whose code is exactly the name marker and
// whose bright-star number resolves to a real registry record are used;
// the recovered name overwrites any name already present.
//
// Context mutations: record name fields only.
func annotateBrightStars(ctx *Context, text string) error {
	named := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if parse.Field(line, ntCode0, ntCode1) != nameMarker {
			continue
		}

		hr := parse.Int(line, ntHR0, ntHR1)
		rec, ok := ctx.BrightByHR[hr]
		if !ok {
			continue
		}
		if _, resolved := ctx.BrightRef.Resolve(hr); !resolved {
			continue
		}

		if len(line) <= ntText0 {
			continue
		}
		m := properNamePattern.FindStringSubmatch(line[ntText0:])
		if m == nil {
			continue
		}

		rec.Name = TitleCase(strings.TrimSpace(m[1]))
		named++
	}

	ctx.Log.Info().Int("named", named).Msg("Annotated bright stars")
	return nil
}
