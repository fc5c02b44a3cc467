package build

import (
	"fmt"
	"strings"

	"github.com/agentstation/skymap/pkg/logging"
)

// testConfig returns the embedded default rules, panicking on failure so
// fixture setup stays terse.
func testConfig() *Config {
	cfg, err := DefaultConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// testContext returns a fresh build context with a silent logger.
func testContext() *Context {
	bc := NewContext(testConfig())
	bc.Log = &logging.Nop
	return bc
}

// fixedLine lays fragments at fixed byte offsets on a space-padded line.
func fixedLine(width int, parts map[int]string) string {
	b := []byte(strings.Repeat(" ", width))
	for at, s := range parts {
		copy(b[at:], s)
	}
	return strings.TrimRight(string(b), " ")
}

// primarySpec describes one primary-catalog fixture line.
type primarySpec struct {
	id         int
	raH, raM   int
	raS        float64
	decSign    string
	decD, decM int
	decS       float64
	pmRA       float64
	pmDec      float64
	mag        string // formatted field, "" for absent
	hr         int
	desig      string // "alp", " 61", ...
	index      string
	constAbbr  string
	name       string
}

func (s primarySpec) line() string {
	parts := map[int]string{
		0:  fmt.Sprintf("%4d", s.id),
		6:  fmt.Sprintf("%02d", s.raH),
		9:  fmt.Sprintf("%02d", s.raM),
		12: fmt.Sprintf("%05.2f", s.raS),
		20: s.decSign,
		21: fmt.Sprintf("%02d", s.decD),
		24: fmt.Sprintf("%02d", s.decM),
		27: fmt.Sprintf("%04.1f", s.decS),
		34: fmt.Sprintf("%7.2f", s.pmRA),
		42: fmt.Sprintf("%7.2f", s.pmDec),
	}
	if s.mag != "" {
		parts[51] = s.mag
	}
	if s.hr != 0 {
		parts[58] = fmt.Sprintf("%4d", s.hr)
	}
	if s.desig != "" {
		parts[64] = s.desig
	}
	if s.index != "" {
		parts[67] = s.index
	}
	if s.constAbbr != "" {
		parts[69] = s.constAbbr
	}
	if s.name != "" {
		parts[74] = s.name
	}
	return fixedLine(74+len(s.name), parts)
}

// brightSpec describes one bright-star fixture line.
type brightSpec struct {
	hr        int
	flam      string // 3 cols
	bayer     string // 3 cols
	index     string // 1 col
	constAbbr string // 3 cols
	fk5       int
	raH, raM  int
	raS       float64
	decSign   string
	decD      int
	decM      int
	decS      int
	mag       string
	pmRA      float64
	pmDec     float64
}

func (s brightSpec) line() string {
	parts := map[int]string{
		0:   fmt.Sprintf("%4d", s.hr),
		4:   fmt.Sprintf("%3s", s.flam),
		7:   fmt.Sprintf("%3s", s.bayer),
		10:  s.index,
		11:  fmt.Sprintf("%3s", s.constAbbr),
		75:  fmt.Sprintf("%02d", s.raH),
		77:  fmt.Sprintf("%02d", s.raM),
		79:  fmt.Sprintf("%04.1f", s.raS),
		83:  s.decSign,
		84:  fmt.Sprintf("%02d", s.decD),
		86:  fmt.Sprintf("%02d", s.decM),
		88:  fmt.Sprintf("%02d", s.decS),
		148: fmt.Sprintf("%6.3f", s.pmRA),
		154: fmt.Sprintf("%6.3f", s.pmDec),
	}
	if s.fk5 != 0 {
		parts[37] = fmt.Sprintf("%4d", s.fk5)
	}
	if s.mag != "" {
		parts[102] = s.mag
	}
	return fixedLine(160, parts)
}

// noteLine builds one notes fixture line.
func noteLine(hr int, code, text string) string {
	return fixedLine(12+len(text), map[int]string{
		0:  fmt.Sprintf("%5d", hr),
		7:  code,
		12: text,
	})
}

// astroLine builds one pipe-delimited astrometry fixture row.
func astroLine(id int, mag, raDeg, decDeg, pmRA, pmDec float64, fk5, hr int) string {
	f := func(v float64) string {
		return fmt.Sprintf("%9.4f", v)
	}
	opt := func(v int) string {
		if v == 0 {
			return "    "
		}
		return fmt.Sprintf("%4d", v)
	}
	return fmt.Sprintf("|%6d|%5.2f|%s|%s|%s|%s|%s|%s|",
		id, mag, f(raDeg), f(decDeg), f(pmRA), f(pmDec), opt(fk5), opt(hr))
}

// deepSkyNameLine builds one deep-sky name index fixture line.
func deepSkyNameLine(name string, ic bool, number int) string {
	fam := " "
	if ic {
		fam = "I"
	}
	return fixedLine(42, map[int]string{
		0:  name,
		36: fam,
		37: fmt.Sprintf("%5d", number),
	})
}

// deepSkyPosSpec describes one deep-sky position index fixture line.
type deepSkyPosSpec struct {
	ic        bool
	number    int
	raH       int
	raM       float64
	decSign   string
	decD      int
	decM      int
	constAbbr string
	mag       string
}

func (s deepSkyPosSpec) line() string {
	fam := " "
	if s.ic {
		fam = "I"
	}
	parts := map[int]string{
		0:  fam,
		1:  fmt.Sprintf("%4d", s.number),
		10: fmt.Sprintf("%02d", s.raH),
		13: fmt.Sprintf("%04.1f", s.raM),
		19: s.decSign,
		20: fmt.Sprintf("%02d", s.decD),
		23: fmt.Sprintf("%02d", s.decM),
		26: s.constAbbr,
	}
	if s.mag != "" {
		parts[40] = s.mag
	}
	return fixedLine(44, parts)
}
