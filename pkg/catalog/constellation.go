package catalog

import "strings"

// constellations lists the 88 IAU constellation abbreviations in
// alphabetical order of their Latin names. A constellation's code is its
// 1-based position in this list; code 0 means "unresolved".
var constellations = []string{
	"And", "Ant", "Aps", "Aqr", "Aql", "Ara", "Ari", "Aur",
	"Boo", "Cae", "Cam", "Cnc", "CVn", "CMa", "CMi", "Cap",
	"Car", "Cas", "Cen", "Cep", "Cet", "Cha", "Cir", "Col",
	"Com", "CrA", "CrB", "Crv", "Crt", "Cru", "Cyg", "Del",
	"Dor", "Dra", "Equ", "Eri", "For", "Gem", "Gru", "Her",
	"Hor", "Hya", "Hyi", "Ind", "Lac", "Leo", "LMi", "Lep",
	"Lib", "Lup", "Lyn", "Lyr", "Men", "Mic", "Mon", "Mus",
	"Nor", "Oct", "Oph", "Ori", "Pav", "Peg", "Per", "Phe",
	"Pic", "Psc", "PsA", "Pup", "Pyx", "Ret", "Sge", "Sgr",
	"Sco", "Scl", "Sct", "Ser", "Sex", "Tau", "Tel", "Tri",
	"TrA", "Tuc", "UMa", "UMi", "Vel", "Vir", "Vol", "Vul",
}

// constellationCodes maps lower-cased abbreviations to their codes.
var constellationCodes = func() map[string]int {
	m := make(map[string]int, len(constellations))
	for i, abbr := range constellations {
		m[strings.ToLower(abbr)] = i + 1
	}
	return m
}()

// NumConstellations is the number of IAU constellations.
const NumConstellations = 88

// ConstellationCode resolves a 3-letter constellation abbreviation
// (case-insensitive, surrounding spaces ignored) to its 1..88 code.
// Returns 0 for unrecognized abbreviations.
func ConstellationCode(abbr string) int {
	return constellationCodes[strings.ToLower(strings.TrimSpace(abbr))]
}

// ConstellationAbbr returns the canonical abbreviation for a code,
// or "" if the code is out of range.
func ConstellationAbbr(code int) string {
	if code < 1 || code > len(constellations) {
		return ""
	}
	return constellations[code-1]
}
