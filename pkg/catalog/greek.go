package catalog

import "strings"

// greekLetters lists the 24 Greek-letter abbreviations used by Bayer
// designations, in alphabet order. A letter's rank is its 1-based position:
// alpha is 1, omega is 24.
var greekLetters = []string{
	"alp", "bet", "gam", "del", "eps", "zet",
	"eta", "the", "iot", "kap", "lam", "mu",
	"nu", "xi", "omi", "pi", "rho", "sig",
	"tau", "ups", "phi", "chi", "psi", "ome",
}

var greekRanks = func() map[string]int {
	m := make(map[string]int, len(greekLetters))
	for i, abbr := range greekLetters {
		m[abbr] = i + 1
	}
	return m
}()

// GreekRank resolves a Greek-letter abbreviation (case-insensitive,
// surrounding spaces ignored) to its Bayer rank 1..24. Catalogs pad
// two-letter abbreviations ("mu", "nu", "pi", "xi") to three columns;
// trailing space is handled by the trim. Returns 0 if unrecognized.
func GreekRank(abbr string) int {
	return greekRanks[strings.ToLower(strings.TrimSpace(abbr))]
}

// GreekAbbr returns the abbreviation for a Bayer rank, or "" if out of range.
func GreekAbbr(rank int) string {
	if rank < 1 || rank > len(greekLetters) {
		return ""
	}
	return greekLetters[rank-1]
}
