package parse

// RAHours converts a sexagesimal right ascension (hours, minutes, seconds)
// to decimal hours.
func RAHours(h, m, s float64) float64 {
	return h + m/60 + s/3600
}

// DecDegrees converts a signed sexagesimal declination to decimal degrees.
// The sign string carries the sign of the whole angle; deg, min and sec are
// magnitudes. Any sign string that is not "-" counts as positive, matching
// catalogs that print "+", a space, or nothing.
func DecDegrees(sign string, deg, min, sec float64) float64 {
	d := deg + min/60 + sec/3600
	if sign == "-" {
		return -d
	}
	return d
}
