package wordlists

import "strings"

// abbreviations that should not trigger sentence breaks when followed by a
// period. Stored lowercased without trailing periods; entries with internal
// periods ("e.g", "u.s") keep them.
var abbreviations = makeSet(
	// Titles and honorifics
	"mr", "mrs", "ms", "miss", "dr", "prof", "rev", "fr", "sr", "jr", "messrs", "mmes", "msgr",
	"hon", "esq", "phd", "md", "dds", "capt", "col", "gen", "lt", "maj", "sgt", "cpl", "pvt",
	"adm", "cmdr", "sen", "rep", "gov", "pres", "sec",
	// Academic degrees
	"b.a", "b.s", "m.a", "m.s", "m.b.a", "ph.d", "m.d", "j.d", "ll.b", "ll.m", "d.d.s",
	"d.v.m", "pharm.d", "ed.d", "psy.d",
	// Common abbreviations
	"etc", "vs", "e.g", "i.e", "et al", "cf", "viz", "ibid", "op. cit", "loc. cit", "n.b",
	"p.s", "r.s.v.p",
	// Time and dates
	"a.m", "p.m", "b.c", "a.d", "c.e", "b.c.e", "jan", "feb", "mar", "apr", "jun", "jul",
	"aug", "sep", "sept", "oct", "nov", "dec", "mon", "tue", "tues", "wed", "thu", "thur",
	"thurs", "fri", "sat", "sun",
	// Locations and geography
	"st", "ave", "blvd", "rd", "ct", "ln", "pl", "ter", "apt", "ste", "rm", "fl", "bldg",
	"dept", "u.s", "u.k", "u.s.a", "e.u", "n.y", "calif", "fla", "mass", "penn", "wash",
	// Business and organizations
	"inc", "corp", "ltd", "llc", "co", "bros", "assn", "div", "mfg", "dist", "intl",
	// Units of measurement
	"oz", "lb", "lbs", "kg", "g", "mg", "l", "ml", "cm", "mm", "m", "km", "in", "ft", "yd",
	"mi", "sq", "cu", "mph", "kph", "rpm", "hp",
	// Technical and scientific
	"vol", "no", "nos", "p", "pp", "par", "sec", "ch", "fig", "eq", "est", "approx", "min",
	"max", "avg",
	// Miscellaneous
	"misc", "nr", "ref", "refs", "ed", "eds", "trans", "supp", "app", "encl",
)

// IsAbbreviation reports whether word is a known abbreviation. The lookup is
// case-insensitive and ignores leading/trailing periods.
func IsAbbreviation(word string) bool {
	trimmed := strings.Trim(strings.ToLower(word), ".")
	return abbreviations[trimmed]
}
