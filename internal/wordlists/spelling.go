package wordlists

// SpellingPattern categorizes a US/UK spelling difference.
type SpellingPattern int

const (
	// PatternOrOur is -or vs -our (color/colour).
	PatternOrOur SpellingPattern = iota
	// PatternErRe is -er vs -re (center/centre).
	PatternErRe
	// PatternIzeIse is -ize vs -ise (organize/organise).
	PatternIzeIse
	// PatternEnseEnce is -ense vs -ence (defense/defence).
	PatternEnseEnce
	// PatternOgOgue is -og vs -ogue (catalog/catalogue).
	PatternOgOgue
	// PatternAmAmme is -am vs -amme (program/programme).
	PatternAmAmme
	// PatternDouble is doubled consonant differences (traveling/travelling).
	PatternDouble
	// PatternMisc is everything else (gray/grey).
	PatternMisc
)

// SpellingPair is a US/UK spelling pair with its pattern category.
type SpellingPair struct {
	US      string
	UK      string
	Pattern SpellingPattern
}

// SpellingPairs lists US/UK spelling pairs organized by pattern.
var SpellingPairs = []SpellingPair{
	// -or / -our
	{"color", "colour", PatternOrOur},
	{"favor", "favour", PatternOrOur},
	{"honor", "honour", PatternOrOur},
	{"labor", "labour", PatternOrOur},
	{"neighbor", "neighbour", PatternOrOur},
	{"humor", "humour", PatternOrOur},
	{"flavor", "flavour", PatternOrOur},
	{"tumor", "tumour", PatternOrOur},
	{"vigor", "vigour", PatternOrOur},
	{"valor", "valour", PatternOrOur},
	{"behavior", "behaviour", PatternOrOur},
	{"harbor", "harbour", PatternOrOur},
	{"savior", "saviour", PatternOrOur},
	{"armor", "armour", PatternOrOur},
	{"clamor", "clamour", PatternOrOur},
	{"glamor", "glamour", PatternOrOur},
	{"parlor", "parlour", PatternOrOur},
	{"rancor", "rancour", PatternOrOur},
	{"endeavor", "endeavour", PatternOrOur},
	{"candor", "candour", PatternOrOur},
	{"demeanor", "demeanour", PatternOrOur},
	{"splendor", "splendour", PatternOrOur},
	{"odor", "odour", PatternOrOur},
	{"rumor", "rumour", PatternOrOur},
	// -er / -re
	{"center", "centre", PatternErRe},
	{"meter", "metre", PatternErRe},
	{"fiber", "fibre", PatternErRe},
	{"theater", "theatre", PatternErRe},
	{"somber", "sombre", PatternErRe},
	{"luster", "lustre", PatternErRe},
	{"meager", "meagre", PatternErRe},
	{"caliber", "calibre", PatternErRe},
	{"saber", "sabre", PatternErRe},
	{"specter", "spectre", PatternErRe},
	{"miter", "mitre", PatternErRe},
	{"ocher", "ochre", PatternErRe},
	{"maneuver", "manoeuvre", PatternErRe},
	{"sepulcher", "sepulchre", PatternErRe},
	// -ize / -ise
	{"organize", "organise", PatternIzeIse},
	{"recognize", "recognise", PatternIzeIse},
	{"analyze", "analyse", PatternIzeIse},
	{"realize", "realise", PatternIzeIse},
	{"customize", "customise", PatternIzeIse},
	{"specialize", "specialise", PatternIzeIse},
	{"apologize", "apologise", PatternIzeIse},
	{"minimize", "minimise", PatternIzeIse},
	{"optimize", "optimise", PatternIzeIse},
	{"authorize", "authorise", PatternIzeIse},
	{"categorize", "categorise", PatternIzeIse},
	{"criticize", "criticise", PatternIzeIse},
	{"emphasize", "emphasise", PatternIzeIse},
	{"finalize", "finalise", PatternIzeIse},
	{"initialize", "initialise", PatternIzeIse},
	{"standardize", "standardise", PatternIzeIse},
	{"summarize", "summarise", PatternIzeIse},
	{"utilize", "utilise", PatternIzeIse},
	// -ense / -ence
	{"defense", "defence", PatternEnseEnce},
	{"offense", "offence", PatternEnseEnce},
	{"license", "licence", PatternEnseEnce},
	{"pretense", "pretence", PatternEnseEnce},
	// -og / -ogue
	{"analog", "analogue", PatternOgOgue},
	{"catalog", "catalogue", PatternOgOgue},
	{"dialog", "dialogue", PatternOgOgue},
	{"monolog", "monologue", PatternOgOgue},
	{"prolog", "prologue", PatternOgOgue},
	// -am / -amme
	{"program", "programme", PatternAmAmme},
	{"gram", "gramme", PatternAmAmme},
	// Doubled consonants
	{"traveling", "travelling", PatternDouble},
	{"canceled", "cancelled", PatternDouble},
	{"counselor", "counsellor", PatternDouble},
	{"modeling", "modelling", PatternDouble},
	{"leveling", "levelling", PatternDouble},
	{"labeled", "labelled", PatternDouble},
	{"signaling", "signalling", PatternDouble},
	{"marvelous", "marvellous", PatternDouble},
	{"enrollment", "enrolment", PatternDouble},
	{"fulfillment", "fulfilment", PatternDouble},
	{"skillful", "skilful", PatternDouble},
	{"installment", "instalment", PatternDouble},
	// Miscellaneous
	{"gray", "grey", PatternMisc},
	{"artifact", "artefact", PatternMisc},
	{"skeptic", "sceptic", PatternMisc},
	{"jewelry", "jewellery", PatternMisc},
	{"aluminum", "aluminium", PatternMisc},
	{"pajamas", "pyjamas", PatternMisc},
}

// Dialect selects an English spelling convention as a BCP-47-style tag.
type Dialect string

const (
	// DialectEnUS is American English (color, center, organize, defense).
	DialectEnUS Dialect = "en-us"
	// DialectEnGB is British English (colour, centre, organise, defence).
	DialectEnGB Dialect = "en-gb"
	// DialectEnCA is Canadian English, a hybrid (colour, centre, organize).
	DialectEnCA Dialect = "en-ca"
	// DialectEnAU is Australian English, which follows British spelling.
	DialectEnAU Dialect = "en-au"
)

// ParseDialect converts a tag to a Dialect. The second return is false for
// unrecognized tags.
func ParseDialect(s string) (Dialect, bool) {
	switch Dialect(s) {
	case DialectEnUS, DialectEnGB, DialectEnCA, DialectEnAU:
		return Dialect(s), true
	}
	return "", false
}

// PrefersUS reports whether the dialect prefers the US form for a pattern.
// Canadian English is hybrid: US for -ize/-ise and -am/-amme, UK otherwise.
func (d Dialect) PrefersUS(pattern SpellingPattern) bool {
	switch d {
	case DialectEnUS:
		return true
	case DialectEnCA:
		return pattern == PatternIzeIse || pattern == PatternAmAmme
	default:
		return false
	}
}

// PreferredForm returns the spelling of pair this dialect expects.
func (d Dialect) PreferredForm(pair SpellingPair) string {
	if d.PrefersUS(pair.Pattern) {
		return pair.US
	}
	return pair.UK
}

// HyphenPatterns lists (joined, hyphenated) variant pairs.
var HyphenPatterns = [][2]string{
	{"email", "e-mail"},
	{"online", "on-line"},
	{"website", "web-site"},
	{"today", "to-day"},
	{"cooperate", "co-operate"},
	{"coordinate", "co-ordinate"},
}
