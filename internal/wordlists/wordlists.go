// Package wordlists holds the curated static word data used by the analysis
// checks: glue words, transitions, vague words, business jargon, clichés,
// sensory vocabulary, hidden verbs, conjunctions, plus the dictionaries for
// abbreviations, syllables, and irregular verb forms.
package wordlists

// GlueWords are common function words (the, a, and, or, ...) that carry
// grammatical structure but little meaning. Used by the sticky-sentence and
// overused-word checks.
var GlueWords = makeSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"from", "up", "about", "into", "through", "during", "that", "this", "these", "those", "it",
	"its", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do",
	"does", "did", "will", "would", "should", "could", "may", "might", "must", "can", "which",
	"who", "when", "where", "why", "how", "if", "than", "then", "as", "so",
)

// TransitionWords connect ideas between sentences.
var TransitionWords = makeSet(
	"however", "therefore", "thus", "consequently", "nevertheless", "moreover",
	"furthermore", "additionally", "meanwhile", "instead", "otherwise", "similarly",
	"likewise", "conversely", "nonetheless", "hence", "accordingly", "subsequently",
	"indeed", "specifically", "particularly", "especially",
)

// TransitionPhrases are multi-word transitions, matched by substring against
// the lowercased sentence.
var TransitionPhrases = []string{
	"for example", "for instance", "in addition", "in contrast",
	"on the other hand", "as a result", "in conclusion", "in summary",
	"to summarize", "finally",
}

// VagueWords weaken prose.
var VagueWords = makeSet(
	"thing", "things", "stuff", "nice", "good", "bad", "great", "terrible",
	"amazing", "awesome", "interesting", "very", "really", "quite", "rather",
	"somewhat", "pretty", "fairly",
)

// VaguePhrases are multi-word hedges.
var VaguePhrases = []string{"kind of", "sort of", "a bit"}

// BusinessJargon is corporate filler vocabulary.
var BusinessJargon = makeSet(
	"synergy", "leverage", "paradigm", "disrupt", "innovative", "streamline",
	"optimization", "scalable", "bandwidth", "win-win", "game changer",
	"best practice", "core competency", "value-added", "going forward",
	"deep dive", "reach out",
)

// BusinessJargonPhrases are multi-word jargon expressions.
var BusinessJargonPhrases = []string{
	"circle back", "touch base", "low-hanging fruit", "move the needle",
	"drink the kool-aid", "boil the ocean", "think outside the box",
	"at the end of the day", "take it offline", "drill down",
}

// Cliches are worn-out stock phrases.
var Cliches = []string{
	"avoid it like the plague",
	"beat around the bush",
	"better late than never",
	"bite the bullet",
	"break the ice",
	"bring to the table",
	"call it a day",
	"cut to the chase",
	"easy as pie",
	"get the ball rolling",
	"hit the nail on the head",
	"in the nick of time",
	"it goes without saying",
	"jump on the bandwagon",
	"keep your eyes peeled",
	"let the cat out of the bag",
	"piece of cake",
	"raining cats and dogs",
	"the best of both worlds",
	"throw in the towel",
	"time flies",
	"under the weather",
	"when pigs fly",
	"whole nine yards",
	"a blessing in disguise",
	"a dime a dozen",
	"actions speak louder than words",
	"add insult to injury",
	"at the drop of a hat",
	"back to square one",
	"barking up the wrong tree",
	"bent out of shape",
	"bite off more than you can chew",
	"break a leg",
	"burning the midnight oil",
	"caught between a rock and a hard place",
	"costs an arm and a leg",
	"cry over spilled milk",
	"curiosity killed the cat",
	"devil's advocate",
	"don't count your chickens",
	"every cloud has a silver lining",
}

// SensoryWords is sensory vocabulary grouped by sense.
var SensoryWords = map[string]map[string]bool{
	"sight": makeSet(
		"see", "saw", "seen", "look", "looked", "looking", "watch", "watched",
		"bright", "dark", "light", "shadow", "color", "colorful", "shiny", "dull",
		"vivid", "brilliant", "gleaming", "glowing", "sparkling", "shimmering",
		"transparent", "opaque", "visible", "invisible", "appearance", "view",
		"glimpse", "glance", "stare", "gaze", "observe", "notice", "spot",
	),
	"sound": makeSet(
		"hear", "heard", "listen", "listened", "sound", "noise", "loud", "quiet",
		"silent", "whisper", "shout", "scream", "yell", "murmur", "mumble", "echo",
		"ring", "buzz", "hum", "bang", "crash", "thump", "click", "rustle",
		"crackle", "pop", "snap", "sizzle", "hiss", "roar", "howl", "musical",
		"melodious", "harmonious", "deafening", "piercing",
	),
	"touch": makeSet(
		"feel", "felt", "touch", "touched", "soft", "hard", "smooth", "rough",
		"texture", "cold", "hot", "warm", "cool", "freezing", "burning", "icy",
		"sticky", "slippery", "dry", "wet", "moist", "damp", "sharp", "dull",
		"coarse", "silky", "velvety", "grainy", "bumpy", "prickly", "tender",
		"firm", "solid", "squishy", "fluffy", "crisp", "brittle",
	),
	"smell": makeSet(
		"smell", "smelled", "smelling", "scent", "odor", "aroma", "fragrance",
		"perfume", "stink", "stench", "whiff", "sniff", "fragrant", "aromatic",
		"pungent", "acrid", "musty", "moldy", "fresh", "stale", "rancid", "sweet",
		"sour", "spicy", "floral", "earthy", "smoky", "putrid",
	),
	"taste": makeSet(
		"taste", "tasted", "tasting", "flavor", "flavored", "sweet", "sour",
		"bitter", "salty", "savory", "spicy", "tangy", "tart", "bland", "mild",
		"delicious", "tasty", "appetizing", "mouthwatering", "scrumptious",
		"palatable", "flavorful", "zesty", "peppery", "sugary", "acidic",
	),
}

// HiddenVerbs maps nominalizations to the verb they bury.
var HiddenVerbs = map[string]string{
	"decision":       "decide",
	"conclusion":     "conclude",
	"assumption":     "assume",
	"observation":    "observe",
	"consideration":  "consider",
	"implementation": "implement",
	"investigation":  "investigate",
	"examination":    "examine",
	"explanation":    "explain",
	"discussion":     "discuss",
	"analysis":       "analyze",
	"recommendation": "recommend",
	"suggestion":     "suggest",
	"description":    "describe",
}

// Conjunctions are the coordinating conjunctions.
var Conjunctions = makeSet("and", "but", "or", "so", "yet", "for", "nor")

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
