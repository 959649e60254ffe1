package wordlists

import "strings"

// irregularPastParticiples covers the irregular verbs whose participles do
// not end in -ed and would otherwise be missed by passive voice detection.
var irregularPastParticiples = makeSet(
	// Most common irregular verbs
	"been", "done", "gone", "seen", "known", "given", "taken", "made", "come",
	"become", "written", "spoken", "broken", "chosen", "driven", "eaten",
	"fallen", "forgotten", "forgiven", "frozen", "gotten", "hidden", "ridden",
	"risen", "shaken", "shown", "stolen", "sworn", "torn", "thrown", "worn",
	"beaten", "bitten", "blown", "drawn", "flown", "grown", "withdrawn",
	// Additional irregular forms
	"begun", "drunk", "rung", "shrunk", "sunk", "sprung", "stunk", "sung",
	"swum", "spun", "won", "hung", "struck", "stuck", "swung", "slung",
	"clung", "flung", "stung", "strung", "wrung",
	// Verbs with -en endings
	"arisen", "awoken", "borne", "begotten", "bidden", "forbidden", "forsaken",
	"hewn", "lain", "laden", "mistaken", "proven", "stricken", "stridden",
	"striven", "thriven", "trodden", "waken", "waxen", "woven",
	// Common -ed irregular forms
	"said", "paid", "laid", "heard", "sold", "told", "held", "left", "kept",
	"slept", "wept", "swept", "felt", "dealt", "meant", "sent", "spent",
	"bent", "lent", "built", "burnt", "learnt", "spelt", "spoilt", "dwelt",
	// Less common but important
	"abode", "awoke", "bore", "bound", "bred", "brought", "burst", "bought",
	"cast", "caught", "crept", "dug", "fed", "fought", "found", "fled",
	"forbade", "forecast", "forgot", "forsook", "froze", "got", "ground",
	"grew", "hid", "hit", "hurt", "knelt", "knew", "led", "let", "lit",
	"lost", "met", "overcome", "overthrown", "put", "quit", "read", "rid",
	"rang", "ran", "saw", "sought", "set", "sewed", "shed", "shone", "shot",
	"shut", "slain", "slid", "slit", "sown", "sped", "split", "spread",
	"stood", "strewn", "strode", "strove", "taught", "thought", "threw",
	"thrust", "took", "tore", "underwent", "understood", "undone", "upset",
	"woken", "wore", "wound", "wove", "wrought",
)

// adjectiveExceptions end in -ed/-en but are typically adjectives, not
// passive constructions ("she was tired").
var adjectiveExceptions = makeSet(
	"tired", "excited", "interested", "bored", "confused", "worried", "scared",
	"frightened", "amazed", "surprised", "shocked", "pleased", "satisfied",
	"disappointed", "frustrated", "embarrassed", "ashamed", "annoyed",
	"delighted", "thrilled", "stunned", "overwhelmed", "talented", "gifted",
	"blessed", "cursed", "aged", "beloved", "learned", "skilled", "experienced",
	"advanced", "supposed", "alleged", "concerned", "determined", "devoted",
	"distinguished", "educated", "enlightened", "equipped", "established",
	"esteemed", "extended", "informed", "inspired", "involved", "limited",
	"marked", "mixed", "organized", "packed", "prepared", "pronounced",
	"qualified", "refined", "relaxed", "relieved", "renowned", "reserved",
	"respected", "retired", "sophisticated", "trained", "troubled", "united",
	"unmarried", "used", "varied", "wasted", "wicked", "wounded",
)

// linkingVerbs can be confused with passive voice auxiliaries.
var linkingVerbs = makeSet(
	"seem", "seems", "seemed", "seeming",
	"appear", "appears", "appeared", "appearing",
	"become", "becomes", "became", "becoming",
	"feel", "feels", "felt", "feeling",
	"look", "looks", "looked", "looking",
	"remain", "remains", "remained", "remaining",
	"stay", "stays", "stayed", "staying",
	"sound", "sounds", "sounded", "sounding",
	"smell", "smells", "smelled", "smelling",
	"taste", "tastes", "tasted", "tasting",
)

// IsIrregularPastParticiple reports whether word is an irregular past
// participle.
func IsIrregularPastParticiple(word string) bool {
	return irregularPastParticiples[strings.ToLower(word)]
}

// IsAdjectiveException reports whether word is an -ed/-en adjective that
// should not count as passive voice.
func IsAdjectiveException(word string) bool {
	return adjectiveExceptions[strings.ToLower(word)]
}

// IsLinkingVerb reports whether word is a linking verb.
func IsLinkingVerb(word string) bool {
	return linkingVerbs[strings.ToLower(word)]
}
