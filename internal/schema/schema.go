// Package schema defines the report structures produced by the checks and
// the lint engine. Everything here serializes to JSON for machine output.
package schema

// GrammarIssueType identifies a category of grammar issue.
type GrammarIssueType string

const (
	IssueSubjectVerbAgreement GrammarIssueType = "subject_verb_agreement"
	IssueDoubleNegative       GrammarIssueType = "double_negative"
	IssueRunOnSentence        GrammarIssueType = "run_on_sentence"
	IssueCommaSplice          GrammarIssueType = "comma_splice"
	IssueDoubleSpace          GrammarIssueType = "double_space"
	IssueMissingPunctuation   GrammarIssueType = "missing_punctuation"
)

// Severity grades a grammar issue.
type Severity string

const (
	// SeverityLow is a style suggestion, not necessarily wrong.
	SeverityLow Severity = "low"
	// SeverityMedium is a likely issue worth addressing.
	SeverityMedium Severity = "medium"
	// SeverityHigh is a clear grammar error.
	SeverityHigh Severity = "high"
)

// GrammarIssue is a detected grammar problem.
type GrammarIssue struct {
	IssueType   GrammarIssueType `json:"issue_type"`
	Message     string           `json:"message"`
	SentenceNum int              `json:"sentence_num"`
	Severity    Severity         `json:"severity"`
}

// PassiveVoiceMatch is a detected passive construction.
type PassiveVoiceMatch struct {
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	SentenceNum int     `json:"sentence_num"`
	Auxiliary   string  `json:"auxiliary"`
	Participle  string  `json:"participle"`
	HasByPhrase bool    `json:"has_by_phrase"`
}

// GrammarReport is the full grammar analysis result.
type GrammarReport struct {
	Issues            []GrammarIssue      `json:"issues"`
	PassiveVoice      []PassiveVoiceMatch `json:"passive_voice"`
	PassiveCount      int                 `json:"passive_count"`
	PassivePercentage float64             `json:"passive_percentage"`
	SentenceCount     int                 `json:"sentence_count"`
	PassiveMax        *float64            `json:"passive_max,omitempty"`
	OverMax           bool                `json:"over_max"`
}

// ReadabilityReport is the Flesch-Kincaid grade result.
type ReadabilityReport struct {
	Grade     float64  `json:"grade"`
	Sentences int      `json:"sentences"`
	Words     int      `json:"words"`
	Syllables int      `json:"syllables"`
	MaxGrade  *float64 `json:"max_grade,omitempty"`
	OverMax   bool     `json:"over_max"`
}

// TokenReport is the token count result.
type TokenReport struct {
	Count      int    `json:"count"`
	Budget     *int   `json:"budget,omitempty"`
	OverBudget bool   `json:"over_budget"`
	Tokenizer  string `json:"tokenizer"`
}

// SectionStatus describes a required template section in a document.
type SectionStatus string

const (
	// SectionPresent means the section heading exists and has content.
	SectionPresent SectionStatus = "present"
	// SectionEmpty means the heading exists but holds no real content.
	SectionEmpty SectionStatus = "empty"
	// SectionMissing means the heading was not found.
	SectionMissing SectionStatus = "missing"
)

// SectionResult pairs a required section name with its status.
type SectionResult struct {
	Name   string        `json:"name"`
	Status SectionStatus `json:"status"`
}

// CompletenessReport is the template completeness result.
type CompletenessReport struct {
	Template string          `json:"template"`
	Sections []SectionResult `json:"sections"`
	Missing  []string        `json:"missing"`
	Empty    []string        `json:"empty"`
	Pass     bool            `json:"pass"`
}

// -- Analysis sub-reports ----------------------------------------------------

// StickySentencesReport measures glue word density.
type StickySentencesReport struct {
	OverallGlueIndex float64          `json:"overall_glue_index"`
	StickyCount      int              `json:"sticky_count"`
	SemiStickyCount  int              `json:"semi_sticky_count"`
	StickySentences  []StickySentence `json:"sticky_sentences"`
}

// StickySentence is a sentence flagged for high glue-word density.
type StickySentence struct {
	SentenceNum    int     `json:"sentence_num"`
	GluePercentage float64 `json:"glue_percentage"`
	Text           string  `json:"text"`
}

// PacingReport is the sentence pacing distribution.
type PacingReport struct {
	FastPercentage   float64 `json:"fast_percentage"`
	MediumPercentage float64 `json:"medium_percentage"`
	SlowPercentage   float64 `json:"slow_percentage"`
}

// SentenceLengthReport is the sentence length variety analysis.
type SentenceLengthReport struct {
	AvgLength    float64        `json:"avg_length"`
	StdDeviation float64        `json:"std_deviation"`
	VarietyScore float64        `json:"variety_score"`
	Shortest     int            `json:"shortest"`
	Longest      int            `json:"longest"`
	VeryLong     []LongSentence `json:"very_long"`
}

// LongSentence is a sentence flagged as very long (>30 words).
type LongSentence struct {
	SentenceNum int `json:"sentence_num"`
	WordCount   int `json:"word_count"`
}

// TransitionReport is the transition word usage analysis.
type TransitionReport struct {
	SentencesWithTransitions int               `json:"sentences_with_transitions"`
	TransitionPercentage     float64           `json:"transition_percentage"`
	TotalTransitions         int               `json:"total_transitions"`
	UniqueTransitions        int               `json:"unique_transitions"`
	MostCommon               []TransitionCount `json:"most_common"`
}

// TransitionCount is a transition with its frequency.
type TransitionCount struct {
	Transition string `json:"transition"`
	Count      int    `json:"count"`
}

// OverusedWordsReport lists words appearing with >0.5% frequency.
type OverusedWordsReport struct {
	OverusedWords    []OverusedWord `json:"overused_words"`
	TotalUniqueWords int            `json:"total_unique_words"`
}

// OverusedWord is an overused word with frequency data.
type OverusedWord struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// RepeatedPhrasesReport lists repeated 2-4 word phrases.
type RepeatedPhrasesReport struct {
	TotalRepeated int              `json:"total_repeated"`
	Phrases       []RepeatedPhrase `json:"phrases"`
}

// RepeatedPhrase is a phrase appearing more than once.
type RepeatedPhrase struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// EchoesReport lists words repeated within close proximity.
type EchoesReport struct {
	TotalEchoes int    `json:"total_echoes"`
	Echoes      []Echo `json:"echoes"`
}

// Echo is a word repeated within close proximity in a paragraph.
type Echo struct {
	Word        string `json:"word"`
	Paragraph   int    `json:"paragraph"`
	Distance    int    `json:"distance"`
	Occurrences int    `json:"occurrences"`
}

// SensoryReport is the sensory vocabulary distribution.
type SensoryReport struct {
	SensoryCount      int                  `json:"sensory_count"`
	SensoryPercentage float64              `json:"sensory_percentage"`
	BySense           map[string]SenseData `json:"by_sense"`
}

// SenseData is the data for a single sense category.
type SenseData struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DictionReport is the vague word analysis.
type DictionReport struct {
	TotalVague  int              `json:"total_vague"`
	UniqueVague int              `json:"unique_vague"`
	MostCommon  []VagueWordCount `json:"most_common"`
}

// VagueWordCount is a vague word with its count.
type VagueWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ClichesReport is the cliché detection result.
type ClichesReport struct {
	TotalCliches int           `json:"total_cliches"`
	Cliches      []ClicheFound `json:"cliches"`
}

// ClicheFound is a cliché found in the text.
type ClicheFound struct {
	Cliche string `json:"cliche"`
	Count  int    `json:"count"`
}

// ConsistencyReport is the spelling/hyphenation consistency result.
type ConsistencyReport struct {
	Dialect     string   `json:"dialect"`
	TotalIssues int      `json:"total_issues"`
	Issues      []string `json:"issues"`
}

// AcronymReport is the acronym usage analysis.
type AcronymReport struct {
	TotalAcronyms  int            `json:"total_acronyms"`
	UniqueAcronyms int            `json:"unique_acronyms"`
	AcronymList    []AcronymCount `json:"acronym_list"`
}

// AcronymCount is an acronym with its frequency.
type AcronymCount struct {
	Acronym string `json:"acronym"`
	Count   int    `json:"count"`
}

// BusinessJargonReport is the business jargon detection result.
type BusinessJargonReport struct {
	TotalJargon  int           `json:"total_jargon"`
	UniqueJargon int           `json:"unique_jargon"`
	JargonList   []JargonFound `json:"jargon_list"`
}

// JargonFound is a jargon term found in the text.
type JargonFound struct {
	Jargon string `json:"jargon"`
	Count  int    `json:"count"`
}

// ComplexParagraphsReport is the dense paragraph analysis.
type ComplexParagraphsReport struct {
	ComplexCount      int                `json:"complex_count"`
	Percentage        float64            `json:"percentage"`
	ComplexParagraphs []ComplexParagraph `json:"complex_paragraphs"`
}

// ComplexParagraph is a paragraph flagged as complex.
type ComplexParagraph struct {
	ParagraphNum      int     `json:"paragraph_num"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgSyllables      float64 `json:"avg_syllables"`
}

// ConjunctionStartsReport counts sentences starting with a conjunction.
type ConjunctionStartsReport struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StyleReport is the composite style analysis.
type StyleReport struct {
	AdverbCount int                    `json:"adverb_count"`
	HiddenVerbs []HiddenVerbSuggestion `json:"hidden_verbs"`
	StyleScore  int                    `json:"style_score"`
}

// HiddenVerbSuggestion recommends replacing a nominalization with its verb.
type HiddenVerbSuggestion struct {
	Noun  string `json:"noun"`
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// FullAnalysisReport combines all analysis checks. A nil sub-report was
// either not requested or degraded on its own error.
type FullAnalysisReport struct {
	Readability       *ReadabilityReport       `json:"readability,omitempty"`
	Grammar           *GrammarReport           `json:"grammar,omitempty"`
	StickySentences   *StickySentencesReport   `json:"sticky_sentences,omitempty"`
	Pacing            *PacingReport            `json:"pacing,omitempty"`
	SentenceLength    *SentenceLengthReport    `json:"sentence_length,omitempty"`
	Transitions       *TransitionReport        `json:"transitions,omitempty"`
	OverusedWords     *OverusedWordsReport     `json:"overused_words,omitempty"`
	RepeatedPhrases   *RepeatedPhrasesReport   `json:"repeated_phrases,omitempty"`
	Echoes            *EchoesReport            `json:"echoes,omitempty"`
	Sensory           *SensoryReport           `json:"sensory,omitempty"`
	Diction           *DictionReport           `json:"diction,omitempty"`
	Cliches           *ClichesReport           `json:"cliches,omitempty"`
	Consistency       *ConsistencyReport       `json:"consistency,omitempty"`
	Acronyms          *AcronymReport           `json:"acronyms,omitempty"`
	Jargon            *BusinessJargonReport    `json:"jargon,omitempty"`
	ComplexParagraphs *ComplexParagraphsReport `json:"complex_paragraphs,omitempty"`
	ConjunctionStarts *ConjunctionStartsReport `json:"conjunction_starts,omitempty"`
	Style             *StyleReport             `json:"style,omitempty"`
}

// LintReport combines the results of every check the lint engine ran.
type LintReport struct {
	File         string              `json:"file"`
	Analyze      *FullAnalysisReport `json:"analyze,omitempty"`
	Readability  *ReadabilityReport  `json:"readability,omitempty"`
	Grammar      *GrammarReport      `json:"grammar,omitempty"`
	Completeness *CompletenessReport `json:"completeness,omitempty"`
	Tokens       *TokenReport        `json:"tokens,omitempty"`
	Pass         bool                `json:"pass"`
}
