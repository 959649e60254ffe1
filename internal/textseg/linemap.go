package textseg

import "strings"

// LineRange is an inclusive 1-based line span within a source text.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// SentenceLineMap maps each sentence (as produced by SplitSentences on the
// same text) to its line range in the original. Segments are located in
// declaration order; a segment that cannot be located maps to the zero range.
func SentenceLineMap(original string, sentences []string) []LineRange {
	return segmentLineMap(original, sentences)
}

// ParagraphLineMap maps each paragraph (as produced by SplitParagraphs on the
// same text) to its line range in the original.
func ParagraphLineMap(original string, paragraphs []string) []LineRange {
	return segmentLineMap(original, paragraphs)
}

// segmentLineMap scans the original text once, advancing a byte cursor past
// each located segment and converting byte offsets to line numbers.
func segmentLineMap(original string, segments []string) []LineRange {
	ranges := make([]LineRange, 0, len(segments))
	cursor := 0
	line := 1 // line number at cursor

	for _, seg := range segments {
		idx := strings.Index(original[cursor:], seg)
		if idx < 0 {
			ranges = append(ranges, LineRange{})
			continue
		}
		start := cursor + idx
		startLine := line + strings.Count(original[cursor:start], "\n")
		endLine := startLine + strings.Count(seg, "\n")
		ranges = append(ranges, LineRange{Start: startLine, End: endLine})

		cursor = start + len(seg)
		line = endLine
	}
	return ranges
}
