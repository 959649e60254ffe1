// Package mdstrip converts markdown to plain prose for analysis.
//
// It uses goldmark for proper CommonMark parsing rather than regex-based
// stripping, which handles the edge cases (nested code blocks, reference
// links, HTML entities) regex approaches miss.
package mdstrip

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var parser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Footnote),
)

// Heading is a markdown heading with its level (1-6).
type Heading struct {
	Level int
	Text  string
}

// ToProse strips markdown formatting and returns plain prose.
//
// Removed: code blocks (fenced and indented), inline code, YAML frontmatter,
// headings, and table structure. Preserved: link text, blockquote text, list
// item text, and emphasis text without its markers. Paragraph boundaries and
// soft/hard breaks become single spaces.
func ToProse(input string) string {
	input = StripFrontmatter(input)
	source := []byte(input)
	doc := parser.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.Heading, *ast.CodeSpan:
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.Paragraph:
			if !entering {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// ExtractHeadings returns all headings in document order.
func ExtractHeadings(input string) []Heading {
	input = StripFrontmatter(input)
	source := []byte(input)
	doc := parser.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{Level: h.Level, Text: nodeText(h, source)})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// nodeText collects the plain text of a node's inline children, including
// inline code content.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
		case *ast.String:
			b.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// StripFrontmatter removes a leading YAML frontmatter block delimited by
// `---` lines. Input without frontmatter is returned unchanged.
func StripFrontmatter(input string) string {
	trimmed := strings.TrimLeft(input, " \t\r\n")
	if !strings.HasPrefix(trimmed, "---") {
		return input
	}

	afterOpening := trimmed[3:]
	closePos := strings.Index(afterOpening, "\n---")
	if closePos < 0 {
		return input
	}

	remainder := afterOpening[closePos+4:]
	return strings.TrimPrefix(remainder, "\n")
}
