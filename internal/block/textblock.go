package block

import "strings"

// Block kinds recognised by TextBlock.
const (
	KindHeading   = "heading"
	KindParagraph = "paragraph"
)

// TextBlock is the module's minimal built-in Block implementation (no
// external markdown parser is in scope). It exists to exercise the
// pipeline and the CLI demo, not to be a markdown parser: a
// blank-line-separated block whose first line starts with '#' is a
// heading, anything else a paragraph. Text falls back to
// the spec's generic serialisation rule (concatenate children, else the
// literal value, else empty) so nested TextBlocks still serialise even
// though SplitTextBlocks itself never nests them.
type TextBlock struct {
	KindValue string
	Value     string
	Children  []TextBlock
}

func (b TextBlock) Kind() string { return b.KindValue }

func (b TextBlock) Text() string {
	if len(b.Children) > 0 {
		var sb strings.Builder
		for _, c := range b.Children {
			sb.WriteString(c.Text())
		}
		return sb.String()
	}
	return b.Value
}

// SplitTextBlocks splits source into TextBlocks on blank lines, tagging a
// paragraph whose first non-blank line starts with '#' as a heading.
func SplitTextBlocks(source string) []Block {
	paras := splitParagraphs(source)
	blocks := make([]Block, 0, len(paras))
	for _, p := range paras {
		kind := KindParagraph
		if strings.HasPrefix(strings.TrimLeft(p, " \t"), "#") {
			kind = KindHeading
		}
		blocks = append(blocks, TextBlock{KindValue: kind, Value: p})
	}
	return blocks
}

func splitParagraphs(source string) []string {
	lines := strings.Split(source, "\n")
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}
