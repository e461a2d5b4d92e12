package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/basisdocs/mdiff/pkg/mdiff"
)

// renderPairs writes a unified-ish textual rendering of a DiffPair
// sequence to w. The exact rendering is demo-only, not part of the
// engine's contract.
func renderPairs(w io.Writer, pairs []mdiff.DiffPair) {
	for _, p := range pairs {
		renderPair(w, p)
	}
}

func renderPair(w io.Writer, p mdiff.DiffPair) {
	switch p.Status {
	case mdiff.Equal:
		printBlockLines(w, "  ", p.Left.Text())
	case mdiff.Added:
		printBlockLines(w, "+ ", p.Right.Text())
	case mdiff.Removed:
		printBlockLines(w, "- ", p.Left.Text())
	case mdiff.Modified:
		fmt.Fprint(w, "~ ")
		renderInline(w, p.InlineDiff)
		fmt.Fprintln(w)
	case mdiff.Split:
		printBlockLines(w, "< ", p.Left.Text())
		printBlockLines(w, "> ", p.FirstPart.Text())
		printBlockLines(w, "> ", p.SecondPart.Text())
	}
}

func renderInline(w io.Writer, parts []mdiff.InlinePart) {
	for _, ip := range parts {
		switch ip.Type {
		case mdiff.Equal:
			fmt.Fprint(w, ip.Value)
		case mdiff.Added:
			fmt.Fprintf(w, "{+%s+}", ip.Value)
		case mdiff.Removed:
			fmt.Fprintf(w, "[-%s-]", ip.Value)
		}
	}
}

func printBlockLines(w io.Writer, prefix, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}
