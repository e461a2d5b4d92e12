package inline

import (
	"regexp"
	"strings"
)

// Protected markdown spans are rewritten using characters from the Unicode
// private-use area as sentinels, so they can never collide with real
// document text: strongMarker/emMarker bracket a protected bold/italic
// span, and spaceSentinel stands in for a literal space inside one
// (keeping the span a single atomic token through word tokenisation).
const (
	strongMarker  = ''
	emMarker      = ''
	spaceSentinel = ''
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// protect rewrites **bold** and *italic* spans into atomic sentinel
// tokens (internal spaces replaced with spaceSentinel) so anchor/word
// search never splits them.
func protect(text string) string {
	text = boldRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		return string(strongMarker) + encodeSpaces(inner) + string(strongMarker)
	})
	text = italicRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[1 : len(m)-1]
		return string(emMarker) + encodeSpaces(inner) + string(emMarker)
	})
	return text
}

func encodeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", string(spaceSentinel))
}

func decodeSpaces(s string) string {
	return strings.ReplaceAll(s, string(spaceSentinel), " ")
}

var (
	strongRe = regexp.MustCompile(string(strongMarker) + `([^\x{E000}]*)` + string(strongMarker))
	emRe     = regexp.MustCompile(string(emMarker) + `([^\x{E001}]*)` + string(emMarker))
)

// restore expands protected spans back into renderer-facing <strong>/<em>
// wrappers, decoding sentinel spaces back to literal spaces. It is applied
// to every Value in the final part tree, so it is also a safe no-op on
// text that was never protected.
func restore(s string) string {
	s = strongRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := []rune(m)[1 : len([]rune(m))-1]
		return "<strong>" + decodeSpaces(string(inner)) + "</strong>"
	})
	s = emRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := []rune(m)[1 : len([]rune(m))-1]
		return "<em>" + decodeSpaces(string(inner)) + "</em>"
	})
	return s
}
