// Package part defines InlinePart, the tagged node the inline-diff,
// boundary-optimiser and rewrite-rule-engine packages all operate on.
// It is a standalone leaf package so those three packages (and the pair
// package that embeds a diff into a DiffPair) can share the type without
// import cycles.
package part

// Type tags an InlinePart as unchanged, inserted, or removed text.
type Type int

const (
	Equal Type = iota
	Added
	Removed
)

func (t Type) String() string {
	switch t {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "equal"
	}
}

// Part is one node of an inline diff. For a leaf part, Children is nil and
// Value is literal text. For a composite part (a minor word-level edit
// with a character-level breakdown, or an absorbed short-match merge),
// Value equals the concatenation of Children's values.
type Part struct {
	Value    string
	Type     Type
	Minor    bool
	Children []Part
}

// Leaf builds a leaf Part.
func Leaf(value string, typ Type) Part {
	return Part{Value: value, Type: typ}
}

// MinorLeaf builds a leaf Part flagged as a cosmetic (minor) edit.
func MinorLeaf(value string, typ Type) Part {
	return Part{Value: value, Type: typ, Minor: true}
}

// Composite builds a Part whose Value is the concatenation of children's
// values.
func Composite(typ Type, minor bool, children ...Part) Part {
	var sb []byte
	for _, c := range children {
		sb = append(sb, c.Value...)
	}
	return Part{Value: string(sb), Type: typ, Minor: minor, Children: children}
}

// Concat returns the concatenation of Value over parts whose Type is in
// types.
func Concat(parts []Part, types ...Type) string {
	want := make(map[Type]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var sb []byte
	for _, p := range parts {
		if want[p.Type] {
			sb = append(sb, p.Value...)
		}
	}
	return string(sb)
}
