package lexpath

import (
	"strings"
)

// Path is an immutable parsed path: an optional prefix, an optional root
// separator, and an ordered sequence of components. Values are
// constructed by [Parse] or returned by the pure operations on Path;
// they are never mutated in place.
type Path struct {
	prefix     string
	comps      []Component
	platform   Platform
	prefixKind PrefixKind
	rooted     bool
}

// Platform returns the grammar the path was parsed under.
func (p Path) Platform() Platform { return p.platform }

// Prefix returns the verbatim prefix text, or "" if the path has none.
func (p Path) Prefix() string { return p.prefix }

// PrefixKind returns the kind of the path's prefix.
func (p Path) PrefixKind() PrefixKind { return p.prefixKind }

// IsRooted reports whether a root separator follows the prefix (or leads
// the path). A rooted path is not necessarily absolute on Windows: `\foo`
// is rooted but drive-less.
func (p Path) IsRooted() bool { return p.rooted }

// IsAbs reports whether the path is absolute under its platform rule:
// POSIX paths are absolute iff rooted; Windows paths are absolute iff
// they carry a rooted drive prefix or any UNC, verbatim or device prefix.
func (p Path) IsAbs() bool {
	if p.platform == Posix {
		return p.rooted
	}

	switch p.prefixKind {
	case PrefixUNC, PrefixVerbatim, PrefixDevice:
		return true
	case PrefixDrive:
		return p.rooted
	default:
		return false
	}
}

// Components returns the full typed component sequence, including the
// prefix and root separator when present. The returned slice is a copy.
func (p Path) Components() []Component {
	out := make([]Component, 0, len(p.comps)+2)
	if p.prefix != "" {
		out = append(out, Component{Kind: KindPrefix, Name: p.prefix})
	}

	if p.rooted {
		out = append(out, Component{Kind: KindRootSep})
	}

	return append(out, p.comps...)
}

// isEmpty reports whether the path has no prefix, no root and no
// components (the parse of "").
func (p Path) isEmpty() bool {
	return p.prefix == "" && !p.rooted && len(p.comps) == 0
}

// isOpaque reports whether the path carries an unparsed verbatim or
// device tail.
func (p Path) isOpaque() bool {
	return len(p.comps) == 1 && p.comps[0].Kind == KindOpaque
}

// opaqueTail returns the unparsed tail, or "" if the path is not opaque.
func (p Path) opaqueTail() string {
	if p.isOpaque() {
		return p.comps[0].Name
	}

	return ""
}

// isBareCurDir reports whether the path is exactly `.`.
func (p Path) isBareCurDir() bool {
	return p.prefix == "" && !p.rooted &&
		len(p.comps) == 1 && p.comps[0].Kind == KindCurDir
}

// String serializes the path back to its platform-native form: POSIX
// components joined by `/` with a leading `/` (or `//` under the
// preserve policy) when rooted; Windows prefixes emitted verbatim,
// components joined by `\`, opaque tails emitted unmodified.
func (p Path) String() string {
	var b strings.Builder

	b.WriteString(p.prefix)

	if p.isOpaque() {
		b.WriteString(p.opaqueTail())

		return b.String()
	}

	sep := p.Separator()

	if p.rooted && p.prefixKind != PrefixDoubleSlash && p.prefixKind != PrefixUNC {
		b.WriteByte(sep)
	}

	for i, c := range p.comps {
		if i > 0 || (p.rooted && p.prefixKind == PrefixUNC) {
			b.WriteByte(sep)
		}

		b.WriteString(c.String())
	}

	return b.String()
}

// Separator returns the separator byte emitted when serializing p.
func (p Path) Separator() byte { return p.platform.Separator() }
