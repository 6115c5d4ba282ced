package lexpath

// Join appends b's components after p's, performing no normalization and
// no absolute-path substitution: a rooted or prefixed b is appended as
// literal trailing names, never swapped in for p. Callers wanting
// replace-on-absolute semantics must branch on [Path.IsAbs] themselves
// before joining. If p is empty, b is returned unchanged.
func (p Path) Join(b Path) Path {
	if p.isEmpty() {
		return b
	}

	// Joining past an opaque tail extends the tail textually, keeping
	// everything after the verbatim prefix a single unparsed unit.
	if p.isOpaque() {
		tail := p.opaqueTail()
		if s := b.String(); s != "" {
			tail += string(p.Separator()) + s
		}

		out := p
		out.comps = []Component{{Kind: KindOpaque, Name: tail}}

		return out
	}

	comps := make([]Component, 0, len(p.comps)+len(b.comps)+1)
	comps = append(comps, p.comps...)

	if b.prefix != "" {
		comps = append(comps, Component{Kind: KindNormal, Name: b.prefix})
	}

	for _, c := range b.comps {
		if c.Kind == KindOpaque {
			c = Component{Kind: KindNormal, Name: c.Name}
		}

		comps = append(comps, c)
	}

	return Path{
		platform:   p.platform,
		prefix:     p.prefix,
		prefixKind: p.prefixKind,
		rooted:     p.rooted,
		comps:      comps,
	}
}

// RootedJoin joins path under base such that the result is always
// lexically inside base, regardless of any root or `..` components in
// path. The path's own prefix and root are stripped, then `..` is
// collapsed against a virtual root local to the path itself: an ascent
// that would escape is discarded rather than resolved against base, so
// `RootedJoin("/srv", "../srv/file.txt")` yields `/srv/srv/file.txt` and
// a caller can never probe the layout above base. A verbatim tail is
// re-parsed as an ordinary path first, since an opaque unit cannot be
// sanitized. RootedJoin never fails.
func (base Path) RootedJoin(path Path) Path {
	comps := path.comps
	if path.isOpaque() {
		comps = Parse(path.platform, path.opaqueTail()).comps
	}

	out := make([]Component, 0, len(comps))

	for _, c := range comps {
		switch c.Kind {
		case KindCurDir:
			// Dropped.
		case KindParentDir:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, c)
		}
	}

	return base.Join(Path{platform: base.platform, comps: out})
}
