package lexpath

// IsNormalized reports whether normalizing p would be a no-op. The check
// is a single linear scan with no allocation, used by [Path.Normalize]
// as a fast path to return the input unchanged.
func (p Path) IsNormalized() bool {
	if p.isOpaque() {
		return true
	}

	if len(p.comps) == 0 {
		// The normal form of the empty relative path is `.`; a rooted or
		// prefixed path with no components is already minimal.
		return p.rooted || p.prefix != ""
	}

	seenNormal := false

	for _, c := range p.comps {
		switch c.Kind {
		case KindCurDir:
			if !p.isBareCurDir() {
				return false
			}
		case KindParentDir:
			// A `..` collapses against a root or a preceding name, so any
			// of either means the sequence is not minimal.
			if p.rooted || seenNormal {
				return false
			}
		default:
			seenNormal = true
		}
	}

	return true
}

// Normalize rewrites p into its normal form: the shortest lexically
// equivalent component sequence. The prefix and root are preserved
// untouched, `.` components are dropped (the empty relative path
// normalizes to a bare `.`), and each `..` cancels a preceding name, is
// discarded at a root, or is kept as an unresolved leading ascent on a
// relative path. Opaque tails are returned unchanged. Normalize is
// idempotent and never fails.
func (p Path) Normalize() Path {
	if p.IsNormalized() {
		return p
	}

	out := make([]Component, 0, len(p.comps))

	for _, c := range p.comps {
		switch c.Kind {
		case KindCurDir:
			// Dropped; re-added below if nothing remains.
		case KindParentDir:
			switch {
			case len(out) > 0 && out[len(out)-1].Kind == KindNormal:
				out = out[:len(out)-1]
			case p.rooted:
				// Cannot ascend above the root.
			default:
				out = append(out, c)
			}
		default:
			out = append(out, c)
		}
	}

	if len(out) == 0 && !p.rooted && p.prefix == "" {
		out = append(out, Component{Kind: KindCurDir})
	}

	return Path{
		platform:   p.platform,
		prefix:     p.prefix,
		prefixKind: p.prefixKind,
		rooted:     p.rooted,
		comps:      out,
	}
}
