package lexpath

// IsInside reports whether p is lexically contained in base. Both are
// normalized first, then base's component sequence must be a
// component-wise prefix of p's: the comparison stops at component
// boundaries, never mid-name, so `/foo2` is not inside `/foo`. Names
// compare byte-exactly on POSIX and ASCII-case-insensitively on Windows.
// An absolute path is never inside a relative base or vice versa; no
// implicit current-directory resolution happens here. Containment is
// reflexive: every normalized path is inside itself.
func (p Path) IsInside(base Path) bool {
	pn := p.Normalize()
	bn := base.Normalize()

	if pn.IsAbs() != bn.IsAbs() || pn.rooted != bn.rooted {
		return false
	}

	if pn.prefixKind != bn.prefixKind || !pn.platform.equalNames(pn.prefix, bn.prefix) {
		return false
	}

	if pn.isOpaque() || bn.isOpaque() {
		return pn.platform.equalNames(pn.opaqueTail(), bn.opaqueTail())
	}

	pc := pn.comps
	bc := bn.comps

	// A normalized bare `.` stands for the empty relative sequence.
	if pn.isBareCurDir() {
		pc = nil
	}

	if bn.isBareCurDir() {
		bc = nil
	}

	if len(bc) == 0 {
		// Everything under `.` except a path that immediately ascends.
		return len(pc) == 0 || pc[0].Kind != KindParentDir
	}

	if len(pc) < len(bc) {
		return false
	}

	for i := range bc {
		if !equalComponents(pn.platform, pc[i], bc[i]) {
			return false
		}
	}

	return true
}
