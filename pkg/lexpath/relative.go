package lexpath

import (
	"errors"
	"fmt"
)

// ErrUnrelated is returned by [Path.RelativeTo] when no lexical answer
// exists. It is never fatal; callers are expected to branch on it.
var ErrUnrelated = errors.New("paths are not lexically related")

// RelativeTo derives the relative path from base to p, normalizing both
// inputs first. It fails with [ErrUnrelated] when one input is absolute
// and the other is not (mixing would require a current-directory lookup,
// which this package never performs), when prefixes differ (no lexical
// route exists between drives or shares), or when base retains leading
// `..` components that p does not share — inverting an unresolved ascent
// would require knowing the parent's name. On success the result is a
// normalized relative path; equal inputs yield `.`.
func (p Path) RelativeTo(base Path) (Path, error) {
	pn := p.Normalize()
	bn := base.Normalize()

	if pn.IsAbs() != bn.IsAbs() {
		return Path{}, fmt.Errorf("%w: mixed absolute and relative paths", ErrUnrelated)
	}

	if pn.rooted != bn.rooted ||
		pn.prefixKind != bn.prefixKind ||
		!pn.platform.equalNames(pn.prefix, bn.prefix) {
		return Path{}, fmt.Errorf("%w: different roots %q and %q",
			ErrUnrelated, pn.prefix, bn.prefix)
	}

	// Opaque tails admit no finer answer than identity.
	if pn.isOpaque() || bn.isOpaque() {
		if pn.platform.equalNames(pn.opaqueTail(), bn.opaqueTail()) {
			return Path{platform: pn.platform, comps: []Component{{Kind: KindCurDir}}}, nil
		}

		return Path{}, fmt.Errorf("%w: distinct verbatim paths", ErrUnrelated)
	}

	pc := pn.comps
	bc := bn.comps

	if pn.isBareCurDir() {
		pc = nil
	}

	if bn.isBareCurDir() {
		bc = nil
	}

	common := 0
	for common < len(pc) && common < len(bc) &&
		equalComponents(pn.platform, pc[common], bc[common]) {
		common++
	}

	out := make([]Component, 0, len(bc)-common+len(pc)-common)

	for _, c := range bc[common:] {
		if c.Kind == KindParentDir {
			return Path{}, fmt.Errorf("%w: base ascends past the common ancestor", ErrUnrelated)
		}

		out = append(out, Component{Kind: KindParentDir})
	}

	out = append(out, pc[common:]...)

	if len(out) == 0 {
		out = append(out, Component{Kind: KindCurDir})
	}

	return Path{platform: pn.platform, comps: out}, nil
}
