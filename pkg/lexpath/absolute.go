package lexpath

import (
	"errors"
	"fmt"
)

// ErrCwdUnavailable indicates the current-directory provider failed.
// The provider's own error is wrapped verbatim and never interpreted or
// retried here.
var ErrCwdUnavailable = errors.New("current directory unavailable")

// Absolute resolves p against the already-absolute current directory
// cwd, supplied by the caller as a snapshot. An absolute p is returned
// unchanged; otherwise the result is the plain lexical join of cwd and
// p, deliberately not normalized, so trailing `.` and `..` components
// survive: Absolute(".", "/home/user") is "/home/user/.". A Windows
// drive-relative path (`D:sources`) has its drive prefix stripped before
// the join, on the assumption that cwd was obtained for that drive.
func Absolute(p, cwd Path) Path {
	if p.IsAbs() {
		return p
	}

	if p.platform == Windows && p.prefixKind == PrefixDrive {
		p = Path{platform: p.platform, comps: p.comps}
	}

	return cwd.Join(p)
}

// CwdProvider supplies the current working directory, the one
// filesystem-adjacent input this package consumes. The drive argument is
// empty for the process default; on Windows it names a drive prefix
// (`D:`) whose last-used directory is wanted. Implementations live in
// pkg/cwd.
type CwdProvider interface {
	Cwd(drive string) (string, error)
}

// Resolver combines a [CwdProvider] with [Absolute] so callers can
// resolve relative paths without handling the provider themselves.
type Resolver struct {
	provider CwdProvider
	platform Platform
	opts     []ParseOption
}

// NewResolver returns a Resolver for the given platform. The parse
// options are applied when parsing strings the provider returns.
func NewResolver(platform Platform, provider CwdProvider, opts ...ParseOption) *Resolver {
	return &Resolver{
		platform: platform,
		provider: provider,
		opts:     opts,
	}
}

// Absolute resolves p against the provider's current directory. The
// provider is consulted once per call, with the drive of a Windows
// drive-relative path when applicable. Provider failure is reported as
// an error wrapping [ErrCwdUnavailable].
func (r *Resolver) Absolute(p Path) (Path, error) {
	if p.IsAbs() {
		return p, nil
	}

	drive := ""
	if r.platform == Windows && p.PrefixKind() == PrefixDrive {
		drive = p.Prefix()
	}

	raw, err := r.provider.Cwd(drive)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %w", ErrCwdUnavailable, err)
	}

	return Absolute(p, Parse(r.platform, raw, r.opts...)), nil
}
