package lexpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDoubleSlashPolicy indicates an unrecognized policy name.
var ErrUnknownDoubleSlashPolicy = errors.New("unknown double-slash policy")

// DoubleSlashPolicy selects how a POSIX path beginning with exactly two
// slashes is treated. POSIX leaves `//` implementation-defined, so the
// choice is exposed as a parse-time policy instead of being hard-coded.
// Three or more leading slashes always collapse to one.
type DoubleSlashPolicy uint8

const (
	// DoubleSlashCollapse treats a leading `//` like a single `/`.
	DoubleSlashCollapse DoubleSlashPolicy = iota

	// DoubleSlashPreserve keeps a leading `//` as a distinct prefix that
	// survives normalization and serialization.
	DoubleSlashPreserve
)

func (d DoubleSlashPolicy) String() string {
	if d == DoubleSlashPreserve {
		return "preserve"
	}

	return "collapse"
}

// ParseDoubleSlashPolicy parses a policy name as used in flags and config
// files.
func ParseDoubleSlashPolicy(s string) (DoubleSlashPolicy, error) {
	switch strings.ToLower(s) {
	case "collapse", "":
		return DoubleSlashCollapse, nil
	case "preserve":
		return DoubleSlashPreserve, nil
	default:
		return DoubleSlashCollapse, fmt.Errorf("%w: %q", ErrUnknownDoubleSlashPolicy, s)
	}
}

type parseConfig struct {
	doubleSlash DoubleSlashPolicy
}

// ParseOption configures [Parse].
type ParseOption func(*parseConfig)

// WithDoubleSlash sets the POSIX leading `//` policy.
func WithDoubleSlash(policy DoubleSlashPolicy) ParseOption {
	return func(c *parseConfig) {
		c.doubleSlash = policy
	}
}

// Parse splits raw into typed components under the given platform
// grammar. It is total: any byte sequence is a legal (if unusual) path,
// so Parse never fails. Duplicate separators are collapsed at this stage,
// except inside Windows opaque tails, which are stored unparsed.
func Parse(platform Platform, raw string, opts ...ParseOption) Path {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if platform == Windows {
		return parseWindows(raw)
	}

	return parsePosix(raw, cfg.doubleSlash)
}

func parsePosix(raw string, policy DoubleSlashPolicy) Path {
	leading := 0
	for leading < len(raw) && raw[leading] == '/' {
		leading++
	}

	p := Path{
		platform: Posix,
		rooted:   leading > 0,
		comps:    splitComponents(Posix, raw[leading:]),
	}

	if leading == 2 && policy == DoubleSlashPreserve {
		p.prefix = "//"
		p.prefixKind = PrefixDoubleSlash
	}

	return p
}

func parseWindows(raw string) Path {
	isSep := Windows.isSeparator

	// Verbatim (`\\?\`) and device (`\\.\`) prefixes switch off all
	// further parsing; the tail is stored as a single opaque component.
	if len(raw) >= 4 && isSep(raw[0]) && isSep(raw[1]) &&
		(raw[2] == '?' || raw[2] == '.') && isSep(raw[3]) {
		kind := PrefixVerbatim
		if raw[2] == '.' {
			kind = PrefixDevice
		}

		p := Path{
			platform:   Windows,
			prefix:     `\\` + string(raw[2]) + `\`,
			prefixKind: kind,
			rooted:     true,
		}
		if tail := raw[4:]; tail != "" {
			p.comps = []Component{{Kind: KindOpaque, Name: tail}}
		}

		return p
	}

	// UNC prefix: `\\server\share`, taken greedily. Accepted permissively
	// with either separator on input; the stored prefix uses `\`.
	if len(raw) >= 2 && isSep(raw[0]) && isSep(raw[1]) {
		rest := raw[2:]
		server, rest := cutSeparator(rest)

		prefix := `\\` + server

		var share string
		if rest != "" {
			share, rest = cutSeparator(rest)
			prefix += `\` + share
		}

		return Path{
			platform:   Windows,
			prefix:     prefix,
			prefixKind: PrefixUNC,
			rooted:     true,
			comps:      splitComponents(Windows, rest),
		}
	}

	// Drive prefix: `C:`, rooted only when a separator follows.
	if len(raw) >= 2 && isDriveLetter(raw[0]) && raw[1] == ':' {
		rest := raw[2:]
		rooted := rest != "" && isSep(rest[0])

		return Path{
			platform:   Windows,
			prefix:     raw[:2],
			prefixKind: PrefixDrive,
			rooted:     rooted,
			comps:      splitComponents(Windows, rest),
		}
	}

	return Path{
		platform: Windows,
		rooted:   len(raw) > 0 && isSep(raw[0]),
		comps:    splitComponents(Windows, raw),
	}
}

// cutSeparator splits s at its first separator, consuming the separator.
func cutSeparator(s string) (head, rest string) {
	for i := 0; i < len(s); i++ {
		if Windows.isSeparator(s[i]) {
			return s[:i], s[i+1:]
		}
	}

	return s, ""
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitComponents splits s on every separator the platform recognizes,
// discarding empty segments. This is where duplicate separators collapse.
func splitComponents(platform Platform, s string) []Component {
	var out []Component

	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}

		seg := s[start:end]
		start = -1

		switch seg {
		case ".":
			out = append(out, Component{Kind: KindCurDir})
		case "..":
			out = append(out, Component{Kind: KindParentDir})
		default:
			out = append(out, Component{Kind: KindNormal, Name: seg})
		}
	}

	for i := 0; i < len(s); i++ {
		if platform.isSeparator(s[i]) {
			flush(i)

			continue
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(s))

	return out
}
