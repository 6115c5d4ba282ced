package lexpath

// Kind identifies the variant of a single path component.
type Kind uint8

const (
	// KindPrefix is a platform root marker: a POSIX `//` under the
	// preserve policy, or a Windows drive, UNC, verbatim or device prefix.
	KindPrefix Kind = iota

	// KindRootSep is the separator following a prefix (or the leading
	// POSIX `/`), marking the path as rooted.
	KindRootSep

	// KindCurDir is a literal `.` component.
	KindCurDir

	// KindParentDir is a literal `..` component.
	KindParentDir

	// KindNormal is any other non-empty name, stored verbatim.
	KindNormal

	// KindOpaque is the unparsed tail following a Windows verbatim or
	// device prefix, exempt from any further processing.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindRootSep:
		return "root"
	case KindCurDir:
		return "cur-dir"
	case KindParentDir:
		return "parent-dir"
	case KindNormal:
		return "name"
	case KindOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}

// PrefixKind identifies the platform-specific root marker of a path.
type PrefixKind uint8

const (
	// PrefixNone means the path carries no prefix.
	PrefixNone PrefixKind = iota

	// PrefixDoubleSlash is a POSIX path beginning with exactly two
	// slashes, preserved under [DoubleSlashPreserve].
	PrefixDoubleSlash

	// PrefixDrive is a Windows drive-letter prefix such as `C:`.
	PrefixDrive

	// PrefixUNC is a Windows `\\server\share` prefix.
	PrefixUNC

	// PrefixVerbatim is the Windows `\\?\` prefix. Everything after it is
	// an opaque tail.
	PrefixVerbatim

	// PrefixDevice is the Windows `\\.\` prefix. Everything after it is
	// an opaque tail.
	PrefixDevice
)

func (k PrefixKind) String() string {
	switch k {
	case PrefixNone:
		return "none"
	case PrefixDoubleSlash:
		return "double-slash"
	case PrefixDrive:
		return "drive"
	case PrefixUNC:
		return "unc"
	case PrefixVerbatim:
		return "verbatim"
	case PrefixDevice:
		return "device"
	default:
		return "invalid"
	}
}

// Component is one element of a parsed path. Name is empty for
// [KindRootSep] and [KindCurDir]/[KindParentDir]; for [KindPrefix] it
// holds the prefix text, for [KindNormal] the name, and for [KindOpaque]
// the unparsed tail.
type Component struct {
	Name string
	Kind Kind
}

func (c Component) String() string {
	switch c.Kind {
	case KindCurDir:
		return "."
	case KindParentDir:
		return ".."
	default:
		return c.Name
	}
}

// equalComponents compares two components under p's name comparison rule.
func equalComponents(p Platform, a, b Component) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNormal, KindPrefix, KindOpaque:
		return p.equalNames(a.Name, b.Name)
	default:
		return true
	}
}
