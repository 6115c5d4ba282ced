package lexpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform indicates an unrecognized platform name.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform selects the path grammar used by all operations. It is always
// an explicit parameter, never inferred from the host OS, so that both
// grammars can be exercised in one process.
type Platform int

const (
	// Posix is the `/`-separated, case-sensitive grammar with no drive
	// concept.
	Posix Platform = iota

	// Windows accepts both `/` and `\` on input, emits `\`, recognizes
	// drive, UNC and verbatim/device prefixes, and compares names
	// case-insensitively.
	Windows
)

func (p Platform) String() string {
	switch p {
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// ParsePlatform parses a platform name as used in flags and config files.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "posix", "unix", "linux", "darwin":
		return Posix, nil
	case "windows", "win":
		return Windows, nil
	default:
		return Posix, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// Separator returns the separator emitted when serializing for p.
func (p Platform) Separator() byte {
	if p == Windows {
		return '\\'
	}

	return '/'
}

// isSeparator reports whether c is accepted as a separator on input.
func (p Platform) isSeparator(c byte) bool {
	if c == '/' {
		return true
	}

	return p == Windows && c == '\\'
}

// equalNames compares two component names under p's comparison rule:
// byte-for-byte on Posix, ASCII-case-insensitively on Windows. Folding
// happens only at comparison time; stored names are never rewritten.
func (p Platform) equalNames(a, b string) bool {
	if p == Posix {
		return a == b
	}

	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}

	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
