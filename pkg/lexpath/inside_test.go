package lexpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/lexpath/pkg/lexpath"
)

func TestIsInside_Posix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		base string
		want bool
	}{
		"direct child":              {path: "/srv/file", base: "/srv", want: true},
		"nested child":              {path: "/srv/a/b/c", base: "/srv/a", want: true},
		"self":                      {path: "/srv", base: "/srv", want: true},
		"sibling name prefix":       {path: "/srv2/file", base: "/srv", want: false},
		"parent":                    {path: "/", base: "/srv", want: false},
		"relative child":            {path: "foo/bar", base: "foo", want: true},
		"mixed abs and rel":         {path: "foo", base: "/foo", want: false},
		"mixed rel and abs":         {path: "/foo", base: "foo", want: false},
		"unnormalized inputs":       {path: "/srv/./x/../y", base: "/srv//", want: true},
		"escape via ascent":         {path: "/srv/../etc", base: "/srv", want: false},
		"anything under root":       {path: "/etc/passwd", base: "/", want: true},
		"relative under dot":        {path: "foo", base: ".", want: true},
		"dot under dot":             {path: ".", base: ".", want: true},
		"ascent not under dot":      {path: "..", base: ".", want: false},
		"deeper ascent under base":  {path: "../a/b", base: "../a", want: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := lexpath.Parse(lexpath.Posix, tc.path)
			base := lexpath.Parse(lexpath.Posix, tc.base)

			assert.Equal(t, tc.want, p.IsInside(base))
		})
	}
}

func TestIsInside_Windows(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		base string
		want bool
	}{
		"case insensitive names":  {path: `C:\Users\ME\x`, base: `c:\users\me`, want: true},
		"different drives":        {path: `C:\a\b`, base: `D:\a`, want: false},
		"drive abs vs relative":   {path: `C:\a\b`, base: `C:a`, want: false},
		"unc child":               {path: `\\srv\share\a\b`, base: `\\srv\share\a`, want: true},
		"unc case insensitive":    {path: `\\SRV\SHARE\a`, base: `\\srv\share`, want: true},
		"verbatim equal":          {path: `\\?\C:\x`, base: `\\?\C:\x`, want: true},
		"verbatim distinct":       {path: `\\?\C:\x\y`, base: `\\?\C:\x`, want: false},
		"rooted driveless child":  {path: `\a\b`, base: `\a`, want: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := lexpath.Parse(lexpath.Windows, tc.path)
			base := lexpath.Parse(lexpath.Windows, tc.base)

			assert.Equal(t, tc.want, p.IsInside(base))
		})
	}
}

func TestIsInside_Reflexive(t *testing.T) {
	t.Parallel()

	for _, platform := range []lexpath.Platform{lexpath.Posix, lexpath.Windows} {
		for _, raw := range propertyPaths {
			p := lexpath.Parse(platform, raw)
			assert.True(t, p.IsInside(p), "%s %q", platform, raw)
		}
	}
}
