package lexpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/lexpath/pkg/lexpath"
)

func TestRootedJoin_Posix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		base string
		path string
		want string
	}{
		"plain":                    {base: "/srv", path: "file.txt", want: "/srv/file.txt"},
		"internal ascent resolves": {base: "/srv", path: "foo/../../file.txt", want: "/srv/file.txt"},
		"reentry neutralized":      {base: "/srv", path: "../srv/file.txt", want: "/srv/srv/file.txt"},
		"absolute path stripped":   {base: "/srv", path: "/etc/passwd", want: "/srv/etc/passwd"},
		"pure ascent is a no-op":   {base: "/srv", path: "../../..", want: "/srv"},
		"dot components dropped":   {base: "/srv", path: "./a/./b", want: "/srv/a/b"},
		"relative base":            {base: "data", path: "../x", want: "data/x"},
		"empty path":               {base: "/srv", path: "", want: "/srv"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := lexpath.Parse(lexpath.Posix, tc.base)
			p := lexpath.Parse(lexpath.Posix, tc.path)

			assert.Equal(t, tc.want, base.RootedJoin(p).String())
		})
	}
}

func TestRootedJoin_Windows(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		base string
		path string
		want string
	}{
		"ascent neutralized": {base: `C:\sandbox`, path: `..\..\Windows`, want: `C:\sandbox\Windows`},
		"drive stripped":     {base: `C:\sandbox`, path: `D:\x`, want: `C:\sandbox\x`},
		"unc stripped":       {base: `C:\sandbox`, path: `\\srv\share\x`, want: `C:\sandbox\x`},
		"verbatim reparsed":  {base: `C:\sandbox`, path: `\\?\C:\x\..\..\y`, want: `C:\sandbox\y`},
		"case preserved":     {base: `C:\sandbox`, path: `A\..\B`, want: `C:\sandbox\B`},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := lexpath.Parse(lexpath.Windows, tc.base)
			p := lexpath.Parse(lexpath.Windows, tc.path)

			assert.Equal(t, tc.want, base.RootedJoin(p).String())
		})
	}
}

// The security property: whatever the path argument, the rooted join
// stays inside the base, and so does re-joining the result onto it.
func TestRootedJoin_NeverEscapes(t *testing.T) {
	t.Parallel()

	hostile := []string{
		"..", "../..", "../../etc/passwd", "/etc/passwd",
		"a/../../../..", "./../x", "..//../y", "a/b/../../../../c",
	}

	for _, platform := range []lexpath.Platform{lexpath.Posix, lexpath.Windows} {
		for _, baseRaw := range []string{"/srv", "/srv/data", "base"} {
			base := lexpath.Parse(platform, baseRaw)

			for _, raw := range hostile {
				joined := base.RootedJoin(lexpath.Parse(platform, raw))

				assert.True(t, joined.IsInside(base),
					"%s: RootedJoin(%q, %q) = %q", platform, baseRaw, raw, joined)
				assert.True(t, base.Join(joined).IsInside(base),
					"%s: rejoined %q escapes %q", platform, raw, baseRaw)
			}
		}
	}
}
