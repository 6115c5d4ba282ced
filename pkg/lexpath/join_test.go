package lexpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/lexpath/pkg/lexpath"
)

func TestJoin_Posix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a    string
		b    string
		want string
	}{
		"simple":                    {a: "/usr", b: "lib", want: "/usr/lib"},
		"empty left returns right":  {a: "", b: "foo", want: "foo"},
		"empty right returns left":  {a: "/usr", b: "", want: "/usr"},
		"rooted right not special":  {a: "/usr", b: "/var", want: "/usr/var"},
		"root only left":            {a: "/", b: "foo", want: "/foo"},
		"no normalization":          {a: "/usr", b: "../etc", want: "/usr/../etc"},
		"trailing dot preserved":    {a: "/home/user", b: ".", want: "/home/user/."},
		"relative onto relative":    {a: "a/b", b: "c/d", want: "a/b/c/d"},
		"dot components kept as-is": {a: "a/./b", b: "./c", want: "a/./b/./c"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := lexpath.Parse(lexpath.Posix, tc.a)
			b := lexpath.Parse(lexpath.Posix, tc.b)

			assert.Equal(t, tc.want, a.Join(b).String())
		})
	}
}

func TestJoin_Windows(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a    string
		b    string
		want string
	}{
		"simple":                  {a: `C:\Users`, b: `me`, want: `C:\Users\me`},
		"prefixed right literal":  {a: `a`, b: `C:\x`, want: `a\C:\x`},
		"unc right literal":       {a: `C:\mnt`, b: `\\server\share\f`, want: `C:\mnt\\\server\share\f`},
		"drive relative left":     {a: `C:tmp`, b: `x`, want: `C:tmp\x`},
		"opaque left extends":     {a: `\\?\C:\Temp`, b: `logs\app.log`, want: `\\?\C:\Temp\logs\app.log`},
		"rooted driveless right":  {a: `C:\a`, b: `\x`, want: `C:\a\x`},
		"mixed input separators":  {a: `a/b`, b: `c/d`, want: `a\b\c\d`},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := lexpath.Parse(lexpath.Windows, tc.a)
			b := lexpath.Parse(lexpath.Windows, tc.b)

			assert.Equal(t, tc.want, a.Join(b).String())
		})
	}
}
