package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNotInside is returned by `inside --strict` for a negative result.
var ErrNotInside = errors.New("path is not inside base")

const insideExample = `  lexpath inside /srv/data/file.txt /srv
  lexpath inside --platform=windows 'C:\A\B' 'c:\a'
`

// NewInsideCmd returns the inside command. It prints true or false; with
// --strict a false result also yields a non-zero exit status, for use in
// shell conditionals.
func NewInsideCmd(args *RootArgs) *cobra.Command {
	strict := new(bool)

	cmd := &cobra.Command{
		Use:     "inside <path> <base>",
		Short:   "Check whether a path is lexically contained in a base",
		Example: insideExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			p, err := args.ParsePath(pArgs[0])
			if err != nil {
				return err
			}

			base, err := args.ParsePath(pArgs[1])
			if err != nil {
				return err
			}

			ok := p.IsInside(base)
			cmd.Println(ok)

			if !ok && *strict {
				return ErrNotInside
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(strict, "strict", false, "Exit non-zero when the path is not inside the base")

	return cmd
}
