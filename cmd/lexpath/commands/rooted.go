package commands

import (
	"github.com/spf13/cobra"
)

const rootedExample = `  lexpath rooted /srv foo/../../file.txt
  lexpath rooted /srv ../srv/file.txt
`

// NewRootedCmd returns the rooted command, the containment-guaranteed
// join: the result is always lexically inside the base, with `..`
// escapes neutralized within the supplied path.
func NewRootedCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "rooted <base> <path>",
		Short:   "Join a path under a base it can never escape",
		Example: rootedExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			base, err := args.ParsePath(pArgs[0])
			if err != nil {
				return err
			}

			p, err := args.ParsePath(pArgs[1])
			if err != nil {
				return err
			}

			cmd.Println(base.RootedJoin(p).String())

			return nil
		},
	}
}
