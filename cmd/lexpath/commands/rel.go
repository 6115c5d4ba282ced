package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const relExample = `  lexpath rel /usr/lib /usr
  lexpath rel usr/bin var
`

// NewRelCmd returns the rel command.
func NewRelCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "rel <path> <base>",
		Short:   "Derive the relative path from a base to a target",
		Example: relExample,
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

			rel, err := p.RelativeTo(base)
			if err != nil {
				return fmt.Errorf("rel %q %q: %w", pArgs[0], pArgs[1], err)
			}

			cmd.Println(rel.String())

			return nil
		},
	}
}
