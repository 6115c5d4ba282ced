package commands

import (
	"github.com/spf13/cobra"
)

const joinExample = `  lexpath join /usr lib
  lexpath join a/b ../c
`

// NewJoinCmd returns the join command, exposing the raw lexical join: the
// second path is appended literally, even when it looks absolute.
func NewJoinCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "join <path> <path>",
		Short:   "Concatenate two paths without normalizing",
		Example: joinExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			a, err := args.ParsePath(pArgs[0])
			if err != nil {
				return err
			}

			b, err := args.ParsePath(pArgs[1])
			if err != nil {
				return err
			}

			cmd.Println(a.Join(b).String())

			return nil
		},
	}
}
