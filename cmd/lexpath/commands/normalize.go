package commands

import (
	"github.com/spf13/cobra"
)

const normalizeExample = `  lexpath normalize /usr/.//lib/../../var
  lexpath normalize --platform=windows 'C:\a\..\b'
`

// NewNormalizeCmd returns the normalize command.
func NewNormalizeCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <path>...",
		Short:   "Rewrite paths into their shortest lexically equivalent form",
		Example: normalizeExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			for _, raw := range pArgs {
				p, err := args.ParsePath(raw)
				if err != nil {
					return err
				}

				cmd.Println(p.Normalize().String())
			}

			return nil
		},
	}
}
