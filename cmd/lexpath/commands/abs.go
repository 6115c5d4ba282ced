package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/lexpath/pkg/cwd"
	"github.com/MacroPower/lexpath/pkg/lexpath"
)

const absExample = `  lexpath abs ../file.txt
  lexpath abs --cwd /home/user .
  lexpath abs --platform=windows --cwd 'D:\work' 'D:sources'
`

// NewAbsCmd returns the abs command. Without --cwd the process working
// directory is used; with it, resolution is fully deterministic and
// touches nothing outside the supplied snapshot.
func NewAbsCmd(args *RootArgs) *cobra.Command {
	cwdFlag := new(string)

	cmd := &cobra.Command{
		Use:     "abs <path>...",
		Short:   "Resolve paths against a current directory",
		Example: absExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			platform, err := args.Platform()
			if err != nil {
				return err
			}

			opts, err := args.ParseOptions()
			if err != nil {
				return err
			}

			var provider lexpath.CwdProvider = cwd.NewOS()
			if *cwdFlag != "" {
				static := cwd.NewStatic(*cwdFlag)
				if platform == lexpath.Windows {
					if drive := lexpath.Parse(platform, *cwdFlag).Prefix(); drive != "" {
						static = static.WithDrive(drive, *cwdFlag)
					}
				}

				provider = static
			}

			resolver := lexpath.NewResolver(platform, provider, opts...)

			for _, raw := range pArgs {
				p := lexpath.Parse(platform, raw, opts...)

				abs, err := resolver.Absolute(p)
				if err != nil {
					return fmt.Errorf("abs %q: %w", raw, err)
				}

				cmd.Println(abs.String())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(cwdFlag, "cwd", "", "Resolve against this directory instead of the process one")
	must(cmd.MarkFlagDirname("cwd"))

	return cmd
}
