package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Width(12)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

const explainExample = `  lexpath explain /usr/.//lib/../../var
  lexpath explain --platform=windows '\\?\C:\Temp\..'
`

// NewExplainCmd returns the explain command, printing the typed component
// breakdown of each path.
func NewExplainCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "explain <path>...",
		Short:   "Show how a path splits into typed components",
		Example: explainExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			for _, raw := range pArgs {
				p, err := args.ParsePath(raw)
				if err != nil {
					return err
				}

				cmd.Println(nameStyle.Render(raw))
				cmd.Println(summaryStyle.Render(fmt.Sprintf(
					"  platform=%s prefix=%s absolute=%t normalized=%t",
					p.Platform(), p.PrefixKind(), p.IsAbs(), p.IsNormalized(),
				)))

				for _, c := range p.Components() {
					cmd.Printf("  %s %s\n", kindStyle.Render(c.Kind.String()), c.String())
				}
			}

			return nil
		},
	}
}
