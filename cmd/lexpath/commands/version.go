package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/lexpath/pkg/version"
)

func GetVersionString() string {
	return fmt.Sprintf("%s+%s", version.Version, version.Revision)
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the lexpath CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
