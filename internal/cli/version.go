package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngoguened/zoo/pkg/zoo"
)

const modulePath = "github.com/ngoguened/zoo"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the zoo version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "zoo v%s\nmodule: %s\n", zoo.Version, modulePath)
			return nil
		},
	}
}
