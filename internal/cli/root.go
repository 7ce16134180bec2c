package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calbook",
		Short:         "Book, delete and find 30-minute appointment slots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAddCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newKeepCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
