package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "forget [id]",
		Short: "Delete a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runForget,
	}

	RootCmd.AddCommand(cmd)
}

func runForget(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	if err := s.mgr.Delete(cmd.Context(), s.user, args[0]); err != nil {
		exitErr("forget", err)
	}

	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
