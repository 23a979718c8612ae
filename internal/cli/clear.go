package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all of a user's memories",
		Long:  "Delete every memory owned by the user. Succeeds even when nothing is stored.",
		Run:   runClear,
	}

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	n, err := s.mgr.Clear(cmd.Context(), s.user)
	if err != nil {
		exitErr("clear", err)
	}

	fmt.Printf(`{"ok":true,"user":%q,"removed":%d}`+"\n", s.user, n)
}
