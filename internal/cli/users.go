package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user ids with memory counts",
		Run:   runUsers,
	}

	RootCmd.AddCommand(cmd)
}

func runUsers(cmd *cobra.Command, args []string) {
	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	users, err := s.st.Users(cmd.Context())
	if err != nil {
		exitErr("users", err)
	}

	if len(users) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(users, "", "  ")
	fmt.Println(string(b))
}
