package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dpratt/recall/internal/memory"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context [query]",
		Short: "Assemble relevant memories for a prompt",
		Long:  "Score and select a user's memories against the query, then greedily pack them into a character budget for prompt injection.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runContext,
	}

	cmd.Flags().IntP("budget", "b", 2000, "Max characters in output")

	RootCmd.AddCommand(cmd)
}

func runContext(cmd *cobra.Command, args []string) {
	budget, _ := cmd.Flags().GetInt("budget")
	query := strings.Join(args, " ")

	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	result, err := s.mgr.Compose(cmd.Context(), memory.ComposeParams{
		UserID: s.user,
		Query:  query,
		Budget: budget,
	})
	if err != nil {
		exitErr("context", err)
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
