package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update [id] [content]",
		Short: "Overwrite a memory in place",
		Long:  "Replace a memory's content and topics, refreshing its updated_at timestamp.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runUpdate,
	}

	cmd.Flags().StringP("topics", "t", "", "Comma-separated topic labels (default: auto-classify)")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	topicsStr, _ := cmd.Flags().GetString("topics")
	id := args[0]
	content := strings.Join(args[1:], " ")

	var topics []string
	if cmd.Flags().Changed("topics") {
		topics = []string{}
		for _, t := range strings.Split(topicsStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	mem, err := s.mgr.Update(cmd.Context(), s.user, id, content, topics)
	if err != nil {
		exitErr("update", err)
	}

	b, _ := json.Marshal(mem)
	fmt.Println(string(b))
}
