package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remember [content]",
		Short: "Store a memory",
		Long:  "Store a memory for a user. Content can be a positional arg or piped via stdin. Near-duplicates of existing memories are not re-inserted; the matched record is reported instead.",
		Run:   runRemember,
	}

	cmd.Flags().StringP("topics", "t", "", "Comma-separated topic labels (default: auto-classify)")

	RootCmd.AddCommand(cmd)
}

func runRemember(cmd *cobra.Command, args []string) {
	topicsStr, _ := cmd.Flags().GetString("topics")

	// Content: positional args first, then stdin.
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}

	if strings.TrimSpace(content) == "" {
		exitErr("remember", fmt.Errorf("content is required (positional arg or stdin)"))
	}

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

	result, err := s.mgr.Add(cmd.Context(), s.user, strings.TrimSpace(content), topics)
	if err != nil {
		exitErr("remember", err)
	}

	b, _ := json.Marshal(result)
	fmt.Println(string(b))
}
