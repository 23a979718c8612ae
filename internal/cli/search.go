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
		Use:   "search [query]",
		Short: "Search memories by similarity",
		Long:  "Rank a user's memories against the query by content overlap, with an optional bonus when a memory topic appears in the query.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 10, "Max results")
	cmd.Flags().Float64P("threshold", "s", 0.1, "Minimum score to include")
	cmd.Flags().Bool("no-topics", false, "Disable the topic-match bonus")
	cmd.Flags().Float64("boost", 0, "Topic-match bonus override")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	noTopics, _ := cmd.Flags().GetBool("no-topics")
	boost, _ := cmd.Flags().GetFloat64("boost")
	query := strings.Join(args, " ")

	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	matches, err := s.mgr.Search(cmd.Context(), memory.SearchParams{
		UserID:       s.user,
		Query:        query,
		Limit:        limit,
		Threshold:    threshold,
		SearchTopics: !noTopics,
		TopicBoost:   boost,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(matches) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(matches, "", "  ")
	fmt.Println(string(b))
}
