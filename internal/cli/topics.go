package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "topics [text]",
		Short: "Classify text into topic labels",
		Long:  "Run the topic classifier over arbitrary text without storing anything.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTopics,
	}

	cmd.Flags().Bool("scores", false, "Print label confidence scores instead of a label list")

	RootCmd.AddCommand(cmd)
}

func runTopics(cmd *cobra.Command, args []string) {
	scores, _ := cmd.Flags().GetBool("scores")
	input := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("config", err)
	}
	cl := newClassifier(cfg, newLogger(cfg))

	var b []byte
	if scores {
		b, _ = json.Marshal(cl.Classify(input))
	} else {
		b, _ = json.Marshal(cl.Labels(input))
	}
	fmt.Println(string(b))
}
