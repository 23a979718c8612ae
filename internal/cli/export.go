package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export memories as JSON",
		Long:  "Export memories as JSON. By default every user's records are included; --user limits the export.",
		Run:   runExport,
	}

	cmd.Flags().Bool("all", false, "Export all users even when --user is set")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")

	s, err := openSession()
	if err != nil {
		exitErr("open", err)
	}
	defer s.close()

	user := ""
	if !all && userFlag != "" {
		user = s.user
	}

	memories, err := s.st.ExportAll(cmd.Context(), user)
	if err != nil {
		exitErr("export", err)
	}

	if len(memories) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(memories, "", "  ")
	fmt.Println(string(b))
}
