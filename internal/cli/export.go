package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export lessons as JSON",
		Long:  "Export every live lesson version as a JSON array, readable by import.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lessons, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	if lessons == nil {
		lessons = []model.Lesson{}
	}

	b, _ := json.MarshalIndent(lessons, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
