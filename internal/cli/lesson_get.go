package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show a lesson",
		Args:  cobra.ExactArgs(1),
		Run:   runLessonGet,
	}

	cmd.Flags().Bool("history", false, "Return all versions (newest first)")
	cmd.Flags().Int("version", 0, "Specific version number")

	lessonCmd.AddCommand(cmd)
}

func runLessonGet(cmd *cobra.Command, args []string) {
	history, _ := cmd.Flags().GetBool("history")
	version, _ := cmd.Flags().GetInt("version")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lessons, err := s.Get(cmd.Context(), store.GetParams{
		Name:    args[0],
		History: history,
		Version: version,
	})
	if err != nil {
		exitErr("get", err)
	}

	var b []byte
	if history {
		b, _ = json.MarshalIndent(lessons, "", "  ")
	} else {
		b, _ = json.MarshalIndent(lessons[0], "", "  ")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
