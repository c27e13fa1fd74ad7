package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons",
		Run:   runLessonList,
	}

	cmd.Flags().IntP("limit", "n", 20, "Max results")
	cmd.Flags().Bool("names-only", false, "Only output lesson names")

	lessonCmd.AddCommand(cmd)
}

func runLessonList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lessons, err := s.List(cmd.Context(), store.ListParams{Limit: limit})
	if err != nil {
		exitErr("list", err)
	}

	out := cmd.OutOrStdout()
	if namesOnly {
		for _, l := range lessons {
			fmt.Fprintln(out, l.Name)
		}
		return
	}
	if formatFlag == "text" {
		for _, l := range lessons {
			fmt.Fprintf(out, "%s\tv%d\t%s\n", l.Name, l.Version, parse.Format(l.Values, parseOptions()))
		}
		return
	}

	if len(lessons) == 0 {
		fmt.Fprintln(out, "[]")
		return
	}
	b, _ := json.MarshalIndent(lessons, "", "  ")
	fmt.Fprintln(out, string(b))
}
