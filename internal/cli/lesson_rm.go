package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a lesson",
		Args:  cobra.ExactArgs(1),
		Run:   runLessonRm,
	}

	cmd.Flags().Bool("all-versions", false, "Delete all versions")
	cmd.Flags().Bool("hard", false, "Permanent delete (irreversible)")

	lessonCmd.AddCommand(cmd)
}

func runLessonRm(cmd *cobra.Command, args []string) {
	name := args[0]
	allVersions, _ := cmd.Flags().GetBool("all-versions")
	hard, _ := cmd.Flags().GetBool("hard")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	err = s.Rm(cmd.Context(), store.RmParams{
		Name:        name,
		AllVersions: allVersions,
		Hard:        hard,
	})
	if err != nil {
		exitErr("rm", err)
	}
	logger.Debug("lesson removed", zap.String("name", name), zap.Bool("hard", hard), zap.Bool("all_versions", allVersions))

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"name":%q}`+"\n", name)
}
