package cli

import (
	"github.com/spf13/cobra"
)

// lessonCmd groups the lesson deck commands.
var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Manage saved lesson lists",
	Long:  "Save named sorted lists so a class can rerun the same searches. Lessons are versioned; re-saving a name creates a new version.",
}

func init() {
	RootCmd.AddCommand(lessonCmd)
}
