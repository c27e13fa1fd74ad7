package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/parse"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import lessons from JSON",
		Long:  "Import lessons from JSON on stdin. Expects the format produced by export.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var lessons []model.Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		exitErr("parse json", err)
	}

	// Exports may have been edited by hand; re-check every list.
	opts := parseOptions()
	for _, l := range lessons {
		if _, err := parse.Sequence(parse.Format(l.Values, opts), opts); err != nil {
			exitErr("import "+l.Name, err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), lessons)
	if err != nil {
		exitErr("import", err)
	}
	logger.Debug("lessons imported", zap.Int("count", imported))

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
