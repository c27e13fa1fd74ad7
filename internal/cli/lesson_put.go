package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put NAME [list]",
		Short: "Save a lesson list",
		Long:  "Validate and save a sorted list under NAME. The list can be a positional arg or piped via stdin.",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runLessonPut,
	}

	cmd.Flags().String("note", "", "Free-form note shown with the lesson")

	lessonCmd.AddCommand(cmd)
}

func runLessonPut(cmd *cobra.Command, args []string) {
	name := args[0]
	note, _ := cmd.Flags().GetString("note")

	// Get list: positional arg first, then check stdin
	var text string
	if len(args) > 1 {
		text = args[1]
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}

	seq, err := parse.Sequence(strings.TrimSpace(text), parseOptions())
	if err != nil {
		exitInput(cmd, err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	l, err := s.Put(cmd.Context(), store.PutParams{
		Name:   name,
		Values: seq,
		Note:   note,
	})
	if err != nil {
		exitErr("put", err)
	}

	b, _ := json.Marshal(l)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
