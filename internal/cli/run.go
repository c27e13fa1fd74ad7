package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/render"
	"github.com/rcliao/bsearch-viz/internal/search"
	"github.com/rcliao/bsearch-viz/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run [list] [target]",
		Short: "Run binary search and print every step",
		Long: `Run binary search over a sorted, comma-separated list and print each step,
the final state and the number of comparisons. The list and target can be
given as positional args, as flags, or the list can come from a saved lesson.`,
		Example: `  bsviz run 1,3,5,7,9,11,13,15 7
  bsviz run --lesson odds --target 2 --format json`,
		Args: cobra.MaximumNArgs(2),
		Run:  runRun,
	}
	addInputFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("list", "l", "", "Sorted list of integers")
	cmd.Flags().StringP("target", "t", "", "Target value")
	cmd.Flags().String("lesson", "", "Load the list from a saved lesson")
}

func runRun(cmd *cobra.Command, args []string) {
	res, err := searchFromInput(cmd, args)
	if err != nil {
		exitInput(cmd, err)
	}
	if err := writeResult(cmd.OutOrStdout(), res, formatFlag); err != nil {
		exitErr("run", err)
	}
}

// searchFromInput resolves the list and target, validates them and runs the
// search. Validation failures come back as *parse.ValidationError.
func searchFromInput(cmd *cobra.Command, args []string) (*model.Result, error) {
	listText, _ := cmd.Flags().GetString("list")
	targetText, _ := cmd.Flags().GetString("target")
	lesson, _ := cmd.Flags().GetString("lesson")

	if len(args) == 2 {
		listText, targetText = args[0], args[1]
	} else if len(args) == 1 {
		if lesson != "" || listText != "" {
			targetText = args[0]
		} else {
			listText = args[0]
		}
	}

	if lesson != "" {
		text, err := loadLesson(cmd, lesson)
		if err != nil {
			return nil, fmt.Errorf("load lesson: %w", err)
		}
		listText = text
	}

	seq, target, err := parse.Input(listText, targetText, parseOptions())
	if err != nil {
		return nil, err
	}

	res := search.Run(seq, target)
	logger.Debug("search done",
		zap.Int("n", len(seq)),
		zap.Int("target", target),
		zap.Bool("found", res.Found),
		zap.Int("comparisons", res.Comparisons))
	return res, nil
}

func loadLesson(cmd *cobra.Command, name string) (string, error) {
	s, err := openStore()
	if err != nil {
		return "", err
	}
	defer s.Close()

	got, err := s.Get(cmd.Context(), store.GetParams{Name: name})
	if err != nil {
		return "", err
	}
	if err := s.Touch(cmd.Context(), got[0].ID); err != nil {
		logger.Warn("record lesson use", zap.String("name", name), zap.Error(err))
	}
	return parse.Format(got[0].Values, parseOptions()), nil
}

type runOutput struct {
	Result *model.Result    `json:"result"`
	Final  model.FinalState `json:"final"`
}

func writeResult(w io.Writer, res *model.Result, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(runOutput{Result: res, Final: res.Final()}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "html":
		return render.WriteHTML(w, render.Page{Result: res})
	case "text", "":
		_, err := fmt.Fprint(w, render.NewTerminal().Result(res))
		return err
	}
	return fmt.Errorf("unknown format %q (use text, json or html)", format)
}
