package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/sample"
)

func init() {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random sorted list",
		Long:  "Print a random sorted list of distinct integers between 1 and 99, ready to pass to run.",
		Run:   runRandom,
	}

	cmd.Flags().IntP("size", "n", sample.DefaultSize, "Number of elements (1-99)")
	cmd.Flags().Int64("seed", 0, "Random seed (default: current time)")

	RootCmd.AddCommand(cmd)
}

func runRandom(cmd *cobra.Command, args []string) {
	size, _ := cmd.Flags().GetInt("size")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	seq, err := sample.Sorted(rand.New(rand.NewSource(seed)), size)
	if err != nil {
		exitErr("random", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), parse.Format(seq, parseOptions()))
}
