package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "step [list] [target]",
		Short: "Walk through a search interactively",
		Long:  "Open an interactive view that moves through the search one comparison at a time.",
		Args:  cobra.MaximumNArgs(2),
		Run:   runStep,
	}
	addInputFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runStep(cmd *cobra.Command, args []string) {
	res, err := searchFromInput(cmd, args)
	if err != nil {
		exitInput(cmd, err)
	}
	if err := tui.Run(res); err != nil {
		exitErr("step", err)
	}
}
