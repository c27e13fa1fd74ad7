package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rcliao/bsearch-viz/internal/render"
)

const primer = `# Binary Search

Binary search is an efficient algorithm that works only on **sorted lists**.
It repeatedly checks the **middle value** and cuts the search space in half
until the target is found or the range of the list becomes empty.

1. Start with the whole list: ` + "`low = 0`, `high = n - 1`" + `.
2. Look at the middle element, ` + "`mid = (low + high) / 2`" + `.
3. If it equals the target, stop: found.
4. If it is too small, the target can only be to the right: ` + "`low = mid + 1`" + `.
5. If it is too large, the target can only be to the left: ` + "`high = mid - 1`" + `.
6. When ` + "`low > high`" + ` the range is empty and the target is not in the list.

A list of *n* elements needs at most ⌈log₂(n+1)⌉ comparisons.

## Color legend
`

func init() {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Explain binary search and the color legend",
		Run:   runAbout,
	}

	RootCmd.AddCommand(cmd)
}

func runAbout(cmd *cobra.Command, args []string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		exitErr("about", err)
	}
	out, err := r.Render(primer)
	if err != nil {
		exitErr("about", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintln(cmd.OutOrStdout(), render.NewTerminal().Legend())
}
