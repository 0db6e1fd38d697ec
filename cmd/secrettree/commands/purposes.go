package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func purposesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purposes",
		Short: "List derivation paths and the purposes they are bound to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Derive.Purposes()
			if err != nil {
				return err
			}
			return render(cmd, list, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PATH\tPURPOSE\tCREATED")
				for _, b := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Path, b.Purpose, b.CreatedAt.Format(time.RFC3339))
				}
				_ = tw.Flush()
			})
		},
	}
}
