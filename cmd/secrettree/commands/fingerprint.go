package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the root seed fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}
			fp, err := appCtx.Seeds.Fingerprint(pass)
			if err != nil {
				return err
			}
			return render(cmd, seedView{fp}, func(w io.Writer) {
				fmt.Fprintf(w, "Fingerprint: %s\n", fp)
			})
		},
	}
}
