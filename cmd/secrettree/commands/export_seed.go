package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func exportSeedCmd() *cobra.Command {
	var understood bool
	cmd := &cobra.Command{
		Use:   "export-seed",
		Short: "Print the raw root seed as hex",
		Long: "Print the raw root seed as hex. Anyone holding it can derive every " +
			"secret of the tree, so it must be stored offline.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !understood {
				return errors.New("refusing to print the seed without --i-understand")
			}
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}
			seedHex, err := appCtx.Seeds.Export(pass)
			if err != nil {
				return err
			}
			v := struct {
				Seed string `json:"seed" yaml:"seed"`
			}{seedHex}
			return render(cmd, v, func(w io.Writer) { fmt.Fprintln(w, seedHex) })
		},
	}
	cmd.Flags().BoolVar(&understood, "i-understand", false, "acknowledge that the seed is printed in the clear")
	return cmd
}
