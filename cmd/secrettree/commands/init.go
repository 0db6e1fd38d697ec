package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"secrettree/internal/domain"
)

type seedView struct {
	Fingerprint domain.Fingerprint `json:"fingerprint" yaml:"fingerprint"`
}

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a new root seed and store it encrypted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := resolvePassphrase(true)
			if err != nil {
				return err
			}
			fp, err := appCtx.Seeds.Generate(pass, force)
			if err != nil {
				return err
			}
			return render(cmd, seedView{fp}, func(w io.Writer) {
				fmt.Fprintf(w, "Seed created. Back it up with export-seed.\nFingerprint: %s\n", fp)
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing seed")
	return cmd
}

func restoreCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "restore <seed-hex>",
		Short: "Store a previously exported root seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := resolvePassphrase(true)
			if err != nil {
				return err
			}
			fp, err := appCtx.Seeds.Restore(pass, args[0], force)
			if err != nil {
				return err
			}
			return render(cmd, seedView{fp}, func(w io.Writer) {
				fmt.Fprintf(w, "Seed restored.\nFingerprint: %s\n", fp)
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing seed")
	return cmd
}
