package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"secrettree/internal/crypto"
	"secrettree/internal/domain"
)

func deriveCmd() *cobra.Command {
	var (
		purpose string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "derive <path>",
		Short: "Derive a 16 to 64 byte secret at path and print it as hex",
		Example: "  secrettree derive backup/#0 --purpose 'restic repository key'\n" +
			"  secrettree derive hosts/~db.example.com --purpose 'db password' --size 24",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}
			secret, err := appCtx.Derive.Secret(pass, args[0], domain.Purpose(purpose), size)
			if err != nil {
				return err
			}
			out := crypto.Hex(secret)
			v := struct {
				Path    string         `json:"path" yaml:"path"`
				Purpose domain.Purpose `json:"purpose" yaml:"purpose"`
				Secret  string         `json:"secret" yaml:"secret"`
			}{args[0], domain.Purpose(purpose), out}
			return render(cmd, v, func(w io.Writer) { fmt.Fprintln(w, out) })
		},
	}
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the secret is for; fixed per path (required)")
	cmd.Flags().IntVar(&size, "size", 32, "secret length in bytes (16..64)")
	_ = cmd.MarkFlagRequired("purpose")
	return cmd
}

func rngCmd() *cobra.Command {
	var (
		purpose string
		n       int64
		asHex   bool
	)
	cmd := &cobra.Command{
		Use:   "rng <path>",
		Short: "Write bytes from the deterministic RNG at path to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asHex {
				enc := hex.NewEncoder(w)
				defer fmt.Fprintln(w)
				w = enc
			}
			return appCtx.Derive.Stream(pass, args[0], domain.Purpose(purpose), w, n)
		},
	}
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the stream is for; fixed per path (required)")
	cmd.Flags().Int64Var(&n, "bytes", 32, "number of bytes to write")
	cmd.Flags().BoolVar(&asHex, "hex", false, "hex-encode the output")
	_ = cmd.MarkFlagRequired("purpose")
	return cmd
}
