package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"secrettree/internal/crypto"
	"secrettree/internal/domain"
)

type keyView struct {
	Kind        domain.KeyKind     `json:"kind" yaml:"kind"`
	Path        string             `json:"path" yaml:"path"`
	PublicKey   string             `json:"public_key" yaml:"public_key"`
	Fingerprint domain.Fingerprint `json:"fingerprint" yaml:"fingerprint"`
	Signature   string             `json:"signature,omitempty" yaml:"signature,omitempty"`
}

func newKeyView(pk domain.PublicKey) keyView {
	return keyView{Kind: pk.Kind, Path: pk.Path, PublicKey: crypto.B64(pk.Bytes), Fingerprint: pk.Fingerprint}
}

func (v keyView) text(w io.Writer) {
	fmt.Fprintf(w, "Type:        %s\nPath:        %s\nPublic key:  %s\nFingerprint: %s\n",
		v.Kind, v.Path, v.PublicKey, v.Fingerprint)
	if v.Signature != "" {
		fmt.Fprintf(w, "Signature:   %s\n", v.Signature)
	}
}

func keysCmd() *cobra.Command {
	var (
		kind string
		sign string
	)
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "Derive a keypair at path and print its public key",
		Long: fmt.Sprintf("Derive a keypair at path and print its public key (base64).\n"+
			"Supported types: %v. A path is pinned to the first type used with it.", domain.KeyKinds),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := domain.ParseKeyKind(kind)
			if err != nil {
				return err
			}
			signing := cmd.Flags().Changed("sign")
			if signing && k != domain.KeyEd25519 {
				return fmt.Errorf("--sign needs --type %s", domain.KeyEd25519)
			}
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}

			var v keyView
			if signing {
				pk, sig, err := appCtx.Derive.Sign(pass, args[0], []byte(sign))
				if err != nil {
					return err
				}
				v = newKeyView(pk)
				v.Signature = crypto.B64(sig)
			} else {
				pk, err := appCtx.Derive.PublicKey(pass, args[0], k)
				if err != nil {
					return err
				}
				v = newKeyView(pk)
			}
			return render(cmd, v, v.text)
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(domain.KeyEd25519), "key type")
	cmd.Flags().StringVar(&sign, "sign", "", "sign this message with the ed25519 key and print the signature")
	return cmd
}
