package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"secrettree/internal/crypto"
)

// ErrBadSignature is returned by verify for a signature that does not check out.
var ErrBadSignature = errors.New("signature does not verify")

func verifyCmd() *cobra.Command {
	var key, sig string
	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Check an ed25519 signature printed by keys --sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := base64.StdEncoding.DecodeString(key)
			if err != nil || len(pub) != 32 {
				return fmt.Errorf("--key must be a base64 ed25519 public key")
			}
			s, err := base64.StdEncoding.DecodeString(sig)
			if err != nil {
				return fmt.Errorf("--sig must be base64: %w", err)
			}
			if !crypto.VerifyEd25519(pub, []byte(args[0]), s) {
				return ErrBadSignature
			}
			v := struct {
				Valid       bool   `json:"valid" yaml:"valid"`
				Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
			}{true, crypto.Fingerprint(pub)}
			return render(cmd, v, func(w io.Writer) {
				fmt.Fprintf(w, "Signature OK (key %s)\n", v.Fingerprint)
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "signer public key, base64 (required)")
	cmd.Flags().StringVar(&sig, "sig", "", "signature, base64 (required)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

func agreeCmd() *cobra.Command {
	var peer string
	cmd := &cobra.Command{
		Use:   "agree <path>",
		Short: "Derive an X25519 shared secret with a peer's public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peerPub, err := base64.StdEncoding.DecodeString(peer)
			if err != nil {
				return fmt.Errorf("--peer must be base64: %w", err)
			}
			pass, err := resolvePassphrase(false)
			if err != nil {
				return err
			}
			pk, shared, err := appCtx.Derive.Agree(pass, args[0], peerPub)
			if err != nil {
				return err
			}
			v := struct {
				keyView `yaml:",inline"`
				Peer    string `json:"peer_fingerprint" yaml:"peer_fingerprint"`
				Shared  string `json:"shared_secret" yaml:"shared_secret"`
			}{newKeyView(pk), crypto.Fingerprint(peerPub), crypto.Hex(shared)}
			return render(cmd, v, func(w io.Writer) { fmt.Fprintln(w, v.Shared) })
		},
	}
	cmd.Flags().StringVar(&peer, "peer", "", "peer x25519 public key, base64 (required)")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}
