package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"secrettree/internal/app"
)

var (
	home       string
	passphrase string
	format     string

	wire   *app.Wire
	appCtx *app.App
)

// NewRootCmd builds the command tree. Execute runs it against os.Args.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "secrettree",
		Short:         "Derive every secret you need from one backed-up seed",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".secrettree")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			conf, err := app.Load(home)
			if err != nil {
				return err
			}
			if wire, err = app.NewWire(conf, nil); err != nil {
				return err
			}
			appCtx = wire.App(nil)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.secrettree)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "",
		"passphrase protecting the seed (default $"+app.PassphraseEnv+", else prompt)")
	root.PersistentFlags().StringVar(&format, "format", formatText, "output format: text, json or yaml")

	root.AddCommand(
		initCmd(),
		restoreCmd(),
		fingerprintCmd(),
		exportSeedCmd(),
		deriveCmd(),
		rngCmd(),
		keysCmd(),
		verifyCmd(),
		agreeCmd(),
		purposesCmd(),
	)
	return root
}

func Execute() error {
	return run(NewRootCmd())
}

// run executes root and releases the wiring even when a command fails.
func run(root *cobra.Command) error {
	err := root.Execute()
	if wire != nil {
		if cerr := wire.Close(); err == nil {
			err = cerr
		}
		wire, appCtx = nil, nil
	}
	return err
}
