package commands

import (
	"os"

	"github.com/howeyc/gopass"
	"github.com/pkg/errors"

	"secrettree/internal/app"
)

// prompt is swapped out in tests.
var prompt = func(msg string) (string, error) {
	b, err := gopass.GetPasswdPrompt(msg, true, os.Stdin, os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// resolvePassphrase returns the -p flag, then $SECRETTREE_PASSPHRASE, then
// asks on the terminal. confirm asks twice, for passphrases being set.
func resolvePassphrase(confirm bool) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	if p := os.Getenv(app.PassphraseEnv); p != "" {
		return p, nil
	}
	p, err := prompt("Passphrase: ")
	if err != nil {
		return "", errors.Wrap(err, "read passphrase")
	}
	if p == "" {
		return "", errors.New("passphrase required (-p, $" + app.PassphraseEnv + " or prompt)")
	}
	if confirm {
		again, err := prompt("Repeat passphrase: ")
		if err != nil {
			return "", errors.Wrap(err, "read passphrase")
		}
		if again != p {
			return "", errors.New("passphrases do not match")
		}
	}
	return p, nil
}
