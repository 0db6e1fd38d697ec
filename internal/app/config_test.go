package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secrettree/internal/app"
	"secrettree/internal/domain"
	"secrettree/internal/store"
	"secrettree/internal/util/logger"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	conf, err := app.Load(home)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultKDFParams(), conf.KDF)
	assert.Equal(t, filepath.Join(home, store.DefaultSeedFilename), conf.SeedPath())
	assert.Equal(t, filepath.Join(home, "purposes"), conf.PurposesPath())
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	home := t.TempDir()
	toml := `
[logger]
env = "development"
[kdf]
algorithm = "argon2id"
argon2_memory = 1024
[store]
seed_file = "/var/lib/secrettree/seed"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFilename), []byte(toml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, app.EnvFilename), []byte(app.PassphraseEnv+"=from-dotenv\n"), 0o600))
	t.Setenv(app.PassphraseEnv, "")
	os.Unsetenv(app.PassphraseEnv)

	conf, err := app.Load(home)
	require.NoError(t, err)

	assert.Equal(t, "development", conf.Logger.Environment)
	assert.Equal(t, domain.KDFArgon2id, conf.KDF.Algorithm)
	assert.Equal(t, uint32(1024), conf.KDF.Argon2Memory)
	assert.Equal(t, 1<<15, conf.KDF.ScryptN, "unset keys keep defaults")
	assert.Equal(t, "/var/lib/secrettree/seed", conf.SeedPath())
	assert.Equal(t, "from-dotenv", os.Getenv(app.PassphraseEnv))
}

func TestLoad_DotenvDoesNotOverride(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, app.EnvFilename), []byte(app.PassphraseEnv+"=from-dotenv\n"), 0o600))
	t.Setenv(app.PassphraseEnv, "from-shell")

	_, err := app.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "from-shell", os.Getenv(app.PassphraseEnv))
}

func TestLoad_RejectsUnknownKDF(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFilename), []byte("[kdf]\nalgorithm = \"md5\"\n"), 0o600))
	_, err := app.Load(home)
	assert.ErrorIs(t, err, store.ErrUnsupportedKDF)
}

func TestSave_RoundTrip(t *testing.T) {
	home := t.TempDir()
	conf := app.DefaultConfig(home)
	conf.KDF.ScryptN = 1 << 12
	require.NoError(t, conf.Save())

	got, err := app.Load(home)
	require.NoError(t, err)
	assert.Equal(t, conf, got)
}

func TestWire_EndToEnd(t *testing.T) {
	conf := app.DefaultConfig(t.TempDir())
	conf.KDF.ScryptN = 1 << 10

	w, err := app.NewWire(conf, logger.Nop())
	require.NoError(t, err)
	defer w.Close()

	a := w.App(bytes.NewReader(bytes.Repeat([]byte{1}, 32)))
	fp, err := a.Seeds.Generate("Correct-Horse-9", false)
	require.NoError(t, err)
	assert.NotEmpty(t, fp)

	secret, err := a.Derive.Secret("Correct-Horse-9", "app/#0", "token", 32)
	require.NoError(t, err)
	assert.Len(t, secret, 32)
}
