package app

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"secrettree/internal/domain"
	"secrettree/internal/store"
	"secrettree/internal/util/logger"
)

const (
	// ConfigFilename is the TOML file read from the home directory.
	ConfigFilename = "config.toml"
	// EnvFilename is an optional dotenv file read from the home directory.
	EnvFilename = ".env"
	// PassphraseEnv names the environment variable holding the passphrase.
	PassphraseEnv = "SECRETTREE_PASSPHRASE"
)

// StoreConfig locates persistent state relative to the home directory.
type StoreConfig struct {
	SeedFile    string `toml:"seed_file"`
	PurposesDir string `toml:"purposes_dir"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string           `toml:"-"` // config directory, e.g. $HOME/.secrettree
	Logger logger.Config    `toml:"logger"`
	KDF    domain.KDFParams `toml:"kdf"`
	Store  StoreConfig      `toml:"store"`
}

// DefaultConfig returns the configuration used when home has no config file.
func DefaultConfig(home string) *Config {
	return &Config{
		Home:   home,
		Logger: logger.Config{Environment: "production"},
		KDF:    domain.DefaultKDFParams(),
		Store: StoreConfig{
			SeedFile:    store.DefaultSeedFilename,
			PurposesDir: "purposes",
		},
	}
}

// Load reads <home>/config.toml over the defaults and loads <home>/.env
// into the process environment without overriding existing variables.
// Missing files are not errors.
func Load(home string) (*Config, error) {
	conf := DefaultConfig(home)

	path := filepath.Join(home, ConfigFilename)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, errors.Wrapf(err, "failed to load config %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	envPath := filepath.Join(home, EnvFilename)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", envPath)
		}
	}
	return conf, conf.validate()
}

// Save writes the configuration to <home>/config.toml.
func (c *Config) Save() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	if err := os.MkdirAll(c.Home, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Home, ConfigFilename), buf.Bytes(), 0o600)
}

// SeedPath returns the absolute seed file location.
func (c *Config) SeedPath() string { return c.resolve(c.Store.SeedFile) }

// PurposesPath returns the absolute purpose registry location.
func (c *Config) PurposesPath() string { return c.resolve(c.Store.PurposesDir) }

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Home, p)
}

func (c *Config) validate() error {
	switch c.KDF.Algorithm {
	case domain.KDFScrypt, domain.KDFArgon2id:
	default:
		return errors.Wrapf(store.ErrUnsupportedKDF, "%q in %s", c.KDF.Algorithm, ConfigFilename)
	}
	if c.Store.SeedFile == "" || c.Store.PurposesDir == "" {
		return errors.New("store.seed_file and store.purposes_dir must be set")
	}
	return nil
}
