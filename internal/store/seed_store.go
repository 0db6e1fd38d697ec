package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"secrettree"
	"secrettree/internal/domain"
	"secrettree/internal/util/memzero"
)

// DefaultSeedFilename is the seed file name used when the config leaves it empty.
const DefaultSeedFilename = "seed.json.enc"

var (
	// ErrNoSeed is returned by LoadSeed before any seed has been saved.
	ErrNoSeed = errors.New("no seed found; run init or restore first")
	// ErrSeedExists guards against silently replacing a stored seed.
	ErrSeedExists = errors.New("a seed already exists; use --force to replace it")
)

// SeedFileStore persists the root seed, encrypted under a passphrase.
type SeedFileStore struct {
	path   string
	params domain.KDFParams
	mu     sync.Mutex
}

// NewSeedFileStore returns a SeedFileStore writing to path. New files are
// sealed with params; existing files record their own parameters.
func NewSeedFileStore(path string, params domain.KDFParams) *SeedFileStore {
	return &SeedFileStore{path: path, params: params}
}

// Path returns the seed file location.
func (s *SeedFileStore) Path() string { return s.path }

// SaveSeed encrypts seed and atomically replaces the seed file.
func (s *SeedFileStore) SaveSeed(passphrase string, seed *secrettree.Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := encrypt(passphrase, seed.Bytes(), s.params)
	if err != nil {
		return errors.Wrap(err, "encrypt seed")
	}
	return errors.Wrapf(writeFile(s.path, ct, 0o600), "write %s", filepath.Base(s.path))
}

// LoadSeed reads and decrypts the seed and returns the root tree.
func (s *SeedFileStore) LoadSeed(passphrase string) (*secrettree.Tree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath.Base(s.path))
	}
	if b == nil {
		return nil, ErrNoSeed
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(pt)

	t, err := secrettree.FromSlice(pt)
	if err != nil {
		return nil, errors.Wrap(err, "corrupted seed file")
	}
	return t, nil
}

// HasSeed reports whether a seed file exists.
func (s *SeedFileStore) HasSeed() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Compile-time assertion that SeedFileStore implements domain.SeedStore.
var _ domain.SeedStore = (*SeedFileStore)(nil)
