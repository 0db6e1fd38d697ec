package seed

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"secrettree"
	"secrettree/internal/crypto"
	"secrettree/internal/domain"
	"secrettree/internal/store"
	"secrettree/internal/util/logger"
	"secrettree/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrBadSeedHex is returned by Restore for input that is not 64 hex characters.
	ErrBadSeedHex = errors.Errorf("seed must be %d hex characters", 2*secrettree.SeedLen)
)

// Service manages the root seed using a backing store.
type Service struct {
	store  domain.SeedStore
	log    *logger.Logger
	random io.Reader
}

// New returns a seed service backed by the given store. A nil random
// means crypto/rand.
func New(s domain.SeedStore, log *logger.Logger, random io.Reader) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: s, log: log.Named("seed"), random: random}
}

// Generate samples a fresh root seed, saves it encrypted with the passphrase,
// and returns its fingerprint. An existing seed is only replaced with force.
func (s *Service) Generate(passphrase string, force bool) (domain.Fingerprint, error) {
	if err := s.precheck(passphrase, force); err != nil {
		return "", err
	}
	t, err := secrettree.New(s.random)
	if err != nil {
		return "", errors.Wrap(err, "generate seed")
	}
	defer t.Close()
	return s.save(passphrase, t, "generated")
}

// Restore stores a seed given as 64 hex characters. Whitespace is ignored.
func (s *Service) Restore(passphrase, seedHex string, force bool) (domain.Fingerprint, error) {
	if err := s.precheck(passphrase, force); err != nil {
		return "", err
	}
	raw, err := hex.DecodeString(strings.Join(strings.Fields(seedHex), ""))
	defer memzero.Zero(raw)
	if err != nil || len(raw) != secrettree.SeedLen {
		return "", ErrBadSeedHex
	}
	t, err := secrettree.FromSlice(raw)
	if err != nil {
		return "", err
	}
	defer t.Close()
	return s.save(passphrase, t, "restored")
}

// Open decrypts the seed and returns the root tree. The caller closes it.
func (s *Service) Open(passphrase string) (*secrettree.Tree, error) {
	return s.store.LoadSeed(passphrase)
}

// Fingerprint returns the public-safe identifier of the stored seed.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	t, err := s.store.LoadSeed(passphrase)
	if err != nil {
		return "", err
	}
	defer t.Close()
	return domain.Fingerprint(crypto.SeedFingerprint(t)), nil
}

// Export returns the raw seed as hex. This is the only path by which the
// seed leaves encrypted storage.
func (s *Service) Export(passphrase string) (string, error) {
	t, err := s.store.LoadSeed(passphrase)
	if err != nil {
		return "", err
	}
	defer t.Close()
	s.log.Warn("seed exported", "fingerprint", crypto.SeedFingerprint(t))
	return hex.EncodeToString(t.Seed().Bytes()), nil
}

func (s *Service) precheck(passphrase string, force bool) error {
	if !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	exists, err := s.store.HasSeed()
	if err != nil {
		return errors.Wrap(err, "check existing seed")
	}
	if exists && !force {
		return store.ErrSeedExists
	}
	if exists {
		s.log.Warn("replacing existing seed")
	}
	return nil
}

func (s *Service) save(passphrase string, t *secrettree.Tree, how string) (domain.Fingerprint, error) {
	if err := s.store.SaveSeed(passphrase, t.Seed()); err != nil {
		return "", err
	}
	fp := domain.Fingerprint(crypto.SeedFingerprint(t))
	s.log.Info("seed "+how, "fingerprint", fp)
	return fp, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.SeedService.
var _ domain.SeedService = (*Service)(nil)
