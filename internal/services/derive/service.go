package derive

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"

	"secrettree"
	"secrettree/internal/crypto"
	"secrettree/internal/domain"
	"secrettree/internal/kdf"
	"secrettree/internal/protocol/path"
	"secrettree/internal/util/logger"
	"secrettree/internal/util/memzero"
)

var (
	// ErrNoPurpose is returned when a derivation does not state what it is for.
	ErrNoPurpose = errors.New("a purpose is required")
	// ErrReservedPath is returned for paths used internally, such as the seed fingerprint.
	ErrReservedPath = errors.New("path is reserved")
	// ErrBadPeerKey is returned by Agree for a peer key that is not a usable X25519 point.
	ErrBadPeerKey = errors.New("invalid x25519 peer public key")
	// ErrBadLength is returned by Stream for a byte count outside 1..MaxRNGBytes.
	ErrBadLength = errors.Errorf("byte count must be between 1 and %d", secrettree.MaxRNGBytes)
)

var reserved = secrettree.MustName("fingerprint")

// Service derives material at paths below the root opened by seeds.
type Service struct {
	seeds    domain.SeedService
	purposes domain.PurposeRegistry
	log      *logger.Logger
}

// New returns a derive service.
func New(seeds domain.SeedService, purposes domain.PurposeRegistry, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{seeds: seeds, purposes: purposes, log: log.Named("derive")}
}

// Secret fills size bytes (16..64) from the tree at path.
func (s *Service) Secret(
	passphrase, text string,
	purpose domain.Purpose,
	size int,
) ([]byte, error) {
	if err := kdf.CheckLen(size); err != nil {
		return nil, err
	}
	t, p, err := s.open(passphrase, text, purpose)
	if err != nil {
		return nil, err
	}
	out := make([]byte, size)
	if err := t.TryFill(secrettree.Bytes(out)); err != nil {
		return nil, err
	}
	s.log.Debug("derived secret", "path", p.String(), "purpose", purpose, "size", size)
	return out, nil
}

// Stream writes n bytes of the tree's RNG at path to w.
func (s *Service) Stream(
	passphrase, text string,
	purpose domain.Purpose,
	w io.Writer,
	n int64,
) error {
	if n <= 0 || n > secrettree.MaxRNGBytes {
		return ErrBadLength
	}
	t, p, err := s.open(passphrase, text, purpose)
	if err != nil {
		return err
	}
	written, err := io.CopyN(w, t.RNG(), n)
	if err != nil {
		return errors.Wrapf(err, "stream after %d bytes", written)
	}
	s.log.Debug("streamed rng", "path", p.String(), "purpose", purpose, "bytes", n)
	return nil
}

// PublicKey derives the keypair of the given kind at path and returns its
// public half. The path is bound to the purpose "<kind> keypair".
func (s *Service) PublicKey(
	passphrase, text string,
	kind domain.KeyKind,
) (domain.PublicKey, error) {
	if _, err := domain.ParseKeyKind(string(kind)); err != nil {
		return domain.PublicKey{}, err
	}
	t, p, err := s.open(passphrase, text, kind.Purpose())
	if err != nil {
		return domain.PublicKey{}, err
	}
	pub, err := crypto.PublicKeyOf(t, kind)
	if err != nil {
		return domain.PublicKey{}, err
	}
	pk := publicKey(kind, p, pub)
	s.log.Debug("derived keypair", "path", p.String(), "kind", kind, "fingerprint", pk.Fingerprint)
	return pk, nil
}

// Sign derives the Ed25519 keypair at path and signs msg. The path is bound
// to the "ed25519 keypair" purpose, like PublicKey.
func (s *Service) Sign(passphrase, text string, msg []byte) (domain.PublicKey, []byte, error) {
	t, p, err := s.open(passphrase, text, domain.KeyEd25519.Purpose())
	if err != nil {
		return domain.PublicKey{}, nil, err
	}
	priv, pub := crypto.DeriveEd25519(t)
	defer memzero.Zero(priv)

	sig := crypto.SignEd25519(priv, msg)
	pk := publicKey(domain.KeyEd25519, p, pub)
	s.log.Debug("signed message", "path", p.String(), "fingerprint", pk.Fingerprint, "size", len(msg))
	return pk, sig, nil
}

// Agree derives the X25519 keypair at path and returns the Diffie-Hellman
// shared secret with peer. The caller owns and should wipe the secret.
func (s *Service) Agree(passphrase, text string, peer []byte) (domain.PublicKey, []byte, error) {
	if len(peer) != curve25519.PointSize {
		return domain.PublicKey{}, nil, errors.Wrapf(ErrBadPeerKey, "got %d bytes", len(peer))
	}
	t, p, err := s.open(passphrase, text, domain.KeyX25519.Purpose())
	if err != nil {
		return domain.PublicKey{}, nil, err
	}
	priv, pub, err := crypto.DeriveX25519(t)
	defer memzero.Array32(&priv)
	if err != nil {
		return domain.PublicKey{}, nil, err
	}

	shared, err := crypto.DH(priv, [curve25519.PointSize]byte(peer))
	if err != nil {
		return domain.PublicKey{}, nil, errors.Wrap(ErrBadPeerKey, err.Error())
	}
	defer memzero.Array32(&shared)

	pk := publicKey(domain.KeyX25519, p, pub[:])
	s.log.Debug("key agreement", "path", p.String(), "fingerprint", pk.Fingerprint,
		"peer", crypto.Fingerprint(peer))
	return pk, append([]byte(nil), shared[:]...), nil
}

func publicKey(kind domain.KeyKind, p path.Path, pub []byte) domain.PublicKey {
	return domain.PublicKey{
		Kind:        kind,
		Path:        p.String(),
		Bytes:       pub,
		Fingerprint: domain.Fingerprint(crypto.Fingerprint(pub)),
	}
}

// Purposes lists every recorded path binding.
func (s *Service) Purposes() ([]domain.PurposeBinding, error) {
	return s.purposes.List()
}

// open validates the request, binds the purpose and walks to the target
// tree, which the caller consumes.
func (s *Service) open(
	passphrase, text string,
	purpose domain.Purpose,
) (*secrettree.Tree, path.Path, error) {
	if purpose == "" {
		return nil, nil, ErrNoPurpose
	}
	p, err := path.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	if len(p) == 0 || (p[0].Kind == path.KindName && p[0].Name == reserved) {
		return nil, nil, errors.Wrapf(ErrReservedPath, "%q", text)
	}

	root, err := s.seeds.Open(passphrase)
	if err != nil {
		return nil, nil, err
	}
	defer root.Close()

	if _, err := s.purposes.Bind(p.Key(), purpose); err != nil {
		s.log.Warn("purpose rejected", "path", p.String(), "purpose", purpose, "err", err)
		return nil, nil, err
	}
	return path.Walk(root, p), p, nil
}

// Compile-time assertion that Service implements domain.DeriveService.
var _ domain.DeriveService = (*Service)(nil)
