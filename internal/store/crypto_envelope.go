package store

import (
	"crypto/rand"
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"secrettree/internal/domain"
	"secrettree/internal/util/memzero"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	envelopeFormatVersion = 1

	saltBytes = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the ciphertext has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted seed file")
	// ErrUnsupportedKDF is returned for an unknown KDF algorithm in config or on disk.
	ErrUnsupportedKDF = errors.New("unsupported kdf")
	// ErrKDFCost is returned for KDF parameters outside the accepted cost limits.
	ErrKDFCost = errors.New("kdf parameters out of range")
)

// Upper cost limits, checked before any key stretching so a modified seed
// file cannot demand unbounded memory or time.
const (
	maxScryptN      = 1 << 20
	maxScryptR      = 32
	maxScryptP      = 16
	maxArgon2Time   = 16
	maxArgon2Memory = 4 << 20 // KiB, i.e. 4 GiB
	maxArgon2Thread = 64
)

// checkCost validates params against the limits above.
func checkCost(params domain.KDFParams) error {
	switch params.Algorithm {
	case domain.KDFScrypt:
		n := params.ScryptN
		if n < 2 || n > maxScryptN || n&(n-1) != 0 {
			return errors.Wrapf(ErrKDFCost, "scrypt N=%d (power of two up to %d)", n, maxScryptN)
		}
		if params.ScryptR < 1 || params.ScryptR > maxScryptR || params.ScryptP < 1 || params.ScryptP > maxScryptP {
			return errors.Wrapf(ErrKDFCost, "scrypt r=%d p=%d (max r=%d p=%d)",
				params.ScryptR, params.ScryptP, maxScryptR, maxScryptP)
		}
	case domain.KDFArgon2id:
		if params.Argon2Time < 1 || params.Argon2Time > maxArgon2Time {
			return errors.Wrapf(ErrKDFCost, "argon2 time=%d (1..%d)", params.Argon2Time, maxArgon2Time)
		}
		if params.Argon2Memory < 8 || params.Argon2Memory > maxArgon2Memory {
			return errors.Wrapf(ErrKDFCost, "argon2 memory=%d KiB (8..%d)", params.Argon2Memory, maxArgon2Memory)
		}
		if params.Argon2Threads < 1 || params.Argon2Threads > maxArgon2Thread {
			return errors.Wrapf(ErrKDFCost, "argon2 threads=%d (1..%d)", params.Argon2Threads, maxArgon2Thread)
		}
	}
	return nil
}

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V int `json:"v"`
	domain.KDFParams
	Salt   []byte `json:"salt"`
	Cipher []byte `json:"cipher"`
}

// deriveKEK stretches passphrase into a ChaCha20-Poly1305 key.
func deriveKEK(passphrase string, salt []byte, params domain.KDFParams) ([]byte, error) {
	if err := checkCost(params); err != nil {
		return nil, err
	}
	switch params.Algorithm {
	case domain.KDFScrypt:
		key, err := scrypt.Key([]byte(passphrase), salt, params.ScryptN, params.ScryptR, params.ScryptP, chacha20poly1305.KeySize)
		return key, errors.Wrap(err, "scrypt")
	case domain.KDFArgon2id:
		return argon2.IDKey([]byte(passphrase), salt, params.Argon2Time, params.Argon2Memory, params.Argon2Threads, chacha20poly1305.KeySize), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedKDF, "%q", params.Algorithm)
	}
}

// encrypt derives a key from passphrase and seals raw into a JSON blob.
func encrypt(passphrase string, raw []byte, params domain.KDFParams) ([]byte, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, errors.Wrap(err, "cannot generate salt")
	}
	key, err := deriveKEK(passphrase, salt[:], params)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aead")
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:         envelopeFormatVersion,
		KDFParams: params,
		Salt:      salt[:],
		Cipher:    ct,
	})
}

// decrypt opens the JSON blob using a key derived from passphrase.
// The KDF parameters recorded in the blob win over the current config.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, errors.Wrap(err, "cannot parse seed file")
	}
	if bl.V > envelopeFormatVersion {
		return nil, errors.Errorf("unsupported seed file version %d", bl.V)
	}
	if len(bl.Salt) != saltBytes {
		return nil, errors.Errorf("invalid salt size %d", len(bl.Salt))
	}

	key, err := deriveKEK(passphrase, bl.Salt, bl.KDFParams)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aead")
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
