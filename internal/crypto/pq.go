package crypto

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"secrettree"
	"secrettree/internal/util/memzero"
)

// DeriveMLKEM768 derives an ML-KEM-768 key pair from t and consumes t.
// The 64-byte key seed is the largest single Fill a tree allows.
func DeriveMLKEM768(t *secrettree.Tree) (*mlkem768.PublicKey, *mlkem768.PrivateKey) {
	var seed [mlkem768.KeySeedSize]byte
	defer memzero.Zero(seed[:])
	t.Fill(secrettree.Bytes(seed[:]))
	return mlkem768.NewKeyFromSeed(seed[:])
}

// DeriveMLDSA65 derives an ML-DSA-65 signing key pair from t and consumes t.
func DeriveMLDSA65(t *secrettree.Tree) (*mldsa65.PublicKey, *mldsa65.PrivateKey) {
	var seed [mldsa65.SeedSize]byte
	defer memzero.Zero(seed[:])
	t.Fill(secrettree.Bytes(seed[:]))
	return mldsa65.NewKeyFromSeed(&seed)
}
