package crypto

import (
	"crypto/ed25519"

	"secrettree"
	"secrettree/internal/util/memzero"
)

// DeriveEd25519 derives an Ed25519 signing key pair from t and consumes t.
func DeriveEd25519(t *secrettree.Tree) (ed25519.PrivateKey, ed25519.PublicKey) {
	var seed [ed25519.SeedSize]byte
	defer memzero.Zero(seed[:])
	t.Fill(secrettree.Bytes(seed[:]))

	priv := ed25519.NewKeyFromSeed(seed[:])
	return priv, priv.Public().(ed25519.PublicKey)
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub ed25519.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(pub, msg, sig)
}
