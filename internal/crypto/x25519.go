package crypto

import (
	"golang.org/x/crypto/curve25519"

	"secrettree"
	"secrettree/internal/util/memzero"
)

// DeriveX25519 derives a Curve25519 key pair from t and consumes t.
// The private key is clamped per RFC 7748.
func DeriveX25519(t *secrettree.Tree) (priv, pub [32]byte, err error) {
	t.Fill(secrettree.Bytes(priv[:]))
	clamp(&priv)
	pb, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		memzero.Zero(priv[:])
		return priv, pub, err
	}
	copy(pub[:], pb)
	return priv, pub, nil
}

// DH computes X25519 Diffie-Hellman.
func DH(priv, pub [32]byte) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv[:], pub[:])
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	memzero.Zero(secret)
	return out, nil
}

func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
