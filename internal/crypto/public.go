package crypto

import (
	"fmt"

	"secrettree"
	"secrettree/internal/domain"
	"secrettree/internal/util/memzero"
)

// PublicKeyOf derives the key pair of the given kind from t, consumes t and
// returns only the encoded public key. The private half is wiped where the
// key type allows it.
func PublicKeyOf(t *secrettree.Tree, kind domain.KeyKind) ([]byte, error) {
	switch kind {
	case domain.KeyEd25519:
		priv, pub := DeriveEd25519(t)
		memzero.Zero(priv)
		return pub, nil
	case domain.KeyX25519:
		priv, pub, err := DeriveX25519(t)
		memzero.Zero(priv[:])
		if err != nil {
			return nil, err
		}
		return pub[:], nil
	case domain.KeyMLKEM768:
		pub, _ := DeriveMLKEM768(t)
		return pub.MarshalBinary()
	case domain.KeyMLDSA65:
		pub, _ := DeriveMLDSA65(t)
		return pub.MarshalBinary()
	default:
		t.Close()
		return nil, fmt.Errorf("unsupported key type %q", kind)
	}
}
