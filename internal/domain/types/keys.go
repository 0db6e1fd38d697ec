package types

import "fmt"

// KeyKind names a keypair algorithm derivable from a tree.
type KeyKind string

const (
	KeyEd25519  KeyKind = "ed25519"
	KeyX25519   KeyKind = "x25519"
	KeyMLKEM768 KeyKind = "mlkem768"
	KeyMLDSA65  KeyKind = "mldsa65"
)

// KeyKinds lists every supported KeyKind.
var KeyKinds = []KeyKind{KeyEd25519, KeyX25519, KeyMLKEM768, KeyMLDSA65}

// ParseKeyKind validates s as a KeyKind.
func ParseKeyKind(s string) (KeyKind, error) {
	for _, k := range KeyKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown key type %q (want one of %v)", s, KeyKinds)
}

// Purpose returns the purpose a path deriving this kind of key is bound to.
func (k KeyKind) Purpose() Purpose { return Purpose(string(k) + " keypair") }

// PublicKey is the public half of a derived keypair.
type PublicKey struct {
	Kind        KeyKind     `json:"kind" yaml:"kind"`
	Path        string      `json:"path" yaml:"path"`
	Bytes       []byte      `json:"public_key" yaml:"public_key"`
	Fingerprint Fingerprint `json:"fingerprint" yaml:"fingerprint"`
}
