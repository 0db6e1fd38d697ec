package crypto_test

import (
	"bytes"
	"testing"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secrettree"
	"secrettree/internal/crypto"
	"secrettree/internal/domain"
)

func makeRoot(t *testing.T) *secrettree.Tree {
	t.Helper()
	seed := secrettree.Seed{0x42, 0x17}
	root := secrettree.FromSeed(&seed)
	t.Cleanup(root.Close)
	return root
}

func TestDeriveX25519_AgreesAndIsDeterministic(t *testing.T) {
	root := makeRoot(t)

	aPriv, aPub, err := crypto.DeriveX25519(root.Index(0))
	require.NoError(t, err)
	bPriv, bPub, err := crypto.DeriveX25519(root.Index(1))
	require.NoError(t, err)

	ab, err := crypto.DH(aPriv, bPub)
	require.NoError(t, err)
	ba, err := crypto.DH(bPriv, aPub)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	_, again, err := crypto.DeriveX25519(root.Index(0))
	require.NoError(t, err)
	assert.Equal(t, aPub, again)

	assert.Equal(t, byte(0), aPriv[0]&7, "clamped low bits")
	assert.Equal(t, byte(64), aPriv[31]&192, "clamped high bits")
}

func TestDeriveEd25519_SignVerify(t *testing.T) {
	root := makeRoot(t)
	priv, pub := crypto.DeriveEd25519(root.Child(secrettree.MustName("consensus")))
	_, pubAgain := crypto.DeriveEd25519(root.Child(secrettree.MustName("consensus")))
	_, other := crypto.DeriveEd25519(root.Child(secrettree.MustName("service")))

	assert.Equal(t, pub, pubAgain)
	assert.NotEqual(t, pub, other)

	msg := []byte("hello")
	sig := crypto.SignEd25519(priv, msg)
	assert.True(t, crypto.VerifyEd25519(pub, msg, sig))
	assert.False(t, crypto.VerifyEd25519(other, msg, sig))
}

func TestDeriveMLKEM768_RoundTrip(t *testing.T) {
	root := makeRoot(t)
	pub, priv := crypto.DeriveMLKEM768(root.Index(3))
	pubAgain, _ := crypto.DeriveMLKEM768(root.Index(3))

	a, err := pub.MarshalBinary()
	require.NoError(t, err)
	b, err := pubAgain.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ct := make([]byte, mlkem768.CiphertextSize)
	ss := make([]byte, mlkem768.SharedKeySize)
	pub.EncapsulateTo(ct, ss, nil)

	got := make([]byte, mlkem768.SharedKeySize)
	priv.DecapsulateTo(got, ct)
	assert.Equal(t, ss, got)
}

func TestDeriveMLDSA65_SignVerify(t *testing.T) {
	root := makeRoot(t)
	pub, priv := crypto.DeriveMLDSA65(root.Index(4))

	msg := []byte("transcript")
	sig := make([]byte, mldsa65.SignatureSize)
	require.NoError(t, mldsa65.SignTo(priv, msg, nil, false, sig))
	assert.True(t, mldsa65.Verify(pub, msg, nil, sig))
}

func TestPublicKeyOf_AllKinds(t *testing.T) {
	root := makeRoot(t)
	sizes := map[domain.KeyKind]int{
		domain.KeyEd25519:  32,
		domain.KeyX25519:   32,
		domain.KeyMLKEM768: mlkem768.PublicKeySize,
		domain.KeyMLDSA65:  mldsa65.PublicKeySize,
	}
	for kind, size := range sizes {
		pub, err := crypto.PublicKeyOf(root.Index(9), kind)
		require.NoError(t, err, kind)
		assert.Len(t, pub, size, kind)
	}

	leaf := root.Index(10)
	_, err := crypto.PublicKeyOf(leaf, domain.KeyKind("rsa"))
	require.Error(t, err)
	assert.Panics(t, func() { leaf.Index(0) }, "unsupported kind still consumes the tree")
}

func TestSeedFingerprint(t *testing.T) {
	root := makeRoot(t)
	fp := crypto.SeedFingerprint(root)
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.SeedFingerprint(root))
	assert.NotContains(t, fp, crypto.Hex(root.Seed().Bytes()[:10]))

	other := secrettree.Seed{0x43}
	otherRoot := secrettree.FromSeed(&other)
	defer otherRoot.Close()
	assert.NotEqual(t, fp, crypto.SeedFingerprint(otherRoot))
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint(bytes.Repeat([]byte{1}, 32))
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint(bytes.Repeat([]byte{1}, 32)))
}
