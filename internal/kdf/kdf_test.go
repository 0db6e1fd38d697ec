package kdf_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secrettree/internal/kdf"
)

// libsodium crypto_kdf test vectors.
var testContext = kdf.NewContext("KDF test")

func testKey() *[kdf.KeyLen]byte {
	var key [kdf.KeyLen]byte
	for i := range key {
		key[i] = byte(i)
	}
	return &key
}

func TestDerive_SodiumVectors64(t *testing.T) {
	expected := []string{
		"a0c724404728c8bb95e5433eb6a9716171144d61efb23e74b873fcbeda51d807" +
			"1b5d70aae12066dfc94ce943f145aa176c055040c3dd73b0a15e36254d450614",
		"02507f144fa9bf19010bf7c70b235b4c2663cc00e074f929602a5e2c10a78075" +
			"7d2a3993d06debc378a90efdac196dd841817b977d67b786804f6d3cd585bab5",
		"1944da61ff18dc2028c3578ac85be904931b83860896598f62468f1cb5471c6a" +
			"344c945dbc62c9aaf70feb62472d17775ea5db6ed5494c68b7a9a59761f39614",
		"131c0ca1633ed074986215b264f6e0474f362c52b029effc7b0f75977ee89cc9" +
			"5d85c3db87f7e399197a25411592beeeb7e5128a74646a460ecd6deb4994b71e",
		"a7023a0bf9be245d078aed26bcde0465ff0cc0961196a5482a0ff4ff8b401597" +
			"1e13611f50529cb408f5776b14a90e7c3dd9160a22211db64ff4b5c0b9953680",
		"50f49313f3a05b2e565c13feedb44daa675cafd42c2b2cf9edbce9c949fbfc3f" +
			"175dcb738671509ae2ea66fb85e552394d479afa7fa3affe8791744796b94176",
		"13b58d6d69780089293862cd59a1a8a4ef79bb850e3f3ba41fb22446a7dd1dc4" +
			"da4667d37b33bf1225dcf8173c4c349a5d911c5bd2db9c5905ed70c11e809e3b",
		"15d44b4b44ffa006eeceeb508c98a970aaa573d65905687b9e15854dec6d49c6" +
			"12757e149f78268f727660dedf9abce22a9691feb20a01b0525f4b47a3cf19db",
		"9aebba11c5428ae8225716369e30a48943be39159a899f804e9963ef78822e18" +
			"6c21fe95bb0b85e60ef03a6f58d0b9d06e91f79d0ab998450b8810c73ca935b4",
		"70f9b83e463fb441e7a4c43275125cd5b19d8e2e4a5d179a39f5db10bbce745a" +
			"199104563d308cf8d4c6b27bbb759ded232f5bdb7c367dd632a9677320dfe416",
	}

	key := testKey()
	out := make([]byte, 64)
	for i, want := range expected {
		require.NoError(t, kdf.Derive(out, kdf.NumberIndex(uint64(i)), testContext, key))
		assert.Equal(t, want, hex.EncodeToString(out), "index %d", i)
	}
}

func TestDerive_SodiumVectorsVaryingLength(t *testing.T) {
	expected := []string{
		"a529216624ef9161e4cf117272aafff2",
		"268214dc9477a2e3c1022829f934ab992a5a3d84",
		"94d678717625e011995c7355f2092267dee47bf0722dd380",
		"22c134b9d664e1bdb14dc309a936bf1512b19e4f5175642efb1a0df7",
		"154b291f11196737f8b7f491e4ca11764e0227d34f94295408a869f007aa8618",
		"20790290347b9b0f413a954f40e52e270b3b45417e96c8733161672188701c08dd76cc3d",
		"66efa5dfe3efd4cc8ca25f2d622c97a20a192d7add965f26b002b7eb81aae4203c0e5f07fd945845",
	}

	key := testKey()
	for _, want := range expected {
		size := len(want) / 2
		out := make([]byte, size)
		require.NoError(t, kdf.Derive(out, kdf.NumberIndex(uint64(size)), testContext, key))
		assert.Equal(t, want, hex.EncodeToString(out), "size %d", size)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	key := testKey()
	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, kdf.Derive(a, kdf.NoIndex(), kdf.NewContext("bytes"), key))
	require.NoError(t, kdf.Derive(b, kdf.NoIndex(), kdf.NewContext("bytes"), key))
	assert.Equal(t, a, b)
}

func TestDerive_ContextSeparation(t *testing.T) {
	key := testKey()
	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, kdf.Derive(a, kdf.NoIndex(), kdf.NewContext("bytes"), key))
	require.NoError(t, kdf.Derive(b, kdf.NoIndex(), kdf.NewContext("rng"), key))
	assert.NotEqual(t, a, b)
}

func TestDerive_RejectsBadLengths(t *testing.T) {
	key := testKey()

	err := kdf.Derive(make([]byte, 12), kdf.NoIndex(), testContext, key)
	var fe *kdf.FillError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, kdf.BufferTooSmall, fe.Reason)
	assert.Equal(t, 12, fe.Size)
	assert.Equal(t, 16, fe.Limit)
	assert.ErrorIs(t, err, kdf.ErrBufferTooSmall)
	assert.NotErrorIs(t, err, kdf.ErrBufferTooLarge)

	err = kdf.Derive(make([]byte, 80), kdf.NoIndex(), testContext, key)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, kdf.BufferTooLarge, fe.Reason)
	assert.Equal(t, 80, fe.Size)
	assert.Equal(t, 64, fe.Limit)
	assert.ErrorIs(t, err, kdf.ErrBufferTooLarge)
	assert.Contains(t, err.Error(), "80")
	assert.Contains(t, err.Error(), "64")
}

func TestMustDerive_PanicsWithBounds(t *testing.T) {
	assert.PanicsWithError(t, "buffer too small: 8 bytes, min supported size is 16", func() {
		kdf.MustDerive(make([]byte, 8), kdf.NoIndex(), testContext, testKey())
	})
}

func TestIndex_Salt(t *testing.T) {
	assert.Equal(t, [kdf.SaltLen]byte{}, kdf.NoIndex().Salt())
	assert.Equal(t, [kdf.SaltLen]byte{0x41}, kdf.NumberIndex(0x41).Salt())
	assert.Equal(t,
		[kdf.SaltLen]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		kdf.NumberIndex(0x0102030405060708).Salt(),
	)

	raw := [kdf.SaltLen]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, raw, kdf.BytesIndex(raw).Salt())
}

func TestNewContext_TooLongPanics(t *testing.T) {
	assert.Panics(t, func() { kdf.NewContext("too-long-tag") })
	assert.Equal(t, kdf.Context{'r', 'n', 'g'}, kdf.NewContext("rng"))
}
