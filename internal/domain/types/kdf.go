package types

// KDFParams selects and tunes the passphrase KDF protecting the root seed.
type KDFParams struct {
	Algorithm string `toml:"algorithm" json:"kdf"`

	ScryptN int `toml:"scrypt_n" json:"scrypt_N,omitempty"`
	ScryptR int `toml:"scrypt_r" json:"scrypt_r,omitempty"`
	ScryptP int `toml:"scrypt_p" json:"scrypt_p,omitempty"`

	Argon2Time    uint32 `toml:"argon2_time" json:"argon2_time,omitempty"`
	Argon2Memory  uint32 `toml:"argon2_memory" json:"argon2_memory,omitempty"`
	Argon2Threads uint8  `toml:"argon2_threads" json:"argon2_threads,omitempty"`
}

// Supported KDFParams.Algorithm values.
const (
	KDFScrypt   = "scrypt"
	KDFArgon2id = "argon2id"
)

// DefaultKDFParams returns scrypt with N=2^15, r=8, p=1 and Argon2id
// settings ready for use if the algorithm is switched.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm:     KDFScrypt,
		ScryptN:       1 << 15,
		ScryptR:       8,
		ScryptP:       1,
		Argon2Time:    1,
		Argon2Memory:  64 * 1024,
		Argon2Threads: 4,
	}
}
