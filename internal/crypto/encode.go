package crypto

import (
	"encoding/base64"
	"encoding/hex"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Hex returns lowercase hex encoding.
func Hex(b []byte) string { return hex.EncodeToString(b) }
