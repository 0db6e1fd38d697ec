// Package derive turns textual paths below the root seed into raw secrets,
// RNG streams and public keys.
//
// Every path is bound to a purpose in the domain.PurposeRegistry the first
// time it is used, and later uses must state the same purpose.
package derive
