// Package path parses textual derivation paths and walks them over a tree.
//
// # Syntax
//
// Segments are separated by "/":
//
//   - #<n>        indexed child, n a decimal uint64 (e.g. #0)
//   - @<hex>      digest child, 64 hex characters (32 bytes)
//   - ~<label>    digest child of Blake2b-256(label)
//   - anything else is a named child and must be a valid Name
//
// For example "consensus/#0" or "wallets/~alice@example.com/#3". Empty
// segments are rejected; the empty string is the empty path. Names that start
// with one of the prefixes or contain "/" cannot be written as text.
package path
