// Package seed manages the lifecycle of the root seed: generation, restore
// from hex, loading, fingerprinting and explicit export.
//
// It enforces passphrase policy and persists the seed via the domain.SeedStore.
package seed
