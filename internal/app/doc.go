// Package app wires application dependencies for the CLI.
//
// It reads Config from the home directory, builds the logger, the seed file
// store, the purpose registry and the high-level services, and exposes them
// via the Wire and App structs for commands to use.
package app
