// Package commands defines the edkeyring CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate     Generate a random seed and its key pair
//   - derive       Derive a child key pair from a seed and path
//   - sign         Sign a message with a derived key
//   - verify       Verify a signature against a public key
//   - fingerprint  Print the fingerprint of a public key
//
// # Implementation
//
// The CLI is stateless: key material always arrives as hex flags or
// arguments and is never written to disk. The root command loads defaults
// from an optional YAML config file before any subcommand runs, so
// handlers share one app context.
package commands
