// Package app wires application dependencies for the CLI.
//
// It loads CLI defaults from an optional YAML config file and builds the
// keyring service, exposing both via the App struct for commands to use.
package app
