// Package cli implements festctl, a terminal client for the registration
// workflow. It parses subcommand flags, wires a session to the API and a
// draft store, and maps workflow errors to exit codes.
package cli
