// Package commands defines the wordcalc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - eval      Evaluate an expression and print the result and its words
//   - words     Print the English words for a number
//   - history   List past calculations; "history clear" drops them
//   - repl      Interactive calculator loop
//
// # Implementation
//
// The root command builds a dependency graph (history store, services,
// optional speaker) before any subcommand runs, so handlers share one app
// context and one persisted history file under the configured home.
package commands
