// Package app wires application dependencies for the CLI.
//
// It builds the concrete reader, summarizer, and catalog store from Config,
// exposing them via the App struct for commands to use.
package app
