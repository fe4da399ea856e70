// Package commands defines the fields CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hello         Smoke-test greeting
//   - create-field  Add a named field record to the local catalog
//   - list-fields   Show the catalog as a table
//   - read-file     Dump a document with numbered lines (PDF-aware)
//   - summarize     Extract fields and reservation slots from a permit
//   - scan          Discover and batch-summarize permit files in a directory
//   - convert       Convert permit tables between CSV and Excel
//   - template      Write the permit-data Excel template
//   - stats         Show workbook statistics
//   - export        Export the field catalog to CSV or Excel
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph
// (reader, summarizer, catalog store) before any subcommand runs, so
// handlers share one app context.
package commands
