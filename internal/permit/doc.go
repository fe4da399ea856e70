// Package permit extracts structure from field-use permit documents.
//
// A permit lists athletic fields and the reservation windows granted for
// each. The summarizer pulls those lines out, attributes windows to the
// field heading that precedes them, and wraps the result with word and
// character counts plus a leading excerpt.
package permit
