// Package ingest parses uploaded review CSV files into domain datasets.
//
// Expected columns: Score and Text (required), ProfileName, Summary and Time
// (optional). Time is UNIX seconds and becomes a UTC timestamp. Header
// matching is case-insensitive; row order is preserved.
package ingest
