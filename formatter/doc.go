// Package formatter renders ticket, interline and route stop collections.
//
// This package is organized into:
// - format.go: output format selection, the no-results sentinel, seat status and transfer labels
// - text.go: human-readable text blocks
// - csv.go: CSV tables
// - json.go: structured dumps
//
// Text and CSV output is built manually with strings.Builder and encoding/csv.
// Every renderer returns NoResults for an empty collection.
package formatter
