// Package record decodes upstream wire records into field maps.
//
// Every record family (station rows, left-ticket rows, interline legs,
// interline itineraries, route stops) is described by a Schema: an ordered
// list of field names plus the key fields a record must carry. The schemas
// are data; a single positional decoder consumes all of them.
//
// Two sources are supported:
//   - delimiter-separated strings (Decode, DecodeBatch), assigned by position
//   - JSON objects (FromObject, FromObjects), restricted to the schema fields
//
// The package does not validate field contents. Content errors surface later
// in the pipeline and are wrapped with ErrDecodeFailed.
package record
