// Package fare decodes the packed price, discount and amenity strings carried
// by left-ticket rows and interline legs.
//
// A fare string is a run of 10-character segments, one per seat class sold on
// the train. A discount string is a run of 5-character segments (class code
// followed by a 4-digit percentage). The amenity string is '#'-separated and
// each position is an independent flag.
package fare
