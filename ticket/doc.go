// Package ticket assembles decoded upstream records into the user-facing
// ticket, interline itinerary and route stop entities.
//
// # Dates and durations
//
// Departure is built from the 8-digit start_train_date plus the HH:MM
// start_time. Arrival is departure plus the elapsed lishi, computed with
// time.Time arithmetic so an overnight trip rolls into the next day, month or
// year. A malformed clock or duration fails the whole decode with
// record.ErrDecodeFailed instead of producing a wrong date.
//
// # Interline itineraries
//
// Each itinerary embeds exactly two legs. Legs are assembled with the same
// algorithm as direct tickets, except that station names come from the leg
// itself. The itinerary's human-language elapsed time ("2小时5分钟", "45分钟")
// is normalized to HH:MM.
package ticket
