package query

import (
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/rail-ticket-query/fare"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

// Item is the view of a ticket or itinerary the engine needs.
type Item interface {
	TrainCode() string
	// Amenities of the train, or of the first leg for an itinerary.
	Amenities() []string
	DepartureDate() string
	DepartureTime() string
	ArrivalDate() string
	ArrivalTime() string
	Duration() string
}

// Sort comparator names.
const (
	SortStartTime  = "startTime"
	SortArriveTime = "arriveTime"
	SortDuration   = "duration"
)

// FlagAlphabet lists every valid category flag.
const FlagAlphabet = "GDZTKOFS"

// Options control one Apply run.
type Options struct {
	Flags    string
	Earliest int
	Latest   int
	SortFlag string
	Reverse  bool
	// Limit of 0 means unlimited.
	Limit int
}

// DefaultOptions admits every item.
func DefaultOptions() Options {
	return Options{Latest: 24}
}

// Apply runs category filter, time window, sort and limit over items. The
// input slice is not modified.
func Apply[T Item](items []T, opts Options) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAnyFlag(item, opts.Flags) && inWindow(item, opts.Earliest, opts.Latest) {
			out = append(out, item)
		}
	}

	if cmp, ok := comparators[opts.SortFlag]; ok {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(a, b) })
		if opts.Reverse {
			slices.Reverse(out)
		}
	}

	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

var flagPredicates = map[rune]func(Item) bool{
	'G': func(i Item) bool { return hasPrefix(i, "G") || hasPrefix(i, "C") },
	'D': func(i Item) bool { return hasPrefix(i, "D") },
	'Z': func(i Item) bool { return hasPrefix(i, "Z") },
	'T': func(i Item) bool { return hasPrefix(i, "T") },
	'K': func(i Item) bool { return hasPrefix(i, "K") },
	'O': func(i Item) bool {
		return !hasPrefix(i, "G") && !hasPrefix(i, "C") && !hasPrefix(i, "D") &&
			!hasPrefix(i, "Z") && !hasPrefix(i, "T") && !hasPrefix(i, "K")
	},
	'F': func(i Item) bool { return slices.Contains(i.Amenities(), fare.TagFuxing) },
	'S': func(i Item) bool { return slices.Contains(i.Amenities(), fare.TagSmartEMU) },
}

func hasPrefix(i Item, p string) bool { return strings.HasPrefix(i.TrainCode(), p) }

func matchesAnyFlag(item Item, flags string) bool {
	if flags == "" {
		return true
	}
	for _, f := range flags {
		if pred, ok := flagPredicates[f]; ok && pred(item) {
			return true
		}
	}
	return false
}

func inWindow(item Item, earliest, latest int) bool {
	hour := clockOf(item.DepartureTime()).Hour
	return hour >= earliest && hour < latest
}

// clockOf parses an already validated clock. Items come from the ticket
// assembler, so a parse failure leaves the zero clock.
func clockOf(s string) ticket.Clock {
	c, err := ticket.ParseLishi(s)
	if err != nil {
		return ticket.Clock{}
	}
	return c
}

var comparators = map[string]func(a, b Item) int{
	SortStartTime: func(a, b Item) int {
		return compareInstant(a.DepartureDate(), a.DepartureTime(), b.DepartureDate(), b.DepartureTime())
	},
	SortArriveTime: func(a, b Item) int {
		return compareInstant(a.ArrivalDate(), a.ArrivalTime(), b.ArrivalDate(), b.ArrivalTime())
	},
	SortDuration: func(a, b Item) int {
		return compareClock(clockOf(a.Duration()), clockOf(b.Duration()))
	},
}

// compareInstant orders by calendar date, then hour, then minute. Dates are
// yyyy-MM-dd so they compare lexically.
func compareInstant(dateA, timeA, dateB, timeB string) int {
	if c := strings.Compare(dateA, dateB); c != 0 {
		return c
	}
	return compareClock(clockOf(timeA), clockOf(timeB))
}

func compareClock(a, b ticket.Clock) int {
	if a.Hour != b.Hour {
		return a.Hour - b.Hour
	}
	return a.Minute - b.Minute
}

// ValidSortFlag reports whether name selects a comparator.
func ValidSortFlag(name string) bool {
	_, ok := comparators[name]
	return ok
}
