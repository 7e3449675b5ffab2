package record

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningMissingKey      = "missing_key"
	WarningUnknownSeatType = "unknown_seat_type"
	WarningNoStationName   = "no_station_name"
)

type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during a decode and logs one
// consolidated line per warning type. A nil aggregator discards everything.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: make(map[string]*warningInfo)}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w == nil {
		return
	}
	info := w.warnings[warningType]
	if info == nil {
		info = &warningInfo{examples: make([]string, 0, 3)}
		w.warnings[warningType] = info
	}
	info.count++
	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the occurrences recorded for a warning type.
func (w *WarningAggregator) Count(warningType string) int {
	if w == nil || w.warnings[warningType] == nil {
		return 0
	}
	return w.warnings[warningType].count
}

// LogAll outputs all collected warnings for the named query.
func (w *WarningAggregator) LogAll(queryName string) {
	if w == nil || len(w.warnings) == 0 {
		return
	}
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		log.Printf("%s", formatWarningMessage(t, queryName, w.warnings[t]))
	}
}

func formatWarningMessage(warningType, queryName string, info *warningInfo) string {
	var description, action string
	switch warningType {
	case WarningMissingKey:
		description = "records without a key field"
		action = "Dropping the records"
	case WarningUnknownSeatType:
		description = "fare segments with an unknown seat class"
		action = "Classifying them as other"
	case WarningNoStationName:
		description = "telecodes missing from the upstream station map"
		action = "Rendering the telecode only"
	default:
		description = "unknown issue"
		action = "Continuing"
	}
	return fmt.Sprintf("Query %s has %s (%d occurrences). %s. Examples: %s",
		queryName, description, info.count, action, strings.Join(info.examples, ", "))
}
