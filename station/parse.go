package station

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

// ErrUnexpectedScript is returned when the station script is not a single
// quoted-literal assignment.
var ErrUnexpectedScript = errors.New("unexpected station_names script")

var stationNamesRe = regexp.MustCompile(`^\s*var\s+station_names\s*=\s*'([^'\\]*)'\s*;?\s*$`)

// ParseStationNames extracts the literal from the station_names script.
func ParseStationNames(script string) (string, error) {
	m := stationNamesRe.FindStringSubmatch(script)
	if m == nil {
		return "", fmt.Errorf("%w: %w", record.ErrDecodeFailed, ErrUnexpectedScript)
	}
	return m[1], nil
}

// ParseStationsData reads the flat '|' list in groups of ten fields. A trailing
// partial group is ignored and groups without a telecode are dropped.
func ParseStationsData(raw string, w *record.WarningAggregator) []StationData {
	recs := record.DecodeGroups(raw, "|", record.StationSchema, w)
	out := make([]StationData, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out
}
