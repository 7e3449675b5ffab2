package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

// ResponseBuilder dispatches a collection to the renderer for one format.
type ResponseBuilder struct {
	format Format
}

// NewResponseBuilder creates a builder for format f.
func NewResponseBuilder(f Format) *ResponseBuilder {
	return &ResponseBuilder{format: f}
}

// BuildJSON serializes any collection verbatim.
func (rb *ResponseBuilder) BuildJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// Tickets renders direct tickets.
func (rb *ResponseBuilder) Tickets(items []ticket.TicketInfo) string {
	switch {
	case len(items) == 0:
		return NoResults
	case rb.format == FormatCSV:
		return TicketsCSV(items)
	case rb.format == FormatJSON:
		return rb.BuildJSON(items)
	default:
		return TicketsText(items)
	}
}

// Interlines renders transfer itineraries.
func (rb *ResponseBuilder) Interlines(items []ticket.InterlineInfo) string {
	switch {
	case len(items) == 0:
		return NoResults
	case rb.format == FormatCSV:
		return InterlinesCSV(items)
	case rb.format == FormatJSON:
		return rb.BuildJSON(items)
	default:
		return InterlinesText(items)
	}
}

// RouteStations renders a stop sequence.
func (rb *ResponseBuilder) RouteStations(stops []ticket.RouteStationInfo) string {
	switch {
	case len(stops) == 0:
		return NoResults
	case rb.format == FormatCSV:
		return RouteStationsCSV(stops)
	case rb.format == FormatJSON:
		return rb.BuildJSON(stops)
	default:
		return RouteStationsText(stops)
	}
}
