package service

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/rail-ticket-query/kyfw"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

// Error kinds.
var (
	ErrStationNotFound       = errors.New("station not found")
	ErrDateInPast            = errors.New("date is earlier than today")
	ErrUpstreamRequestFailed = kyfw.ErrRequestFailed
	ErrUpstreamAuthFailed    = kyfw.ErrAuthFailed
	ErrDecodeFailed          = record.ErrDecodeFailed
	ErrPaginationExhausted   = errors.New("pagination exhausted before the requested count")
	ErrInvalidArgument       = errors.New("invalid argument")
)

// ErrorPrefix starts every error result.
const ErrorPrefix = "Error: "

// QueryError is an argument problem reported to the caller verbatim.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// Unwrap classifies every QueryError as ErrInvalidArgument.
func (e *QueryError) Unwrap() error { return ErrInvalidArgument }

// Tool names of the operations, also used in logs.
const (
	ToolCurrentDate          = "get-current-date"
	ToolStationsInCity       = "get-stations-code-in-city"
	ToolStationCodesOfCities = "get-station-code-of-citys"
	ToolStationCodesByNames  = "get-station-code-by-names"
	ToolStationByTelecode    = "get-station-by-telecode"
	ToolTickets              = "get-tickets"
	ToolInterlineTickets     = "get-interline-tickets"
	ToolTrainRouteStations   = "get-train-route-stations"
)

var upstreamFailureMsg = map[string]string{
	ToolTickets:            "get tickets data failed. ",
	ToolInterlineTickets:   "request interline tickets data failed. ",
	ToolTrainRouteStations: "get train route stations failed. ",
}

// errorResult converts a failure into the string returned by operation op.
func errorResult(op string, err error) string {
	var qe *QueryError
	switch {
	case errors.As(err, &qe):
		return ErrorPrefix + qe.Msg
	case errors.Is(err, ErrDateInPast):
		return ErrorPrefix + "The date cannot be earlier than today."
	case errors.Is(err, ErrStationNotFound):
		return ErrorPrefix + "Station not found. "
	case errors.Is(err, ErrUpstreamAuthFailed):
		return ErrorPrefix + "get cookie failed. Check your network."
	case errors.Is(err, ErrUpstreamRequestFailed):
		msg, ok := upstreamFailureMsg[op]
		if !ok {
			msg = "upstream request failed. "
		}
		return ErrorPrefix + msg
	case errors.Is(err, ErrDecodeFailed):
		return ErrorPrefix + "parse tickets info failed. " + err.Error()
	default:
		return fmt.Sprintf("%s%s failed: %v", ErrorPrefix, op, err)
	}
}
