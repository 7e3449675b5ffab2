package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/rail-ticket-query/formatter"
	"github.com/theoremus-urban-solutions/rail-ticket-query/query"
)

// CityRequest is the argument of get-stations-code-in-city.
type CityRequest struct {
	City string `json:"city" validate:"required"`
}

// CitiesRequest is the argument of get-station-code-of-citys.
type CitiesRequest struct {
	Citys string `json:"citys" validate:"required"`
}

// NamesRequest is the argument of get-station-code-by-names.
type NamesRequest struct {
	StationNames string `json:"stationNames" validate:"required"`
}

// TelecodeRequest is the argument of get-station-by-telecode.
type TelecodeRequest struct {
	StationTelecode string `json:"stationTelecode" validate:"required"`
}

// TicketsRequest is the argument of get-tickets.
type TicketsRequest struct {
	Date              string `json:"date" validate:"len=10"`
	FromStation       string `json:"fromStation" validate:"required"`
	ToStation         string `json:"toStation" validate:"required"`
	TrainFilterFlags  string `json:"trainFilterFlags" validate:"max=8,trainflags"`
	EarliestStartTime int    `json:"earliestStartTime" validate:"min=0,max=24"`
	LatestStartTime   int    `json:"latestStartTime" validate:"min=0,max=24"`
	SortFlag          string `json:"sortFlag"`
	SortReverse       bool   `json:"sortReverse"`
	LimitedNum        int    `json:"limitedNum" validate:"min=0"`
	Format            string `json:"format" validate:"outputformat"`
}

// NewTicketsRequest returns a request carrying the argument defaults.
func NewTicketsRequest() TicketsRequest {
	return TicketsRequest{LatestStartTime: 24, Format: string(formatter.FormatText)}
}

func (r TicketsRequest) options() query.Options {
	return query.Options{
		Flags:    r.TrainFilterFlags,
		Earliest: r.EarliestStartTime,
		Latest:   r.LatestStartTime,
		SortFlag: r.SortFlag,
		Reverse:  r.SortReverse,
		Limit:    r.LimitedNum,
	}
}

// InterlineRequest is the argument of get-interline-tickets.
type InterlineRequest struct {
	Date              string `json:"date" validate:"len=10"`
	FromStation       string `json:"fromStation" validate:"required"`
	ToStation         string `json:"toStation" validate:"required"`
	MiddleStation     string `json:"middleStation"`
	ShowWZ            bool   `json:"showWZ"`
	TrainFilterFlags  string `json:"trainFilterFlags" validate:"max=8,trainflags"`
	EarliestStartTime int    `json:"earliestStartTime" validate:"min=0,max=24"`
	LatestStartTime   int    `json:"latestStartTime" validate:"min=0,max=24"`
	SortFlag          string `json:"sortFlag"`
	SortReverse       bool   `json:"sortReverse"`
	LimitedNum        int    `json:"limitedNum" validate:"min=1"`
	Format            string `json:"format" validate:"outputformat"`
}

// NewInterlineRequest returns a request carrying the argument defaults.
func NewInterlineRequest(defaultLimit int) InterlineRequest {
	return InterlineRequest{LatestStartTime: 24, LimitedNum: defaultLimit, Format: string(formatter.FormatText)}
}

func (r InterlineRequest) options() query.Options {
	return query.Options{
		Flags:    r.TrainFilterFlags,
		Earliest: r.EarliestStartTime,
		Latest:   r.LatestStartTime,
		SortFlag: r.SortFlag,
		Reverse:  r.SortReverse,
		Limit:    r.LimitedNum,
	}
}

// RouteRequest is the argument of get-train-route-stations.
type RouteRequest struct {
	TrainCode  string `json:"trainCode" validate:"required"`
	DepartDate string `json:"departDate" validate:"len=10"`
	Format     string `json:"format" validate:"outputformat"`
}

// NewRouteRequest returns a request carrying the argument defaults.
func NewRouteRequest() RouteRequest {
	return RouteRequest{Format: string(formatter.FormatText)}
}

var trainFlagsRe = regexp.MustCompile(`^[` + query.FlagAlphabet + `]*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON argument names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("trainflags", func(fl validator.FieldLevel) bool {
		return trainFlagsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("outputformat", func(fl validator.FieldLevel) bool {
		_, err := formatter.ParseFormat(fl.Field().String())
		return err == nil
	})
	return v
}

// validate checks req and converts validator failures into a QueryError.
func (s *Service) validate(req any) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &QueryError{Msg: err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s fails %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s fails %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	}
	return &QueryError{Msg: "invalid argument: " + strings.Join(msgs, "; ")}
}
