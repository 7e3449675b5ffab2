package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/rail-ticket-query/service"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrBadArguments = errors.New("malformed tool arguments")
)

// internalFailure is returned when a tool panics.
const internalFailure = service.ErrorPrefix + "internal failure. "

// ToolInfo describes a tool to callers.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type tool struct {
	ToolInfo
	call func(ctx context.Context, args []byte) (string, error)
}

// newTool binds an operation taking a request struct. Arguments are decoded
// over the defaults returned by newReq.
func newTool[R any](name, desc string, newReq func() R, run func(context.Context, R) string) tool {
	return tool{
		ToolInfo: ToolInfo{Name: name, Description: desc},
		call: func(ctx context.Context, args []byte) (string, error) {
			req := newReq()
			if len(bytes.TrimSpace(args)) > 0 {
				dec := json.NewDecoder(bytes.NewReader(args))
				dec.DisallowUnknownFields()
				if err := dec.Decode(&req); err != nil {
					return "", fmt.Errorf("%w: %v", ErrBadArguments, err)
				}
			}
			return run(ctx, req), nil
		},
	}
}

// Registry maps tool names to service operations.
type Registry struct {
	svc   *service.Service
	tools map[string]tool
	order []string
}

// NewRegistry registers every query operation of svc.
func NewRegistry(svc *service.Service) *Registry {
	r := &Registry{svc: svc, tools: map[string]tool{}}
	r.add(tool{
		ToolInfo: ToolInfo{Name: service.ToolCurrentDate, Description: "Current date in the service time zone (yyyy-MM-dd)."},
		call: func(context.Context, []byte) (string, error) {
			return svc.CurrentDate(), nil
		},
	})
	r.add(newTool(service.ToolStationsInCity,
		"All stations of a city with their telecodes.",
		func() service.CityRequest { return service.CityRequest{} },
		svc.StationsInCity))
	r.add(newTool(service.ToolStationCodesOfCities,
		"The station named after each city; cities are separated by |.",
		func() service.CitiesRequest { return service.CitiesRequest{} },
		svc.StationCodesOfCities))
	r.add(newTool(service.ToolStationCodesByNames,
		"Telecodes of stations by name; names are separated by |.",
		func() service.NamesRequest { return service.NamesRequest{} },
		svc.StationCodesByNames))
	r.add(newTool(service.ToolStationByTelecode,
		"Full station record for a telecode.",
		func() service.TelecodeRequest { return service.TelecodeRequest{} },
		svc.StationByTelecode))
	r.add(newTool(service.ToolTickets,
		"Direct trains with fares and remaining seats between two stations.",
		service.NewTicketsRequest,
		svc.Tickets))
	r.add(newTool(service.ToolInterlineTickets,
		"Two-leg transfer itineraries between two stations.",
		func() service.InterlineRequest { return service.NewInterlineRequest(svc.DefaultInterlineLimit()) },
		svc.Interlines))
	r.add(newTool(service.ToolTrainRouteStations,
		"Stop sequence of a train on a departure date.",
		service.NewRouteRequest,
		svc.RouteStations))
	return r
}

func (r *Registry) add(t tool) {
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// Tools lists the registered tools in registration order.
func (r *Registry) Tools() []ToolInfo {
	out := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].ToolInfo)
	}
	return out
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	return slices.Contains(r.order, name)
}

// Stations renders the all-stations resource.
func (r *Registry) Stations() string {
	return r.svc.AllStations()
}

// Call runs the named tool. Only an unknown name or undecodable arguments
// produce an error; operation failures are part of the returned string.
func (r *Registry) Call(ctx context.Context, name string, args []byte) (out string, err error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	callID := uuid.New().String()
	start := time.Now()
	log.Printf("tool call %s: %s %s", callID, name, args)
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("tool call %s: panic: %v", callID, rec)
			out, err = internalFailure, nil
		}
		log.Printf("tool call %s: done in %s (%d bytes)", callID, time.Since(start), len(out))
	}()
	return t.call(ctx, args)
}
