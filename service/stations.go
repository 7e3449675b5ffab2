package service

import (
	"context"
	"encoding/json"
	"strings"
)

const (
	cityNotFound    = "未检索到城市。"
	stationNotFound = "未检索到车站。"
)

type lookupMiss struct {
	Error string `json:"error"`
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// StationsInCity lists every station of a city.
func (s *Service) StationsInCity(_ context.Context, req CityRequest) string {
	out, err := s.stationsInCity(req)
	return result(ToolStationsInCity, out, err)
}

func (s *Service) stationsInCity(req CityRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	refs, ok := s.catalog.CityStations(req.City)
	if !ok {
		return "", &QueryError{Msg: "City not found. "}
	}
	return toJSON(refs)
}

// StationCodesOfCities resolves each "|"-separated city to the station named
// after it.
func (s *Service) StationCodesOfCities(_ context.Context, req CitiesRequest) string {
	out, err := s.stationCodesOfCities(req)
	return result(ToolStationCodesOfCities, out, err)
}

func (s *Service) stationCodesOfCities(req CitiesRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	res := map[string]any{}
	for _, city := range strings.Split(req.Citys, "|") {
		if ref, ok := s.catalog.CityStation(city); ok {
			res[city] = ref
		} else {
			res[city] = lookupMiss{Error: cityNotFound}
		}
	}
	return toJSON(res)
}

// StationCodesByNames resolves each "|"-separated station name. A trailing
// 站 is ignored.
func (s *Service) StationCodesByNames(_ context.Context, req NamesRequest) string {
	out, err := s.stationCodesByNames(req)
	return result(ToolStationCodesByNames, out, err)
}

func (s *Service) stationCodesByNames(req NamesRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	res := map[string]any{}
	for _, name := range strings.Split(req.StationNames, "|") {
		name = strings.TrimSuffix(name, "站")
		if ref, ok := s.catalog.ByName(name); ok {
			res[name] = ref
		} else {
			res[name] = lookupMiss{Error: stationNotFound}
		}
	}
	return toJSON(res)
}

// StationByTelecode returns the full station record for a telecode.
func (s *Service) StationByTelecode(_ context.Context, req TelecodeRequest) string {
	out, err := s.stationByTelecode(req)
	return result(ToolStationByTelecode, out, err)
}

func (s *Service) stationByTelecode(req TelecodeRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	st, ok := s.catalog.Station(req.StationTelecode)
	if !ok {
		return "", ErrStationNotFound
	}
	return toJSON(st)
}

// AllStations renders every station keyed by telecode.
func (s *Service) AllStations() string {
	out, err := toJSON(s.catalog.All())
	if err != nil {
		return errorResult("all-stations", err)
	}
	return out
}
