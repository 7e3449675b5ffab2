package ticket

import (
	"fmt"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

// legsPerItinerary is the only leg count upstream itineraries carry.
const legsPerItinerary = 2

// InterlineInfo is one two-leg transfer itinerary.
type InterlineInfo struct {
	Lishi             string       `json:"lishi"`
	StartTime         string       `json:"start_time"`
	StartDate         string       `json:"start_date"`
	MiddleDate        string       `json:"middle_date"`
	ArriveDate        string       `json:"arrive_date"`
	ArriveTime        string       `json:"arrive_time"`
	FromStationCode   string       `json:"from_station_code"`
	FromStationName   string       `json:"from_station_name"`
	MiddleStationCode string       `json:"middle_station_code"`
	MiddleStationName string       `json:"middle_station_name"`
	EndStationCode    string       `json:"end_station_code"`
	EndStationName    string       `json:"end_station_name"`
	StartTrainCode    string       `json:"start_train_code"`
	FirstTrainNo      string       `json:"first_train_no"`
	SecondTrainNo     string       `json:"second_train_no"`
	TrainCount        string       `json:"train_count"`
	TicketList        []TicketInfo `json:"ticketList"`
	SameStation       bool         `json:"same_station"`
	SameTrain         bool         `json:"same_train"`
	WaitTime          string       `json:"wait_time"`
}

func (i InterlineInfo) TrainCode() string { return i.StartTrainCode }

// Amenities returns the first leg's tags.
func (i InterlineInfo) Amenities() []string {
	if len(i.TicketList) == 0 {
		return nil
	}
	return i.TicketList[0].DWFlag
}

func (i InterlineInfo) DepartureDate() string { return i.StartDate }
func (i InterlineInfo) DepartureTime() string { return i.StartTime }
func (i InterlineInfo) ArrivalDate() string   { return i.ArriveDate }
func (i InterlineInfo) ArrivalTime() string   { return i.ArriveTime }
func (i InterlineInfo) Duration() string      { return i.Lishi }

// RawInterline is one decoded middleList entry: the itinerary-level fields
// and its fullList legs.
type RawInterline struct {
	Itinerary record.Record
	Legs      []record.Record
}

// AssembleInterlines builds one InterlineInfo per raw itinerary.
func AssembleInterlines(raws []RawInterline, w *record.WarningAggregator) ([]InterlineInfo, error) {
	out := make([]InterlineInfo, 0, len(raws))
	for n, raw := range raws {
		info, err := AssembleInterline(raw, w)
		if err != nil {
			return nil, fmt.Errorf("itinerary %d: %w", n, err)
		}
		out = append(out, info)
	}
	return out, nil
}

// AssembleInterline builds a single itinerary. It fails unless exactly two
// legs are present.
func AssembleInterline(raw RawInterline, w *record.WarningAggregator) (InterlineInfo, error) {
	if len(raw.Legs) != legsPerItinerary {
		return InterlineInfo{}, fmt.Errorf("%w: expected %d legs, got %d", record.ErrDecodeFailed, legsPerItinerary, len(raw.Legs))
	}
	legs, err := AssembleLegs(raw.Legs, w)
	if err != nil {
		return InterlineInfo{}, err
	}
	it := raw.Itinerary
	lishi, err := NormalizeElapsed(it.Get("all_lishi"))
	if err != nil {
		return InterlineInfo{}, err
	}
	if _, err := ParseClock(it.Get("start_time")); err != nil {
		return InterlineInfo{}, err
	}
	if _, err := ParseClock(it.Get("arrive_time")); err != nil {
		return InterlineInfo{}, err
	}

	return InterlineInfo{
		Lishi:             lishi,
		StartTime:         it.Get("start_time"),
		StartDate:         it.Get("train_date"),
		MiddleDate:        it.Get("middle_date"),
		ArriveDate:        it.Get("arrive_date"),
		ArriveTime:        it.Get("arrive_time"),
		FromStationCode:   it.Get("from_station_code"),
		FromStationName:   it.Get("from_station_name"),
		MiddleStationCode: it.Get("middle_station_code"),
		MiddleStationName: it.Get("middle_station_name"),
		EndStationCode:    it.Get("end_station_code"),
		EndStationName:    it.Get("end_station_name"),
		StartTrainCode:    legs[0].StartTrainCode,
		FirstTrainNo:      it.Get("first_train_no"),
		SecondTrainNo:     it.Get("second_train_no"),
		TrainCount:        it.Get("train_count"),
		TicketList:        legs,
		SameStation:       it.Get("same_station") == "0",
		SameTrain:         it.Get("same_train") == "Y",
		WaitTime:          it.Get("wait_time"),
	}, nil
}
