package ticket

import (
	"fmt"

	"github.com/theoremus-urban-solutions/rail-ticket-query/fare"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

// TicketInfo is one direct train segment, or one leg of an interline itinerary.
type TicketInfo struct {
	TrainNo             string       `json:"train_no"`
	StartTrainCode      string       `json:"start_train_code"`
	StartDate           string       `json:"start_date"`
	ArriveDate          string       `json:"arrive_date"`
	StartTime           string       `json:"start_time"`
	ArriveTime          string       `json:"arrive_time"`
	Lishi               string       `json:"lishi"`
	FromStation         string       `json:"from_station"`
	ToStation           string       `json:"to_station"`
	FromStationTelecode string       `json:"from_station_telecode"`
	ToStationTelecode   string       `json:"to_station_telecode"`
	Prices              []fare.Price `json:"prices"`
	DWFlag              []string     `json:"dw_flag"`
}

func (t TicketInfo) TrainCode() string     { return t.StartTrainCode }
func (t TicketInfo) Amenities() []string   { return t.DWFlag }
func (t TicketInfo) DepartureDate() string { return t.StartDate }
func (t TicketInfo) DepartureTime() string { return t.StartTime }
func (t TicketInfo) ArrivalDate() string   { return t.ArriveDate }
func (t TicketInfo) ArrivalTime() string   { return t.ArriveTime }
func (t TicketInfo) Duration() string      { return t.Lishi }

// AssembleTickets builds one TicketInfo per direct left-ticket record. Station
// names are resolved through the telecode to name map returned alongside the
// rows. Any malformed record fails the whole batch.
func AssembleTickets(recs []record.Record, names map[string]string, w *record.WarningAggregator) ([]TicketInfo, error) {
	out := make([]TicketInfo, 0, len(recs))
	for _, rec := range recs {
		from, ok := names[rec.Get("from_station_telecode")]
		if !ok {
			w.Add(record.WarningNoStationName, rec.Get("from_station_telecode"))
		}
		to, ok := names[rec.Get("to_station_telecode")]
		if !ok {
			w.Add(record.WarningNoStationName, rec.Get("to_station_telecode"))
		}
		info, err := assemble(rec, rec.Get("yp_info_new"), from, to, w)
		if err != nil {
			return nil, fmt.Errorf("train %s: %w", rec.Get("station_train_code"), err)
		}
		out = append(out, info)
	}
	return out, nil
}

// AssembleLegs builds the legs of one interline itinerary. Station names are
// read from each leg record.
func AssembleLegs(recs []record.Record, w *record.WarningAggregator) ([]TicketInfo, error) {
	out := make([]TicketInfo, 0, len(recs))
	for _, rec := range recs {
		info, err := assemble(rec, rec.Get("yp_info"), rec.Get("from_station_name"), rec.Get("to_station_name"), w)
		if err != nil {
			return nil, fmt.Errorf("leg %s: %w", rec.Get("station_train_code"), err)
		}
		out = append(out, info)
	}
	return out, nil
}

func assemble(rec record.Record, ypInfo, fromName, toName string, w *record.WarningAggregator) (TicketInfo, error) {
	departure, arrival, err := departureAndArrival(rec.Get("start_train_date"), rec.Get("start_time"), rec.Get("lishi"))
	if err != nil {
		return TicketInfo{}, err
	}
	if _, err := ParseClock(rec.Get("arrive_time")); err != nil {
		return TicketInfo{}, err
	}
	prices, err := fare.ExtractPrices(ypInfo, rec.Get("seat_discount_info"), rec)
	if err != nil {
		return TicketInfo{}, err
	}
	for _, code := range fare.UnknownSeatCodes(ypInfo) {
		w.Add(record.WarningUnknownSeatType, rec.Get("station_train_code")+"/"+code)
	}

	return TicketInfo{
		TrainNo:             rec.Get("train_no"),
		StartTrainCode:      rec.Get("station_train_code"),
		StartDate:           departure.Format(DateLayout),
		ArriveDate:          arrival.Format(DateLayout),
		StartTime:           rec.Get("start_time"),
		ArriveTime:          rec.Get("arrive_time"),
		Lishi:               rec.Get("lishi"),
		FromStation:         fromName,
		ToStation:           toName,
		FromStationTelecode: rec.Get("from_station_telecode"),
		ToStationTelecode:   rec.Get("to_station_telecode"),
		Prices:              prices,
		DWFlag:              fare.ExtractAmenities(rec.Get("dw_flag")),
	}, nil
}
