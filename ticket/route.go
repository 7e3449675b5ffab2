package ticket

import "github.com/theoremus-urban-solutions/rail-ticket-query/record"

// RouteStationInfo is one stop of a train's full route. The route-level
// fields are only set on the first stop.
type RouteStationInfo struct {
	TrainClassName   string `json:"train_class_name,omitempty"`
	ServiceType      string `json:"service_type,omitempty"`
	EndStationName   string `json:"end_station_name,omitempty"`
	StationName      string `json:"station_name"`
	StationTrainCode string `json:"station_train_code"`
	ArriveTime       string `json:"arrive_time"`
	StartTime        string `json:"start_time"`
	Lishi            string `json:"lishi"`
	ArriveDayStr     string `json:"arrive_day_str"`
}

// AirConditioned reports whether the route-level service type denotes an
// air-conditioned train. Only meaningful on the first stop.
func (r RouteStationInfo) AirConditioned() bool { return r.ServiceType != "0" }

// AssembleRouteStations converts route stop records in stop order.
func AssembleRouteStations(recs []record.Record) []RouteStationInfo {
	out := make([]RouteStationInfo, 0, len(recs))
	for i, rec := range recs {
		stop := RouteStationInfo{
			StationName:      rec.Get("station_name"),
			StationTrainCode: rec.Get("station_train_code"),
			ArriveTime:       rec.Get("arrive_time"),
			StartTime:        rec.Get("start_time"),
			Lishi:            rec.Get("running_time"),
			ArriveDayStr:     rec.Get("arrive_day_str"),
		}
		if i == 0 {
			stop.TrainClassName = rec.Get("train_class_name")
			stop.ServiceType = rec.Get("service_type")
			stop.EndStationName = rec.Get("end_station_name")
		}
		out = append(out, stop)
	}
	return out
}
