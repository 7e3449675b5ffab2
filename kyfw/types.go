package kyfw

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

// LeftTicketResponse is the /otn/leftTicket/query payload.
type LeftTicketResponse struct {
	Data *LeftTicketData `json:"data"`
}

// LeftTicketData carries the pipe-delimited rows and the telecode to name
// map for the stations they reference.
type LeftTicketData struct {
	Result []string          `json:"result"`
	Map    map[string]string `json:"map"`
}

// InterlineResponse is one page of the interline query. Data is either an
// object or, when upstream rejects the query, a plain string.
type InterlineResponse struct {
	Data     json.RawMessage `json:"data"`
	ErrorMsg string          `json:"errorMsg"`
}

// InterlineData is the object form of InterlineResponse.Data.
type InterlineData struct {
	MiddleList  []InterlineItinerary `json:"middleList"`
	CanQuery    string               `json:"can_query"`
	ResultIndex json.Number          `json:"result_index"`
}

// InterlineItinerary is one middleList entry split into its scalar fields and
// its fullList legs.
type InterlineItinerary struct {
	Fields   map[string]any
	FullList []map[string]any
}

func (it *InterlineItinerary) UnmarshalJSON(b []byte) error {
	var legs struct {
		FullList []map[string]any `json:"fullList"`
	}
	if err := json.Unmarshal(b, &legs); err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	delete(fields, "fullList")
	it.Fields = fields
	it.FullList = legs.FullList
	return nil
}

// Page decodes Data. A string payload is reported as rejected with the
// upstream error message.
func (r *InterlineResponse) Page() (data *InterlineData, rejected bool, err error) {
	trimmed := bytes.TrimSpace(r.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, errEmptyData
	}
	if trimmed[0] == '"' {
		return nil, true, nil
	}
	data = &InterlineData{}
	if err := json.Unmarshal(trimmed, data); err != nil {
		return nil, false, fmt.Errorf("%w: interline page: %v", record.ErrDecodeFailed, err)
	}
	return data, false, nil
}

// TrainSearchResponse is the search.12306.cn train search payload.
type TrainSearchResponse struct {
	Data []TrainSearchHit `json:"data"`
}

// TrainSearchHit identifies one date-specific train instance.
type TrainSearchHit struct {
	TrainNo          string `json:"train_no"`
	StationTrainCode string `json:"station_train_code"`
	Date             string `json:"date"`
	FromStation      string `json:"from_station"`
	ToStation        string `json:"to_station"`
}

// RouteResponse is the /otn/queryTrainInfo/query payload.
type RouteResponse struct {
	Data *struct {
		Data []map[string]any `json:"data"`
	} `json:"data"`
}
