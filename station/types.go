package station

import "github.com/theoremus-urban-solutions/rail-ticket-query/record"

// StationData is one railway station. StationCode (the telecode) is the key.
type StationData struct {
	StationID     string `json:"station_id"`
	StationName   string `json:"station_name"`
	StationCode   string `json:"station_code"`
	StationPinyin string `json:"station_pinyin"`
	StationShort  string `json:"station_short"`
	StationIndex  string `json:"station_index"`
	Code          string `json:"code"`
	City          string `json:"city"`
	R1            string `json:"r1"`
	R2            string `json:"r2"`
}

// StationRef is the telecode and name pair returned by the city and name
// lookups.
type StationRef struct {
	StationCode string `json:"station_code"`
	StationName string `json:"station_name"`
}

// Ref projects s to its StationRef.
func (s StationData) Ref() StationRef {
	return StationRef{StationCode: s.StationCode, StationName: s.StationName}
}

// MissingStations are stations absent from the upstream list. They are
// added to every catalog unless upstream already carries the telecode.
var MissingStations = []StationData{
	{
		StationID:     "@cdd",
		StationName:   "成  都东",
		StationCode:   "WEI",
		StationPinyin: "chengdudong",
		StationShort:  "cdd",
		StationIndex:  "",
		Code:          "1707",
		City:          "成都",
	},
}

func fromRecord(rec record.Record) StationData {
	return StationData{
		StationID:     rec.Get("station_id"),
		StationName:   rec.Get("station_name"),
		StationCode:   rec.Get("station_code"),
		StationPinyin: rec.Get("station_pinyin"),
		StationShort:  rec.Get("station_short"),
		StationIndex:  rec.Get("station_index"),
		Code:          rec.Get("code"),
		City:          rec.Get("city"),
		R1:            rec.Get("r1"),
		R2:            rec.Get("r2"),
	}
}
