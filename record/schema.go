package record

// Schema describes one record family.
type Schema struct {
	Name   string
	Fields []string
	// Keys are the fields a record must carry to be kept.
	Keys []string
}

// StationSchema is the 10-field group of the station_names script.
var StationSchema = Schema{
	Name: "station",
	Fields: []string{
		"station_id",
		"station_name",
		"station_code",
		"station_pinyin",
		"station_short",
		"station_index",
		"code",
		"city",
		"r1",
		"r2",
	},
	Keys: []string{"station_code"},
}

// TicketSchema is the pipe-delimited left-ticket row. Unnamed upstream slots
// keep their position number as name.
var TicketSchema = Schema{
	Name: "ticket",
	Fields: []string{
		"secret_Sstr",
		"button_text_info",
		"train_no",
		"station_train_code",
		"start_station_telecode",
		"end_station_telecode",
		"from_station_telecode",
		"to_station_telecode",
		"start_time",
		"arrive_time",
		"lishi",
		"canWebBuy",
		"yp_info",
		"start_train_date",
		"train_seat_feature",
		"location_code",
		"from_station_no",
		"to_station_no",
		"is_support_card",
		"controlled_train_flag",
		"gg_num",
		"gr_num",
		"qt_num",
		"rw_num",
		"rz_num",
		"tz_num",
		"wz_num",
		"yb_num",
		"yw_num",
		"yz_num",
		"ze_num",
		"zy_num",
		"swz_num",
		"srrb_num",
		"yp_ex",
		"seat_types",
		"exchange_train_flag",
		"houbu_train_flag",
		"houbu_seat_limit",
		"yp_info_new",
		"40",
		"41",
		"42",
		"43",
		"44",
		"45",
		"dw_flag",
		"47",
		"stopcheckTime",
		"country_flag",
		"local_arrive_time",
		"local_start_time",
		"52",
		"bed_level_info",
		"seat_discount_info",
		"sale_time",
		"56",
	},
	Keys: []string{"station_train_code", "from_station_telecode", "to_station_telecode"},
}

// seatCountFields are the per-class remaining-seat fields shared by direct
// rows and interline legs.
var seatCountFields = []string{
	"gg_num", "gr_num", "qt_num", "rw_num", "rz_num", "tz_num", "wz_num",
	"yb_num", "yw_num", "yz_num", "ze_num", "zy_num", "swz_num", "srrb_num",
}

// InterlineLegSchema covers one entry of an itinerary's fullList.
var InterlineLegSchema = Schema{
	Name: "interline_leg",
	Fields: append([]string{
		"train_no",
		"station_train_code",
		"from_station_telecode",
		"from_station_name",
		"to_station_telecode",
		"to_station_name",
		"start_time",
		"arrive_time",
		"lishi",
		"start_train_date",
		"yp_info",
		"seat_discount_info",
		"dw_flag",
	}, seatCountFields...),
	Keys: []string{"station_train_code", "from_station_telecode", "to_station_telecode"},
}

// InterlineSchema covers the itinerary-level fields of a middleList entry.
// The embedded fullList is decoded separately with InterlineLegSchema.
var InterlineSchema = Schema{
	Name: "interline",
	Fields: []string{
		"all_lishi",
		"start_time",
		"train_date",
		"middle_date",
		"arrive_date",
		"arrive_time",
		"from_station_code",
		"from_station_name",
		"middle_station_code",
		"middle_station_name",
		"end_station_code",
		"end_station_name",
		"first_train_no",
		"second_train_no",
		"train_count",
		"same_station",
		"same_train",
		"wait_time",
	},
	Keys: []string{"from_station_code", "end_station_code"},
}

// RouteStopSchema covers one stop of queryTrainInfo.
var RouteStopSchema = Schema{
	Name: "route_stop",
	Fields: []string{
		"station_no",
		"station_name",
		"station_train_code",
		"arrive_time",
		"start_time",
		"running_time",
		"arrive_day_str",
		"arrive_day_diff",
		"train_class_name",
		"service_type",
		"end_station_name",
	},
	Keys: []string{"station_name"},
}
