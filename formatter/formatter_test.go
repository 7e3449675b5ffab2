package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/rail-ticket-query/fare"
	"github.com/theoremus-urban-solutions/rail-ticket-query/query"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

func TestFormatTicketStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "无票"},
		{"3", "剩余3张票"},
		{"007", "剩余7张票"},
		{"有", "有票"},
		{"充足", "有票"},
		{"无", "无票"},
		{"--", "无票"},
		{"", "无票"},
		{"候补", "无票需候补"},
		{"*", "*票"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatTicketStatus(tt.in); got != tt.want {
				t.Errorf("FormatTicketStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "TEXT", want: FormatText},
		{in: "Csv", want: FormatCSV},
		{in: "json", want: FormatJSON},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEmptyCollectionsRenderSentinel(t *testing.T) {
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON} {
		rb := NewResponseBuilder(f)
		if got := rb.Tickets(nil); got != NoResults {
			t.Errorf("%s tickets: got %q", f, got)
		}
		if got := rb.Interlines([]ticket.InterlineInfo{}); got != NoResults {
			t.Errorf("%s interlines: got %q", f, got)
		}
		if got := rb.RouteStations(nil); got != NoResults {
			t.Errorf("%s route: got %q", f, got)
		}
	}
}

func sampleTicket() ticket.TicketInfo {
	discount := 95
	return ticket.TicketInfo{
		StartTrainCode:      "G1",
		StartDate:           "2025-05-01",
		ArriveDate:          "2025-05-01",
		StartTime:           "07:00",
		ArriveTime:          "11:29",
		Lishi:               "04:29",
		FromStation:         "北京南",
		ToStation:           "上海虹桥",
		FromStationTelecode: "VNP",
		ToStationTelecode:   "AOH",
		Prices: []fare.Price{
			{SeatName: "二等座", Short: "ze", SeatTypeCode: "O", Num: "有", Price: 553, Discount: &discount},
			{SeatName: "一等座", Short: "zy", SeatTypeCode: "M", Num: "5", Price: 930.5},
		},
		DWFlag: []string{fare.TagFuxing, fare.TagSmartEMU},
	}
}

func TestTicketsText(t *testing.T) {
	got := TicketsText([]ticket.TicketInfo{sampleTicket()})
	want := "车次|出发站 -> 到达站|出发时间 -> 到达时间|历时\n" +
		"G1 北京南(telecode:VNP) -> 上海虹桥(telecode:AOH) 07:00 -> 11:29 历时：04:29\n" +
		"- 二等座: 有票 553元\n" +
		"- 一等座: 剩余5张票 930.5元\n"
	if got != want {
		t.Errorf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}

func TestTicketsCSV(t *testing.T) {
	got := TicketsCSV([]ticket.TicketInfo{sampleTicket()})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines: %q", len(lines), got)
	}
	if lines[0] != "车次,出发站,到达站,出发时间,到达时间,历时,票价,特色标签" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], `"[二等座: 有票553元,一等座: 剩余5张票930.5元]"`) {
		t.Errorf("prices column should be quoted: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "复兴号&智能动车组") {
		t.Errorf("unexpected amenities column: %q", lines[1])
	}
}

func TestTicketsJSON(t *testing.T) {
	out := NewResponseBuilder(FormatJSON).Tickets([]ticket.TicketInfo{sampleTicket()})
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	prices := decoded[0]["prices"].([]any)
	if prices[1].(map[string]any)["discount"] != nil {
		t.Errorf("missing discount must serialize as null")
	}
	if prices[0].(map[string]any)["discount"].(float64) != 95 {
		t.Errorf("expected discount 95")
	}
}

func interline(sameStation, sameTrain bool) ticket.InterlineInfo {
	leg := sampleTicket()
	return ticket.InterlineInfo{
		Lishi:             "06:00",
		StartDate:         "2025-05-01",
		StartTime:         "07:00",
		ArriveDate:        "2025-05-01",
		ArriveTime:        "13:00",
		FromStationName:   "北京南",
		MiddleStationName: "济南西",
		EndStationName:    "南京南",
		StartTrainCode:    "G1",
		TicketList:        []ticket.TicketInfo{leg, leg},
		SameStation:       sameStation,
		SameTrain:         sameTrain,
		WaitTime:          "30分钟",
	}
}

func TestTransferLabel(t *testing.T) {
	tests := []struct {
		name        string
		sameStation bool
		sameTrain   bool
		want        string
	}{
		{"same station not same train", true, false, LabelSameStation},
		{"same train wins", true, true, LabelSameTrain},
		{"different station", false, false, LabelChangeStation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransferLabel(interline(tt.sameStation, tt.sameTrain)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInterlinesText(t *testing.T) {
	got := InterlinesText([]ticket.InterlineInfo{interline(true, false)})
	if !strings.HasPrefix(got, interlineTextHeader) {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "2025-05-01 07:00 -> 2025-05-01 13:00 | 北京南 -> 济南西 -> 南京南 | 同站换乘 | 30分钟 | 06:00\n\n") {
		t.Errorf("unexpected itinerary line: %q", got)
	}
	if !strings.Contains(got, "\n\tG1 北京南(telecode:VNP)") {
		t.Errorf("legs should be tab indented: %q", got)
	}
}

func TestInterlinesCSV(t *testing.T) {
	got := InterlinesCSV([]ticket.InterlineInfo{interline(false, false)})
	if !strings.Contains(got, "换站换乘") || !strings.Contains(got, "G1->G1") {
		t.Errorf("unexpected csv: %q", got)
	}
}

func TestRouteStationsText(t *testing.T) {
	stops := []ticket.RouteStationInfo{
		{TrainClassName: "高速", ServiceType: "2", StationName: "北京南", StationTrainCode: "G1",
			ArriveTime: "----", StartTime: "07:00", Lishi: "00:00", ArriveDayStr: "当日到达"},
		{StationName: "上海虹桥", StationTrainCode: "G1", ArriveTime: "11:29", StartTime: "11:29",
			Lishi: "04:29", ArriveDayStr: "当日到达"},
	}
	got := RouteStationsText(stops)
	want := "G1次列车（高速 有空调）\n" +
		"站序|车站|车次|到达时间|出发时间|历时(hh:mm)\n" +
		"1|北京南|G1|----|07:00|当日到达 00:00\n" +
		"2|上海虹桥|G1|11:29|11:29|当日到达 04:29\n"
	if got != want {
		t.Errorf("unexpected route text:\n%s\nwant:\n%s", got, want)
	}

	stops[0].ServiceType = "0"
	if !strings.Contains(RouteStationsText(stops), "（高速 无空调）") {
		t.Errorf("service type 0 should render without air conditioning")
	}
}

// A raw row flows through decode, fare extraction, assembly, filtering and
// rendering.
func TestPipeline_SleeperWithThreeLeft(t *testing.T) {
	fields := map[string]string{
		"station_train_code":    "K1",
		"from_station_telecode": "BJP",
		"to_station_telecode":   "SHH",
		"start_time":            "20:00",
		"arrive_time":           "08:00",
		"lishi":                 "12:00",
		"start_train_date":      "20250501",
		"yp_info_new":           "3012340500",
		"yw_num":                "3",
	}
	parts := make([]string, len(record.TicketSchema.Fields))
	for i, name := range record.TicketSchema.Fields {
		parts[i] = fields[name]
	}
	recs := record.DecodeBatch([]string{strings.Join(parts, "|")}, "|", record.TicketSchema, nil)
	infos, err := ticket.AssembleTickets(recs, map[string]string{"BJP": "北京", "SHH": "上海"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	filtered := query.Apply(infos, query.DefaultOptions())
	if len(filtered) != 1 {
		t.Fatalf("expected one ticket, got %d", len(filtered))
	}
	if filtered[0].ArriveDate != "2025-05-02" {
		t.Errorf("expected overnight arrival, got %s", filtered[0].ArriveDate)
	}
	out := NewResponseBuilder(FormatText).Tickets(filtered)
	if !strings.Contains(out, "- 硬卧: 剩余3张票 123.4元") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
