package query

import (
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/rail-ticket-query/fare"
	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

func tk(code, date, start, arriveDate, arrive, lishi string, tags ...string) ticket.TicketInfo {
	return ticket.TicketInfo{
		StartTrainCode: code,
		StartDate:      date,
		StartTime:      start,
		ArriveDate:     arriveDate,
		ArriveTime:     arrive,
		Lishi:          lishi,
		DWFlag:         tags,
	}
}

func codes[T Item](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.TrainCode()
	}
	return out
}

var sample = []ticket.TicketInfo{
	tk("G1", "2025-05-01", "09:00", "2025-05-01", "13:00", "04:00", fare.TagFuxing),
	tk("D2", "2025-05-01", "07:30", "2025-05-01", "12:00", "04:30"),
	tk("K3", "2025-05-01", "21:15", "2025-05-02", "08:00", "10:45"),
	tk("C4", "2025-05-01", "07:05", "2025-05-01", "08:00", "00:55", fare.TagSmartEMU),
	tk("Y5", "2025-05-01", "12:00", "2025-05-01", "18:00", "06:00"),
}

func TestApply_CategoryFilter(t *testing.T) {
	tests := []struct {
		name  string
		flags string
		want  []string
	}{
		{"empty keeps order", "", []string{"G1", "D2", "K3", "C4", "Y5"}},
		{"G covers C", "G", []string{"G1", "C4"}},
		{"OR across flags", "GD", []string{"G1", "D2", "C4"}},
		{"other", "O", []string{"Y5"}},
		{"fuxing", "F", []string{"G1"}},
		{"smart", "S", []string{"C4"}},
		{"no match", "Z", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Flags = tt.flags
			got := codes(Apply(sample, opts))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("flags %q: got %v, want %v", tt.flags, got, tt.want)
			}
		})
	}
}

func TestApply_TimeWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.Earliest = 7
	opts.Latest = 12
	got := codes(Apply(sample, opts))
	want := []string{"G1", "D2", "C4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_Sort(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		reverse bool
		want    []string
	}{
		{"start time tie-break on minute", SortStartTime, false, []string{"C4", "D2", "G1", "Y5", "K3"}},
		{"arrive time uses date first", SortArriveTime, false, []string{"C4", "D2", "G1", "Y5", "K3"}},
		{"duration", SortDuration, false, []string{"C4", "G1", "D2", "Y5", "K3"}},
		{"reverse", SortDuration, true, []string{"K3", "Y5", "D2", "G1", "C4"}},
		{"unknown sort keeps order even reversed", "price", true, []string{"G1", "D2", "K3", "C4", "Y5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.SortFlag = tt.flag
			opts.Reverse = tt.reverse
			got := codes(Apply(sample, opts))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_SortIsStable(t *testing.T) {
	items := []ticket.TicketInfo{
		tk("G1", "2025-05-01", "08:00", "2025-05-01", "09:00", "01:00"),
		tk("G2", "2025-05-01", "08:00", "2025-05-01", "09:00", "01:00"),
		tk("G0", "2025-04-30", "23:00", "2025-05-01", "00:00", "01:00"),
	}
	opts := DefaultOptions()
	opts.SortFlag = SortStartTime
	got := codes(Apply(items, opts))
	want := []string{"G0", "G1", "G2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_Limit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 5},
		{2, 2},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Limit = tt.limit
		if got := len(Apply(sample, opts)); got != tt.want {
			t.Errorf("limit %d: expected %d items, got %d", tt.limit, tt.want, got)
		}
	}
}

func TestApply_FilterThenSortThenLimit(t *testing.T) {
	opts := Options{Flags: "GDK", Earliest: 7, Latest: 24, SortFlag: SortStartTime, Reverse: true, Limit: 2}
	got := codes(Apply(sample, opts))
	want := []string{"K3", "G1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_Interline(t *testing.T) {
	items := []ticket.InterlineInfo{
		{StartTrainCode: "D1", StartDate: "2025-05-01", StartTime: "10:00", Lishi: "05:00",
			TicketList: []ticket.TicketInfo{{DWFlag: []string{fare.TagFuxing}}, {}}},
		{StartTrainCode: "G2", StartDate: "2025-05-01", StartTime: "08:00", Lishi: "03:00",
			TicketList: []ticket.TicketInfo{{}, {DWFlag: []string{fare.TagFuxing}}}},
	}
	opts := DefaultOptions()
	opts.Flags = "F"
	got := codes(Apply(items, opts))
	if !reflect.DeepEqual(got, []string{"D1"}) {
		t.Errorf("fuxing flag must read the first leg, got %v", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := append([]ticket.TicketInfo(nil), sample...)
	opts := DefaultOptions()
	opts.SortFlag = SortDuration
	Apply(in, opts)
	if !reflect.DeepEqual(codes(in), codes(sample)) {
		t.Errorf("input reordered: %v", codes(in))
	}
}
