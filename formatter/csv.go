package formatter

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

var (
	ticketCSVHeader    = []string{"车次", "出发站", "到达站", "出发时间", "到达时间", "历时", "票价", "特色标签"}
	interlineCSVHeader = []string{"出发时间", "到达时间", "出发车站", "中转车站", "到达车站", "换乘标志", "换乘等待时间", "总历时", "车次"}
	routeCSVHeader     = []string{"站序", "车站", "车次", "到达时间", "出发时间", "到达日", "历时"}
)

// TicketsCSV renders one row per ticket. Prices are folded into one column.
func TicketsCSV(items []ticket.TicketInfo) string {
	if len(items) == 0 {
		return NoResults
	}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			t.StartTrainCode,
			stationCell(t.FromStation, t.FromStationTelecode),
			stationCell(t.ToStation, t.ToStationTelecode),
			t.StartTime,
			t.ArriveTime,
			t.Lishi,
			pricesCell(t),
			amenitiesCell(t.DWFlag),
		})
	}
	return writeCSV(ticketCSVHeader, rows)
}

// InterlinesCSV renders one row per itinerary; the train column lists both legs.
func InterlinesCSV(items []ticket.InterlineInfo) string {
	if len(items) == 0 {
		return NoResults
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		codes := make([]string, len(it.TicketList))
		for i, leg := range it.TicketList {
			codes[i] = leg.StartTrainCode
		}
		rows = append(rows, []string{
			it.StartDate + " " + it.StartTime,
			it.ArriveDate + " " + it.ArriveTime,
			stationCell(it.FromStationName, it.FromStationCode),
			stationCell(it.MiddleStationName, it.MiddleStationCode),
			stationCell(it.EndStationName, it.EndStationCode),
			TransferLabel(it),
			it.WaitTime,
			it.Lishi,
			strings.Join(codes, "->"),
		})
	}
	return writeCSV(interlineCSVHeader, rows)
}

// RouteStationsCSV renders one row per stop.
func RouteStationsCSV(stops []ticket.RouteStationInfo) string {
	if len(stops) == 0 {
		return NoResults
	}
	rows := make([][]string, 0, len(stops))
	for i, s := range stops {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), s.StationName, s.StationTrainCode, s.ArriveTime, s.StartTime, s.ArriveDayStr, s.Lishi,
		})
	}
	return writeCSV(routeCSVHeader, rows)
}

func writeCSV(header []string, rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	// strings.Builder never fails a write, so the writer cannot error.
	_ = w.Write(header)
	_ = w.WriteAll(rows)
	return b.String()
}

func stationCell(name, telecode string) string {
	return fmt.Sprintf("%s(telecode:%s)", name, telecode)
}

func pricesCell(t ticket.TicketInfo) string {
	var b strings.Builder
	b.WriteString("[")
	for i, p := range t.Prices {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%s: %s%s元", p.SeatName, FormatTicketStatus(p.Num), formatPrice(p.Price))
	}
	b.WriteString("]")
	return b.String()
}

func amenitiesCell(tags []string) string {
	if len(tags) == 0 {
		return "/"
	}
	return strings.Join(tags, "&")
}
