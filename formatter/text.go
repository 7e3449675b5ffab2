package formatter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

const (
	ticketTextHeader    = "车次|出发站 -> 到达站|出发时间 -> 到达时间|历时\n"
	interlineTextHeader = "出发时间 -> 到达时间 | 出发车站 -> 中转车站 -> 到达车站 | 换乘标志 |换乘等待时间| 总历时\n\n"
	routeTextColumns    = "站序|车站|车次|到达时间|出发时间|历时(hh:mm)\n"
)

// TicketsText renders one block per ticket with one line per seat class.
func TicketsText(items []ticket.TicketInfo) string {
	if len(items) == 0 {
		return NoResults
	}
	var b strings.Builder
	b.WriteString(ticketTextHeader)
	for _, t := range items {
		fmt.Fprintf(&b, "%s %s(telecode:%s) -> %s(telecode:%s) %s -> %s 历时：%s",
			t.StartTrainCode, t.FromStation, t.FromStationTelecode, t.ToStation, t.ToStationTelecode,
			t.StartTime, t.ArriveTime, t.Lishi)
		for _, p := range t.Prices {
			fmt.Fprintf(&b, "\n- %s: %s %s元", p.SeatName, FormatTicketStatus(p.Num), formatPrice(p.Price))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// InterlinesText renders each itinerary header followed by its legs,
// indented by one tab.
func InterlinesText(items []ticket.InterlineInfo) string {
	if len(items) == 0 {
		return NoResults
	}
	var b strings.Builder
	b.WriteString(interlineTextHeader)
	for _, it := range items {
		fmt.Fprintf(&b, "%s %s -> %s %s | ", it.StartDate, it.StartTime, it.ArriveDate, it.ArriveTime)
		fmt.Fprintf(&b, "%s -> %s -> %s | ", it.FromStationName, it.MiddleStationName, it.EndStationName)
		fmt.Fprintf(&b, "%s | %s | %s\n\n", TransferLabel(it), it.WaitTime, it.Lishi)
		b.WriteString("\t")
		b.WriteString(strings.ReplaceAll(TicketsText(it.TicketList), "\n", "\n\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// RouteStationsText renders a header naming the train class and air
// conditioning, then one line per stop.
func RouteStationsText(stops []ticket.RouteStationInfo) string {
	if len(stops) == 0 {
		return NoResults
	}
	first := stops[0]
	aircon := "无空调"
	if first.AirConditioned() {
		aircon = "有空调"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s次列车（%s %s）\n", first.StationTrainCode, first.TrainClassName, aircon)
	b.WriteString(routeTextColumns)
	for i, s := range stops {
		fmt.Fprintf(&b, "%d|%s|%s|%s|%s|%s %s\n",
			i+1, s.StationName, s.StationTrainCode, s.ArriveTime, s.StartTime, s.ArriveDayStr, s.Lishi)
	}
	return b.String()
}
