package formatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/rail-ticket-query/ticket"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// NoResults is rendered for an empty collection in every format.
const NoResults = "没有查询到相关车次信息"

// Transfer labels.
const (
	LabelSameTrain     = "同车换乘"
	LabelSameStation   = "同站换乘"
	LabelChangeStation = "换站换乘"
)

// ParseFormat accepts text, csv or json in any case. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

var digitsRe = regexp.MustCompile(`^\d+$`)

// FormatTicketStatus turns a remaining-seat value into a readable status.
func FormatTicketStatus(num string) string {
	if digitsRe.MatchString(num) {
		count, err := strconv.Atoi(num)
		if err != nil {
			return num + "票"
		}
		if count == 0 {
			return "无票"
		}
		return fmt.Sprintf("剩余%d张票", count)
	}
	switch num {
	case "有", "充足":
		return "有票"
	case "无", "--", "":
		return "无票"
	case "候补":
		return "无票需候补"
	default:
		return num + "票"
	}
}

// TransferLabel names the kind of change between the two legs.
func TransferLabel(info ticket.InterlineInfo) string {
	switch {
	case info.SameTrain:
		return LabelSameTrain
	case info.SameStation:
		return LabelSameStation
	default:
		return LabelChangeStation
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
