package fare

import (
	"fmt"
	"strconv"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

const (
	priceSegmentLen    = 10
	discountSegmentLen = 5
	// A segment whose last four digits reach this value is sold as no-seat,
	// whatever its leading class code says. Upstream's own encoding.
	noSeatThreshold = 3000
)

// Price is one seat class offer on one train.
type Price struct {
	SeatName     string  `json:"seat_name"`
	Short        string  `json:"short"`
	SeatTypeCode string  `json:"seat_type_code"`
	Num          string  `json:"num"`
	Price        float64 `json:"price"`
	Discount     *int    `json:"discount"`
}

// SeatCounter returns the raw remaining-seat value for a "<short>_num" field.
type SeatCounter interface {
	Get(field string) string
}

// ExtractPrices decodes the packed fare and discount strings. Remaining seat
// counts are read from seats. A trailing partial segment is ignored.
func ExtractPrices(ypInfo, discountInfo string, seats SeatCounter) ([]Price, error) {
	discounts, err := ParseDiscounts(discountInfo)
	if err != nil {
		return nil, err
	}

	prices := make([]Price, 0, len(ypInfo)/priceSegmentLen)
	for i := 0; i+priceSegmentLen <= len(ypInfo); i += priceSegmentLen {
		segment := ypInfo[i : i+priceSegmentLen]
		code := SeatCode(segment)
		seatType := SeatTypes[code]

		raw, err := strconv.Atoi(segment[1:6])
		if err != nil {
			return nil, fmt.Errorf("%w: price segment %q: %v", record.ErrDecodeFailed, segment, err)
		}

		p := Price{
			SeatName:     seatType.Name,
			Short:        seatType.Short,
			SeatTypeCode: code,
			Num:          seats.Get(seatType.Short + "_num"),
			Price:        float64(raw) / 10,
		}
		if d, ok := discounts[code]; ok {
			p.Discount = &d
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// SeatCode classifies one 10-character fare segment.
func SeatCode(segment string) string {
	if len(segment) >= priceSegmentLen {
		if n, err := strconv.Atoi(segment[6:10]); err == nil && n >= noSeatThreshold {
			return SeatCodeNoSeat
		}
	}
	if segment == "" {
		return SeatCodeOther
	}
	code := segment[:1]
	if _, ok := SeatTypes[code]; !ok {
		return SeatCodeOther
	}
	return code
}

// UnknownSeatCodes lists the leading characters of fare segments that are not
// in SeatTypes and were therefore classified as other.
func UnknownSeatCodes(ypInfo string) []string {
	var unknown []string
	for i := 0; i+priceSegmentLen <= len(ypInfo); i += priceSegmentLen {
		segment := ypInfo[i : i+priceSegmentLen]
		if _, ok := SeatTypes[segment[:1]]; !ok && SeatCode(segment) == SeatCodeOther {
			unknown = append(unknown, segment[:1])
		}
	}
	return unknown
}

// ParseDiscounts decodes the packed per-class discount string into a
// class code to percentage map.
func ParseDiscounts(discountInfo string) (map[string]int, error) {
	discounts := make(map[string]int, len(discountInfo)/discountSegmentLen)
	for i := 0; i+discountSegmentLen <= len(discountInfo); i += discountSegmentLen {
		segment := discountInfo[i : i+discountSegmentLen]
		pct, err := strconv.Atoi(segment[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: discount segment %q: %v", record.ErrDecodeFailed, segment, err)
		}
		discounts[segment[:1]] = pct
	}
	return discounts, nil
}
