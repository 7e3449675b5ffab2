package fare

import (
	"errors"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

func TestSeatCode(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"hard sleeper", "3012340500", "3"},
		{"second class", "O005530000", "O"},
		{"no-seat threshold forces W", "O005533000", SeatCodeNoSeat},
		{"above threshold forces W", "9012349999", SeatCodeNoSeat},
		{"just under threshold", "M012342999", "M"},
		{"unknown leading char", "X012340000", SeatCodeOther},
		{"non numeric tail ignored", "4012340abc", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeatCode(tt.segment); got != tt.want {
				t.Errorf("SeatCode(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestExtractPrices(t *testing.T) {
	seats := record.Record{"yw_num": "3", "ze_num": "有", "wz_num": "无"}

	prices, err := ExtractPrices("3012340500O005530000O005533000", "O0095", seats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prices) != 3 {
		t.Fatalf("expected 3 prices, got %d", len(prices))
	}

	sleeper := prices[0]
	if sleeper.SeatName != "硬卧" || sleeper.Short != "yw" || sleeper.Num != "3" {
		t.Errorf("unexpected sleeper price: %+v", sleeper)
	}
	if sleeper.Price != 123.4 {
		t.Errorf("expected price 123.4, got %v", sleeper.Price)
	}
	if sleeper.Discount != nil {
		t.Errorf("class without discount entry must have nil discount, got %d", *sleeper.Discount)
	}

	second := prices[1]
	if second.Discount == nil || *second.Discount != 95 {
		t.Errorf("expected discount 95 for second class, got %v", second.Discount)
	}
	if second.Price != 55.3 || second.Num != "有" {
		t.Errorf("unexpected second class price: %+v", second)
	}

	noSeat := prices[2]
	if noSeat.SeatTypeCode != SeatCodeNoSeat || noSeat.SeatName != "无座" || noSeat.Num != "无" {
		t.Errorf("unexpected no-seat price: %+v", noSeat)
	}
}

func TestExtractPrices_DiscountZeroIsNotAbsent(t *testing.T) {
	prices, err := ExtractPrices("3012340500", "30000", record.Record{})
	if err != nil {
		t.Fatal(err)
	}
	if prices[0].Discount == nil || *prices[0].Discount != 0 {
		t.Errorf("explicit zero discount should be kept, got %v", prices[0].Discount)
	}
}

func TestExtractPrices_TrailingPartialSegmentIgnored(t *testing.T) {
	prices, err := ExtractPrices("30123405000", "", record.Record{})
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 1 {
		t.Errorf("expected 1 price, got %d", len(prices))
	}
}

func TestExtractPrices_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		yp       string
		discount string
	}{
		{"bad price digits", "3ab2340500", ""},
		{"bad discount digits", "3012340500", "3x100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPrices(tt.yp, tt.discount, record.Record{})
			if !errors.Is(err, record.ErrDecodeFailed) {
				t.Errorf("expected ErrDecodeFailed, got %v", err)
			}
		})
	}
}

func TestExtractAmenities(t *testing.T) {
	tests := []struct {
		name   string
		dwFlag string
		want   []string
	}{
		{"empty", "", []string{}},
		{"smart fuxing", "5#1", []string{TagSmartEMU, TagFuxing}},
		{"quiet car", "0#0#Q1", []string{TagQuietCar}},
		{"cozy sleeper", "0#0#R", []string{TagCozySleeper}},
		{"dynamic", "0#0#0#0#0#D", []string{TagDynamic}},
		{"index 6 and 7 kept apart", "0#0#0#0#0#0#1#z", []string{TagBerthSelection}},
		{"index 7 only", "0#0#0#0#0#0#z#1", []string{TagSeniorDiscount}},
		{"all", "5#1#Q#0#0#D#1#1", []string{
			TagSmartEMU, TagFuxing, TagQuietCar, TagDynamic, TagBerthSelection, TagSeniorDiscount,
		}},
		{"short string skips missing indices", "0#0#0#0#0#0", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmenities(tt.dwFlag)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAmenities(%q) = %v, want %v", tt.dwFlag, got, tt.want)
			}
		})
	}
}
