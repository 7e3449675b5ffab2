package fare

// SeatType is a purchasable fare tier.
type SeatType struct {
	Name  string
	Short string
}

// Seat class codes with special handling.
const (
	SeatCodeNoSeat = "W"
	SeatCodeOther  = "H"
)

// SeatTypes maps upstream seat class codes to display name and short code.
// The short code selects the "<short>_num" remaining-seat field.
var SeatTypes = map[string]SeatType{
	"9":  {Name: "商务座", Short: "swz"},
	"P":  {Name: "特等座", Short: "tz"},
	"M":  {Name: "一等座", Short: "zy"},
	"D":  {Name: "优选一等座", Short: "zy"},
	"O":  {Name: "二等座", Short: "ze"},
	"S":  {Name: "二等包座", Short: "ze"},
	"6":  {Name: "高级软卧", Short: "gr"},
	"A":  {Name: "高级动卧", Short: "gr"},
	"4":  {Name: "软卧", Short: "rw"},
	"I":  {Name: "一等卧", Short: "rw"},
	"F":  {Name: "动卧", Short: "rw"},
	"3":  {Name: "硬卧", Short: "yw"},
	"J":  {Name: "二等卧", Short: "yw"},
	"2":  {Name: "软座", Short: "rz"},
	"1":  {Name: "硬座", Short: "yz"},
	"W":  {Name: "无座", Short: "wz"},
	"WZ": {Name: "无座", Short: "wz"},
	"H":  {Name: "其他", Short: "qt"},
}
