package fare

import "strings"

// Amenity tags, in the order they are emitted.
const (
	TagSmartEMU       = "智能动车组"
	TagFuxing         = "复兴号"
	TagQuietCar       = "静音车厢"
	TagCozySleeper    = "温馨动卧"
	TagDynamic        = "动感号"
	TagBerthSelection = "支持选铺"
	TagSeniorDiscount = "老年优惠"
)

// ExtractAmenities decodes a '#'-separated amenity string into tags.
// Positions missing from the string emit nothing.
func ExtractAmenities(dwFlag string) []string {
	flags := strings.Split(dwFlag, "#")
	at := func(i int) (string, bool) {
		if i >= len(flags) {
			return "", false
		}
		return flags[i], true
	}

	tags := make([]string, 0, 4)
	if v, ok := at(0); ok && v == "5" {
		tags = append(tags, TagSmartEMU)
	}
	if v, ok := at(1); ok && v == "1" {
		tags = append(tags, TagFuxing)
	}
	if v, ok := at(2); ok {
		switch {
		case strings.HasPrefix(v, "Q"):
			tags = append(tags, TagQuietCar)
		case strings.HasPrefix(v, "R"):
			tags = append(tags, TagCozySleeper)
		}
	}
	if v, ok := at(5); ok && v == "D" {
		tags = append(tags, TagDynamic)
	}
	// 6 and 7 look alike but upstream sets them independently.
	if v, ok := at(6); ok && v != "z" {
		tags = append(tags, TagBerthSelection)
	}
	if v, ok := at(7); ok && v != "z" {
		tags = append(tags, TagSeniorDiscount)
	}
	return tags
}
