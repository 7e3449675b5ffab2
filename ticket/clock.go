package ticket

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
)

const (
	upstreamDateLayout = "20060102"
	// DateLayout is the rendered calendar date.
	DateLayout = "2006-01-02"
)

var (
	clockRe   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	elapsedRe = regexp.MustCompile(`^(?:(\d+)小时)?(\d+)分钟$`)
)

// Clock is an hour and minute pair. It is used both for a time of day and for
// an elapsed duration, in which case Hour may exceed 23.
type Clock struct {
	Hour   int
	Minute int
}

// Duration converts c to a time.Duration.
func (c Clock) Duration() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock parses "H:MM" or "HH:MM" as a time of day.
func ParseClock(s string) (Clock, error) {
	c, err := parseHourMinute(s)
	if err != nil {
		return Clock{}, err
	}
	if c.Hour > 23 {
		return Clock{}, fmt.Errorf("%w: clock %q out of range", record.ErrDecodeFailed, s)
	}
	return c, nil
}

// ParseLishi parses an "HH:MM" elapsed time. The hour is not capped.
func ParseLishi(s string) (Clock, error) {
	return parseHourMinute(s)
}

func parseHourMinute(s string) (Clock, error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q is not H(H):MM", record.ErrDecodeFailed, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return Clock{}, fmt.Errorf("%w: minute out of range in %q", record.ErrDecodeFailed, s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// NormalizeElapsed converts "<H>小时<M>分钟" or "<M>分钟" to "HH:MM".
func NormalizeElapsed(s string) (string, error) {
	m := elapsedRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: elapsed time %q", record.ErrDecodeFailed, s)
	}
	hour := 0
	if m[1] != "" {
		hour, _ = strconv.Atoi(m[1])
	}
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute}.String(), nil
}

// departureAndArrival computes both instants from an 8-digit date, a
// departure clock and an elapsed lishi.
func departureAndArrival(trainDate, startTime, lishi string) (time.Time, time.Time, error) {
	day, err := time.Parse(upstreamDateLayout, trainDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: train date %q: %v", record.ErrDecodeFailed, trainDate, err)
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	elapsed, err := ParseLishi(lishi)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	departure := day.Add(start.Duration())
	return departure, departure.Add(elapsed.Duration()), nil
}
