package insight

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Named range selectors accepted in filter payloads
const (
	RangeLastWeek     = "Last Week"
	RangeLastMonth    = "Last Month"
	RangeLast3Months  = "Last 3 Months"
	RangeLastYear     = "Last Year"
	RangeSelectCustom = "Select Date Range"
)

// DateLayout is the wire format of explicit range bounds
const DateLayout = "2006-01-02"

// ErrInvalidDateRange is returned when the explicit pair is missing or unparseable
var ErrInvalidDateRange = errors.New("invalid selected date range")

var rangeOffsets = map[string]int{
	RangeLastWeek:    -7,
	RangeLastMonth:   -30,
	RangeLast3Months: -90,
	RangeLastYear:    -365,
}

const defaultOffset = -30

// DateRange is an inclusive interval of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Inverted reports whether the range starts after it ends.
// Such ranges are not rejected; they simply match no documents.
func (r DateRange) Inverted() bool {
	return r.Start.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// NamedRanges lists the selectors a client may offer, sentinel last
func NamedRanges() []string {
	return []string{RangeLastWeek, RangeLastMonth, RangeLast3Months, RangeLastYear, RangeSelectCustom}
}

// ResolveDateRange turns a selector into a concrete interval relative to now.
// Days are calendar days in now's location. Unknown or empty selectors fall
// back to the last 30 days.
func ResolveDateRange(selector string, explicit []string, now time.Time) (DateRange, error) {
	today := truncateDay(now)

	if selector == RangeSelectCustom {
		return parseExplicit(explicit, now.Location())
	}

	offset, ok := rangeOffsets[selector]
	if !ok {
		offset = defaultOffset
	}

	return DateRange{
		Start: today.AddDate(0, 0, offset),
		End:   today,
	}, nil
}

func parseExplicit(explicit []string, loc *time.Location) (DateRange, error) {
	if len(explicit) != 2 {
		return DateRange{}, fmt.Errorf("%w: expected [start, end], got %d values", ErrInvalidDateRange, len(explicit))
	}

	start, err := time.ParseInLocation(DateLayout, strings.TrimSpace(explicit[0]), loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, explicit[0])
	}
	end, err := time.ParseInLocation(DateLayout, strings.TrimSpace(explicit[1]), loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, explicit[1])
	}

	return DateRange{Start: start, End: end}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
