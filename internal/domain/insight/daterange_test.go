package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func TestResolveDateRange_NamedBuckets(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		selector string
		offset   int
	}{
		{RangeLastWeek, 7},
		{RangeLastMonth, 30},
		{RangeLast3Months, 90},
		{RangeLastYear, 365},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			r, err := ResolveDateRange(tt.selector, nil, fixedNow)
			require.NoError(t, err)

			assert.Equal(t, today.AddDate(0, 0, -tt.offset), r.Start)
			assert.Equal(t, today, r.End)
			assert.False(t, r.Start.After(today))
			assert.False(t, r.Inverted())
		})
	}
}

func TestResolveDateRange_UnknownSelectorDefaultsToLastMonth(t *testing.T) {
	for _, selector := range []string{"", "Last Decade", "last week"} {
		r, err := ResolveDateRange(selector, nil, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), r.Start, selector)
	}
}

func TestResolveDateRange_UsesLocalCalendarDay(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	// 00:30 local is still the previous day in UTC
	now := time.Date(2024, 3, 15, 0, 30, 0, 0, nairobi)

	r, err := ResolveDateRange(RangeLastWeek, nil, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08..2024-03-15", r.String())
	assert.Equal(t, nairobi, r.End.Location())

	r, err = ResolveDateRange(RangeSelectCustom, []string{"2024-03-01", "2024-03-15"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, nairobi), r.End)
}

func TestResolveDateRange_Explicit(t *testing.T) {
	r, err := ResolveDateRange(RangeSelectCustom, []string{"2024-01-01", "2024-01-31"}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, "2024-01-01..2024-01-31", r.String())
}

func TestResolveDateRange_ExplicitInvertedIsAccepted(t *testing.T) {
	r, err := ResolveDateRange(RangeSelectCustom, []string{"2024-02-01", "2024-01-01"}, fixedNow)
	require.NoError(t, err)
	assert.True(t, r.Inverted())
}

func TestResolveDateRange_ExplicitMalformed(t *testing.T) {
	tests := map[string][]string{
		"missing pair": nil,
		"single value": {"2024-01-01"},
		"bad start":    {"01/01/2024", "2024-01-31"},
		"bad end":      {"2024-01-01", "soon"},
	}

	for name, explicit := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveDateRange(RangeSelectCustom, explicit, fixedNow)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestNamedRanges(t *testing.T) {
	ranges := NamedRanges()
	assert.Len(t, ranges, 5)
	assert.Equal(t, RangeSelectCustom, ranges[len(ranges)-1])
}
