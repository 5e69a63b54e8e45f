package cv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDates_ClosedRange(t *testing.T) {
	dates := ExtractDates("Jan 2019 - Mar 2021")
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestExtractDates_OpenRangeHasNoEndDate(t *testing.T) {
	for _, text := range []string{"Jan 2019 - Present", "Jan 2019 - Current"} {
		dates := ExtractDates(text)
		require.Len(t, dates, 1, "text %q", text)
		assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), dates[0])
	}
}

func TestExtractDates_ReversedRangeNormalized(t *testing.T) {
	dates := ExtractDates("Dec 2022 - Jan 2020")
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestExtractDates_FullMonthNamesAndEnDash(t *testing.T) {
	dates := ExtractDates("January 2018 – September 2020")
	require.Len(t, dates, 2)
	assert.Equal(t, time.September, dates[1].Month())
}

func TestExtractDates_FallbackTokensSortedAndCapped(t *testing.T) {
	dates := ExtractDates("Graduated 2015, started Sep 2012, internship 06/2011")
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2011, time.June, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2012, time.September, 1, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestExtractDates_RejectsOutOfRangeYears(t *testing.T) {
	assert.Empty(t, ExtractDates("founded in 1885, projected to 2150"))
}

func TestExtractDates_NoDates(t *testing.T) {
	assert.Empty(t, ExtractDates("no dates in this text"))
}

func TestMonthsBetween(t *testing.T) {
	jan2020 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, monthsBetween(jan2020, jan2020))
	assert.Equal(t, 5, monthsBetween(jan2020, time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24, monthsBetween(jan2020, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
