package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	ts := time.Date(2024, time.March, 6, 14, 30, 0, 0, time.UTC) // a Wednesday
	b := Derive(ts)
	assert.Equal(t, 2024, b.Year)
	assert.Equal(t, "2024-03", b.Month)
	assert.Equal(t, time.Wednesday, b.Weekday)
	assert.Equal(t, 14, b.Hour)
}

func TestMonthRange(t *testing.T) {
	first := time.Date(2023, time.November, 28, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, MonthRange(first, last))
}

func TestMonthRangeSingleMonth(t *testing.T) {
	ts := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-06"}, MonthRange(ts, ts))
}

func TestMonthRangeDegenerate(t *testing.T) {
	ts := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, MonthRange(time.Time{}, ts))
	assert.Nil(t, MonthRange(ts, time.Time{}))
	assert.Nil(t, MonthRange(ts, ts.AddDate(0, -2, 0)))
}
