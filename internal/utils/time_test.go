package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

func TestWeekBounds(t *testing.T) {
	loc := time.UTC
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, loc)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday midnight", monday},
		{"wednesday afternoon", time.Date(2026, 10, 14, 15, 30, 0, 0, loc)},
		{"sunday late", time.Date(2026, 10, 18, 23, 59, 59, 0, loc)},
		{"saturday", time.Date(2026, 10, 17, 8, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := util.WeekBounds(tt.in)
			assert.True(t, start.Equal(monday), "start = %v", start)
			assert.True(t, end.Equal(time.Date(2026, 10, 18, 23, 59, 59, 999_000_000, loc)), "end = %v", end)
		})
	}
}

func TestWeekBounds_SundayMapsSixDaysBack(t *testing.T) {
	sunday := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	start, _ := util.WeekBounds(sunday)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 12, start.Day())
	assert.Zero(t, start.Hour()+start.Minute()+start.Second()+start.Nanosecond())
}

func TestWeekBounds_WednesdayMapsTwoDaysBack(t *testing.T) {
	wednesday := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	start, _ := util.WeekBounds(wednesday)

	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), start)
}

func TestWeekBounds_CrossesMonth(t *testing.T) {
	start, end := util.WeekBounds(time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 1, end.Day())
	assert.Equal(t, time.November, end.Month())
}

func TestMonthBounds(t *testing.T) {
	start, end := util.MonthBounds(time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestEachDay(t *testing.T) {
	var days []int
	util.EachDay(
		time.Date(2026, 10, 30, 15, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC),
		func(d time.Time) { days = append(days, d.Day()) },
	)
	assert.Equal(t, []int{30, 31, 1, 2}, days)
}

func TestLocalDateTime_JSON(t *testing.T) {
	var payload struct {
		At   util.LocalDateTime  `json:"at"`
		Day  util.LocalDateTime  `json:"day"`
		None *util.LocalDateTime `json:"none"`
	}
	err := json.Unmarshal([]byte(`{"at":"2026-10-14T09:30:00","day":"2026-10-15","none":null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, 9, payload.At.Hour())
	assert.Equal(t, util.Location(), payload.At.Location())
	assert.Equal(t, 15, payload.Day.Day())
	assert.Nil(t, util.ToTimePtr(payload.None))

	out, err := json.Marshal(payload.At)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-14T09:30:00"`, string(out))
}

func TestLocalDateTime_InvalidInput(t *testing.T) {
	var ldt util.LocalDateTime
	assert.Error(t, json.Unmarshal([]byte(`"14/10/2026"`), &ldt))
}
