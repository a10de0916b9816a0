package service_test

import (
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestClassifySchedule(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	hourBefore := now.Add(-time.Hour)
	hourAfter := now.Add(time.Hour)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  service.ScheduleState
	}{
		{"upcoming", &hourAfter, ptr(now.Add(2 * time.Hour)), service.ScheduleUpcoming},
		{"live", &hourBefore, &hourAfter, service.ScheduleLive},
		{"expired", ptr(now.Add(-2 * time.Hour)), &hourBefore, service.ScheduleExpired},
		{"missing start", nil, &hourAfter, service.ScheduleInvalid},
		{"missing end", &hourBefore, nil, service.ScheduleInvalid},
		{"missing both", nil, nil, service.ScheduleInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ClassifySchedule(tt.start, tt.end, now))
		})
	}
}

func TestClassifyScheduleBoundariesAreInclusive(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.Equal(t, service.ScheduleLive, service.ClassifySchedule(&start, &end, start))
	assert.Equal(t, service.ScheduleLive, service.ClassifySchedule(&start, &end, end))
}

func TestScheduleStateJoinable(t *testing.T) {
	assert.True(t, service.ScheduleLive.Joinable())
	assert.False(t, service.ScheduleUpcoming.Joinable())
	assert.False(t, service.ScheduleExpired.Joinable())
	assert.False(t, service.ScheduleInvalid.Joinable())
}

func ptr(t time.Time) *time.Time {
	return &t
}
