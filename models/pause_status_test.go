package models_test

import (
	"testing"
	"time"

	"github.com/zmeurelos/farm_backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePauseStatusBoundary(t *testing.T) {
	applied := date(2026, time.January, 1)

	// 10 day waiting period: earliest harvest is Jan 11, inclusive
	r := models.ComputePauseStatus(applied, 10, date(2026, time.January, 11))
	if r.Status != models.PauseStatusOK {
		t.Errorf("on the earliest harvest day: got %s, want OK", r.Status)
	}
	if !r.EarliestHarvestDate.Equal(date(2026, time.January, 11)) {
		t.Errorf("earliest harvest date = %s, want 2026-01-11", r.EarliestHarvestDate)
	}

	r = models.ComputePauseStatus(applied, 10, date(2026, time.January, 10))
	if r.Status != models.PauseStatusWaiting {
		t.Errorf("one day before earliest: got %s, want WAITING", r.Status)
	}

	// time of day never matters, only the calendar date
	lateEvening := time.Date(2026, time.January, 10, 23, 59, 0, 0, time.UTC)
	r = models.ComputePauseStatus(applied, 10, lateEvening)
	if r.Status != models.PauseStatusWaiting {
		t.Errorf("late evening before earliest: got %s, want WAITING", r.Status)
	}
	earlyMorning := time.Date(2026, time.January, 11, 0, 1, 0, 0, time.UTC)
	r = models.ComputePauseStatus(applied, 10, earlyMorning)
	if r.Status != models.PauseStatusOK {
		t.Errorf("early morning of earliest day: got %s, want OK", r.Status)
	}
}

func TestComputePauseStatusZeroDays(t *testing.T) {
	applied := date(2026, time.June, 15)
	r := models.ComputePauseStatus(applied, 0, applied)
	if r.Status != models.PauseStatusOK {
		t.Errorf("zero waiting period on application day: got %s, want OK", r.Status)
	}
	if !r.EarliestHarvestDate.Equal(applied) {
		t.Errorf("earliest harvest date = %s, want application date", r.EarliestHarvestDate)
	}
}

func TestComputePauseStatusNegativeDaysClamped(t *testing.T) {
	applied := date(2026, time.June, 15)
	r := models.ComputePauseStatus(applied, -5, applied)
	if r.Status != models.PauseStatusOK {
		t.Errorf("negative waiting period: got %s, want OK", r.Status)
	}
	if !r.EarliestHarvestDate.Equal(applied) {
		t.Errorf("earliest harvest date = %s, want application date", r.EarliestHarvestDate)
	}
}

func TestComputePauseStatusMonthRollover(t *testing.T) {
	applied := date(2026, time.January, 25)
	r := models.ComputePauseStatus(applied, 10, date(2026, time.February, 3))
	if r.Status != models.PauseStatusWaiting {
		t.Errorf("Feb 3: got %s, want WAITING", r.Status)
	}
	if !r.EarliestHarvestDate.Equal(date(2026, time.February, 4)) {
		t.Errorf("earliest harvest date = %s, want 2026-02-04", r.EarliestHarvestDate)
	}
	r = models.ComputePauseStatus(applied, 10, date(2026, time.February, 4))
	if r.Status != models.PauseStatusOK {
		t.Errorf("Feb 4: got %s, want OK", r.Status)
	}
}

func TestFarmActivityPauseStatus(t *testing.T) {
	activity := &models.FarmActivity{
		ApplicationDate:   date(2026, time.May, 1),
		WaitingPeriodDays: 14,
	}
	r := activity.PauseStatus(date(2026, time.May, 10))
	if r.Status != models.PauseStatusWaiting {
		t.Errorf("May 10: got %s, want WAITING", r.Status)
	}
	r = activity.PauseStatus(date(2026, time.May, 15))
	if r.Status != models.PauseStatusOK {
		t.Errorf("May 15: got %s, want OK", r.Status)
	}
}
