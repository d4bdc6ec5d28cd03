package models

import (
	"time"

	"github.com/zmeurelos/farm_backend/utils"
)

type PauseStatus string

const (
	PauseStatusOK      PauseStatus = "OK"
	PauseStatusWaiting PauseStatus = "WAITING"
)

type PauseResult struct {
	EarliestHarvestDate time.Time   `json:"earliest_harvest_date"`
	Status              PauseStatus `json:"status"`
}

// ComputePauseStatus evaluates a treatment's pre-harvest waiting period.
// Day granularity: the boundary day itself is compliant. "now" is an explicit
// parameter, callers pass time.Now() outside of tests.
func ComputePauseStatus(applicationDate time.Time, waitingPeriodDays int, now time.Time) PauseResult {
	if waitingPeriodDays < 0 {
		waitingPeriodDays = 0
	}
	earliest := utils.DateOnly(applicationDate).AddDate(0, 0, waitingPeriodDays)
	status := PauseStatusWaiting
	if !utils.DateOnly(now).Before(earliest) {
		status = PauseStatusOK
	}
	return PauseResult{
		EarliestHarvestDate: earliest,
		Status:              status,
	}
}
