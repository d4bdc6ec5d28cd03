package utils_test

import (
	"testing"
	"time"

	"github.com/zmeurelos/farm_backend/utils"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, time.March, 5, 17, 42, 9, 123, time.UTC)
	got := utils.DateOnly(in)
	want := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%s) = %s, want %s", in, got, want)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := utils.MonthRange(2026, time.February)
	if !start.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("february start = %s", start)
	}
	if end.Day() != 28 || end.Month() != time.February {
		t.Errorf("february end = %s", end)
	}

	// leap year
	start, end = utils.MonthRange(2028, time.February)
	if end.Day() != 29 {
		t.Errorf("leap february end = %s", end)
	}
	if !start.Before(end) {
		t.Errorf("start %s not before end %s", start, end)
	}

	_, decEnd := utils.MonthRange(2026, time.December)
	if decEnd.Month() != time.December || decEnd.Day() != 31 {
		t.Errorf("december end = %s", decEnd)
	}
}

func TestUniqueSlice(t *testing.T) {
	got := utils.UniqueSlice([]string{"a", "b", "a", "c", "b"})
	if len(got) != 3 {
		t.Errorf("UniqueSlice = %v, want 3 elements", got)
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := utils.ParseDecimal("12.50")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if d.String() != "12.5" {
		t.Errorf("ParseDecimal(12.50) = %s", d)
	}
	if _, err := utils.ParseDecimal("not a number"); err == nil {
		t.Error("expected error for invalid decimal")
	}
}
