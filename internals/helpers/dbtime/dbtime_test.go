package dbtime

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Location() != time.UTC || d.Hour() != 0 {
		t.Fatalf("expected UTC midnight, got %v", d)
	}
	if got := FormatDate(ToDate(d)); got != "2024-02-29" {
		t.Fatalf("round trip: %q", got)
	}

	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestToDateDropsClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2024, 1, 2, 23, 30, 0, 0, loc)

	got := time.Time(ToDate(in))
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if FormatDate(datatypes.Date{}) != "" {
		t.Fatal("zero date should format empty")
	}
}
