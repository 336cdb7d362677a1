package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(28.6139) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected in-range latitudes to validate")
	}
	if IsValidLatitude(90.0001) || IsValidLatitude(-91) {
		t.Error("expected out-of-range latitudes to fail")
	}
	if !IsValidLongitude(77.2090) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("expected in-range longitudes to validate")
	}
	if IsValidLongitude(180.0001) || IsValidLongitude(-181) {
		t.Error("expected out-of-range longitudes to fail")
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:30", "18:30", "00:00", "23:59"}
	invalid := []string{"24:00", "9:75", "noon", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}
