package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-01", want: New(2024, time.January, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2024-02-29", want: New(2024, time.February, 29)},
		{in: "2023-02-29", wantErr: true},
		{in: "01/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, 1, 32) = %v, want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), `"2024-03-05"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Error("Unmarshal of an invalid date should fail")
	}
}
