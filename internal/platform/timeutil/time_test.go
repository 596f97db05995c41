package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshalFixedPrecision(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), `"2024-01-15T10:30:00.000Z"`},
		{time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC), `"2024-01-15T10:30:00.123Z"`},
		{time.Date(2024, 1, 15, 16, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)), `"2024-01-15T10:30:00.000Z"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(NewTime(tt.in))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("marshal %v: got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestUnmarshalVariants(t *testing.T) {
	inputs := []string{
		`"2024-01-15T10:30:00.000Z"`,
		`"2024-01-15T10:30:00Z"`,
		`"2024-01-15T10:30:00.123456Z"`,
		`"2024-01-15T16:00:00+05:30"`,
	}
	for _, in := range inputs {
		var tm Time
		if err := json.Unmarshal([]byte(in), &tm); err != nil {
			t.Errorf("unmarshal %s failed: %v", in, err)
		}
	}

	var tm Time
	if err := json.Unmarshal([]byte(`"not a time"`), &tm); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}

func TestUnmarshalNullPreservesValue(t *testing.T) {
	tm := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if err := json.Unmarshal([]byte("null"), &tm); err != nil {
		t.Fatalf("unmarshal null failed: %v", err)
	}
	if tm.IsZero() {
		t.Error("null must preserve the existing value")
	}
}

func TestRoundTrip(t *testing.T) {
	orig := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC))
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Time
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !back.Equal(orig.Time) {
		t.Errorf("round trip changed value: %v vs %v", back.Time, orig.Time)
	}
}
