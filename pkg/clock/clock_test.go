package clock

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Minutes
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := Minutes(480).String(); got != "08:00" {
		t.Errorf("expected 08:00, got %s", got)
	}
	if got := Minutes(810).String(); got != "13:30" {
		t.Errorf("expected 13:30, got %s", got)
	}
	if got := Minutes(5).String(); got != "00:05" {
		t.Errorf("expected 00:05, got %s", got)
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList([]string{"08:00", "09:00", "13:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 480 || got[2] != 780 {
		t.Errorf("unexpected result: %v", got)
	}

	if _, err := ParseList(nil); err == nil {
		t.Error("expected error for empty list")
	}
	if _, err := ParseList([]string{"09:00", "08:00"}); err == nil {
		t.Error("expected error for descending list")
	}
	if _, err := ParseList([]string{"09:00", "09:00"}); err == nil {
		t.Error("expected error for duplicate entries")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m := Minutes(600)
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"10:00"` {
		t.Errorf("expected quoted 10:00, got %s", data)
	}

	var back Minutes
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != m {
		t.Errorf("round trip mismatch: %d != %d", back, m)
	}

	if err := back.UnmarshalJSON([]byte(`"25:00"`)); err == nil {
		t.Error("expected error for out-of-range hour")
	}
	if err := back.UnmarshalJSON([]byte(`600`)); err == nil {
		t.Error("expected error for non-string JSON")
	}
}
