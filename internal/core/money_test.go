package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.01", 1, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{".50", 50, true},
		{"", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12a.34", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseDecimalToCents(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Fatalf("ParseDecimalToCents(%q) expected error", tc.in)
		}
	}
}

func TestMoneyDecimalString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{100, "1.00"},
		{5, "0.05"},
		{-6000, "-60.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).DecimalString(); got != tc.want {
			t.Fatalf("DecimalString(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := (Money{Cents: 1234}).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != "12.34" {
		t.Fatalf("MarshalJSON = %s, want 12.34", b)
	}

	var m Money
	if err := m.UnmarshalJSON([]byte("40")); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if m.Cents != 4000 {
		t.Fatalf("UnmarshalJSON = %d cents, want 4000", m.Cents)
	}
	if err := m.UnmarshalJSON([]byte(`"0"`)); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
