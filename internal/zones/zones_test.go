package zones

import "testing"

func TestDeriveDay2_AllValidCodes(t *testing.T) {
	cases := map[string]string{
		"AMW": "BMQ",
		"AMX": "BMR",
		"AMY": "BMS",
		"AMZ": "BMT",
		"AFW": "BFQ",
		"AFX": "BFR",
		"AFY": "BFS",
		"AFZ": "BFT",
	}
	for day1, want := range cases {
		got, err := DeriveDay2(day1)
		if err != nil {
			t.Errorf("DeriveDay2(%q) returned error: %v", day1, err)
			continue
		}
		if got != want {
			t.Errorf("DeriveDay2(%q) = %q, want %q", day1, got, want)
		}
	}
}

func TestDeriveDay2_InvalidCodes(t *testing.T) {
	invalid := []string{
		"",
		"AM",
		"AMWX",
		"BMW",   // wrong prefix
		"AXW",   // middle char not M/F
		"AMU",   // removed day-1 suffix
		"AMV",   // removed day-1 suffix
		"AMO",   // day-2 character on day-1
		"amw",   // not normalized
		" AMW ", // not normalized
		"A1W",
	}
	for _, day1 := range invalid {
		if got, err := DeriveDay2(day1); err == nil {
			t.Errorf("DeriveDay2(%q) = %q, want ErrInvalidZone", day1, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{" amw ", "AMW"},
		{"AfZ", "AFZ"},
		{"\tamx\n", "AMX"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeThenDerive(t *testing.T) {
	got, err := DeriveDay2(Normalize("  afy "))
	if err != nil {
		t.Fatalf("derive normalized code: %v", err)
	}
	if got != "BFS" {
		t.Errorf("got %q, want BFS", got)
	}
}
