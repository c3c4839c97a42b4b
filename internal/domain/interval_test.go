package domain

import "testing"

func TestParseInterval(t *testing.T) {
	t.Parallel()

	got, err := ParseInterval("09:30-14:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Start != 9*60+30 || got.End != 14*60+5 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseInterval_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"",
		"09:30",
		"0930-1405",
		"25:00-26:00",
		"09:61-10:00",
		"ab:cd-10:00",
	} {
		if _, err := ParseInterval(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestCompatible_LooseOverlap(t *testing.T) {
	t.Parallel()

	working := Interval{Start: 9 * 60, End: 10 * 60}

	cases := []struct {
		name     string
		delivery Interval
		want     bool
	}{
		{"full intersection", Interval{Start: 9 * 60, End: 12 * 60}, true},
		// no real intersection, yet still compatible: only End > Start counts
		{"delivery entirely before working", Interval{Start: 6 * 60, End: 7 * 60}, true},
		{"delivery starts at working end", Interval{Start: 10 * 60, End: 11 * 60}, false},
		{"delivery after working", Interval{Start: 11 * 60, End: 12 * 60}, false},
	}
	for _, tc := range cases {
		if got := Compatible(working, tc.delivery); got != tc.want {
			t.Fatalf("%s: Compatible = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAnyWindowCompatible(t *testing.T) {
	t.Parallel()

	if !AnyWindowCompatible([]string{"09:00-10:00"}, []string{"09:00-12:00"}) {
		t.Fatal("expected compatible windows")
	}
	if AnyWindowCompatible([]string{"09:00-10:00"}, []string{"10:00-12:00"}) {
		t.Fatal("expected incompatible windows")
	}
	if AnyWindowCompatible(nil, []string{"09:00-12:00"}) {
		t.Fatal("no working hours can never match")
	}
}

func TestAnyWindowCompatible_MalformedNeverMatches(t *testing.T) {
	t.Parallel()

	if AnyWindowCompatible([]string{"garbage"}, []string{"09:00-12:00"}) {
		t.Fatal("malformed working interval must not match")
	}
	if AnyWindowCompatible([]string{"09:00-10:00"}, []string{"garbage"}) {
		t.Fatal("malformed delivery interval must not match")
	}
	// a malformed member is skipped, not fatal to the rest
	if !AnyWindowCompatible([]string{"garbage", "09:00-10:00"}, []string{"09:00-12:00"}) {
		t.Fatal("well-formed sibling interval must still match")
	}
}
