package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a same-day time-of-day interval in minutes from midnight.
type Interval struct {
	Start int
	End   int
}

// ParseInterval parses an "HH:MM-HH:MM" interval string.
func ParseInterval(s string) (Interval, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, fmt.Errorf("interval %q: missing '-'", s)
	}
	start, err := parseClock(from)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	end, err := parseClock(to)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	return Interval{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("time %q: missing ':'", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("time %q: bad hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q: bad minute", s)
	}
	return h*60 + m, nil
}

// Compatible reports whether a working interval counts as compatible with a
// delivery interval. The test is deliberately loose: the working end only has
// to fall strictly after the delivery start, full intersection is NOT
// required. Do not tighten it; assignment history depends on this behavior.
func Compatible(working, delivery Interval) bool {
	return working.End > delivery.Start
}

// AnyWindowCompatible reports whether at least one delivery-hour interval is
// compatible with at least one working-hour interval. Interval strings are
// stored unvalidated; a malformed one never matches.
func AnyWindowCompatible(workingHours, deliveryHours []string) bool {
	for _, d := range deliveryHours {
		dl, err := ParseInterval(d)
		if err != nil {
			continue
		}
		for _, w := range workingHours {
			wk, err := ParseInterval(w)
			if err != nil {
				continue
			}
			if Compatible(wk, dl) {
				return true
			}
		}
	}
	return false
}
