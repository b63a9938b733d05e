// Package timeutil holds the wall-clock helpers used by the reset scheduler.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultPeriod is how often habits reset after the first midnight.
const DefaultPeriod = "1d"

const day = 24 * time.Hour

// periodUnits lists the accepted suffixes, largest first. FormatPeriod
// writes the first spelling of each.
var periodUnits = []struct {
	names []string
	size  time.Duration
}{
	{[]string{"d", "day", "days"}, day},
	{[]string{"h", "hr", "hrs", "hour", "hours"}, time.Hour},
	{[]string{"m", "min", "mins", "minute", "minutes"}, time.Minute},
	{[]string{"s", "sec", "secs", "second", "seconds"}, time.Second},
}

func unitSize(name string) (time.Duration, bool) {
	for _, u := range periodUnits {
		for _, n := range u.names {
			if n == name {
				return u.size, true
			}
		}
	}
	return 0, false
}

// ParsePeriod reads a reset period such as "1d", "24h" or "1d12h" and returns
// it with its canonical spelling. Blank input means DefaultPeriod.
func ParsePeriod(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultPeriod
	}

	var total time.Duration
	for rest != "" {
		digits := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
		if digits == 0 {
			return 0, "", fmt.Errorf("reset period %q: expected a number before %q", input, rest)
		}
		if digits < 0 {
			return 0, "", fmt.Errorf("reset period %q: %q has no unit", input, rest)
		}
		n, err := strconv.ParseInt(rest[:digits], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("reset period %q: %w", input, err)
		}
		rest = strings.TrimLeft(rest[digits:], " ")

		letters := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if letters < 0 {
			letters = len(rest)
		}
		size, ok := unitSize(rest[:letters])
		if !ok {
			return 0, "", fmt.Errorf("reset period %q: unknown unit %q (use d, h, m or s)", input, rest[:letters])
		}
		total += time.Duration(n) * size
		rest = strings.TrimLeft(rest[letters:], " ")
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("reset period %q: must be longer than zero", input)
	}
	return total, FormatPeriod(total), nil
}

// FormatPeriod spells d as days, hours, minutes and seconds, e.g. "1d6h".
func FormatPeriod(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	var b strings.Builder
	for _, u := range periodUnits {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.names[0])
			d -= n * u.size
		}
	}
	return b.String()
}
