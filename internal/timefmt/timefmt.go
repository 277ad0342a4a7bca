// Package timefmt normalizes human time input into the canonical
// "H:MM AM/PM" form used everywhere appointments are compared.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	compactRe   = regexp.MustCompile(`^(\d{3,4})(?:([AP])M?)?$`)
	colonAmPmRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AP]M)$`)
	hourAmPmRe  = regexp.MustCompile(`^(\d{1,2})\s*([AP]M)$`)
	colonRe     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	bareHourRe  = regexp.MustCompile(`^(\d{1,2})$`)
)

// Normalize converts varied time input ("930am", "930", "9:30am", "9am", "9:30", "9")
// into "H:MM AM" / "H:MM PM". Input that cannot be confidently normalized is
// returned unchanged; malformed input is a pass-through, never an error.
func Normalize(input string) string {
	if input == "" {
		return input
	}

	t := strings.ToUpper(strings.TrimSpace(input))

	// "930am", "1030PM", "930" (no meridiem defaults to AM)
	if m := compactRe.FindStringSubmatch(strings.ReplaceAll(t, " ", "")); m != nil {
		digits := m[1]
		meridiem := "AM"
		if m[2] != "" {
			meridiem = m[2] + "M"
		}
		var hour, minute string
		if len(digits) == 3 {
			hour, minute = digits[:1], digits[1:]
		} else {
			hour, minute = digits[:2], digits[2:]
		}
		if !validHourMinute(hour, minute) {
			return input
		}
		return strings.TrimLeft(hour, "0") + ":" + minute + " " + meridiem
	}

	// "9:30am", "9:30 PM" with irregular spacing
	if m := colonAmPmRe.FindStringSubmatch(t); m != nil {
		if !validHourMinute(m[1], m[2]) {
			return input
		}
		return strings.TrimLeft(m[1], "0") + ":" + m[2] + " " + m[3]
	}

	// "9am" -> "9:00 AM"
	if m := hourAmPmRe.FindStringSubmatch(t); m != nil {
		if !validHourMinute(m[1], "00") {
			return input
		}
		return strings.TrimLeft(m[1], "0") + ":00 " + m[2]
	}

	// "9:30" -> "9:30 AM". Hours below 12 default to AM; this is a plain
	// heuristic, not an inference from context.
	if m := colonRe.FindStringSubmatch(t); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if !validHourMinute(m[1], m[2]) {
			return input
		}
		meridiem := "PM"
		if hour < 12 {
			meridiem = "AM"
		}
		return strings.TrimLeft(m[1], "0") + ":" + m[2] + " " + meridiem
	}

	// "9" -> "9:00 AM"
	if m := bareHourRe.FindStringSubmatch(t); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return input
		}
		meridiem := "PM"
		if hour < 12 {
			meridiem = "AM"
		}
		return strconv.Itoa(hour) + ":00 " + meridiem
	}

	return input
}

// To24Hour converts a canonical "H:MM AM/PM" string into "HH:MM:SS" for
// chronological comparison. It assumes its input already passed Normalize.
func To24Hour(time12h string) string {
	parts := strings.SplitN(time12h, " ", 2)
	if len(parts) != 2 {
		return time12h
	}
	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return time12h
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return time12h
	}
	if hour == 12 {
		hour = 0
	}
	if parts[1] == "PM" {
		hour += 12
	}

	return fmt.Sprintf("%02d:%s:00", hour, hm[1])
}

func validHourMinute(hourStr, minuteStr string) bool {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return false
	}
	return hour >= 1 && hour <= 12 && minute >= 0 && minute <= 59
}
