// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InputLayout documents the date-time pattern accepted after /by and /at:
// day/month/year, a space, then hour and minute with no separator
// (24-hour clock), e.g. "2/12/2024 1800" or "2/12/2024 900".
//
// It is deliberately independent of tasks.DisplayLayout; changing how users
// type dates must not change the save file.
const InputLayout = "d/M/yyyy Hmm"

// dateLayout is the Go layout for the date half of InputLayout. Day and
// month accept one or two digits.
const dateLayout = "2/1/2006"

// ParseDateTime parses s against InputLayout. The hour takes every digit
// but the last two, so "900" is 09:00 and "1800" is 18:00.
func ParseDateTime(s string) (time.Time, error) {
	datePart, clockPart, ok := strings.Cut(s, " ")
	if !ok {
		return time.Time{}, fmt.Errorf("missing time in %q", s)
	}

	date, err := time.ParseInLocation(dateLayout, datePart, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := parseClock(clockPart)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}

func parseClock(s string) (hour, minute int, err error) {
	if len(s) < 3 || len(s) > 4 {
		return 0, 0, fmt.Errorf("time %q must be Hmm or HHmm", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, 0, fmt.Errorf("time %q must be digits only", s)
		}
	}

	hour, _ = strconv.Atoi(s[:len(s)-2])
	minute, _ = strconv.Atoi(s[len(s)-2:])
	if hour > 23 {
		return 0, 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return 0, 0, fmt.Errorf("minute %d out of range", minute)
	}
	return hour, minute, nil
}
