// Package formatting converts values to and from the human-readable text used
// in configuration files, log lines, and model output.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Byte size units in base-1024 order.
var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders n with the largest unit that keeps the value at or above one,
// for example 10485760 -> "10 MB". Whole values drop the fraction.
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10) + " " + units[i]
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + units[i]
}

// ParseBytes reads sizes such as "10MB", "512 kb", "1.5GB", or "2048".
// A bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	num, unit := s, ""
	if split >= 0 {
		num, unit = s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	if unit == "" {
		return int64(value), nil
	}

	for i, u := range units {
		if u == unit {
			return int64(value * float64(uint64(1)<<(10*i))), nil
		}
	}
	return 0, fmt.Errorf("unknown byte size unit %q", unit)
}
