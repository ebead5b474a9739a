package utils

import (
	"strconv"
	"strings"
)

// ParseLooseFloat parses a float out of backend data that may be a plain
// number string or padded with whitespace. Returns false when the input is
// empty or unparsable.
func ParseLooseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int64ToStr converts an int64 to its string representation.
func Int64ToStr(num int64) string {
	return strconv.FormatInt(num, 10)
}
