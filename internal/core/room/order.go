package room

import (
	"math"
	"strconv"
	"strings"
)

// NextID returns one past the largest id in ids, or 1 when ids is empty.
func NextID(ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// NumberKey parses the leading integer of a room number the way a
// best-effort numeric read would: surrounding whitespace and an optional
// sign are accepted, parsing stops at the first non-digit. ok is false
// when the number has no leading digits.
func NumberKey(number string) (key int, ok bool) {
	s := strings.TrimSpace(number)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only range errors are possible here.
		n = math.MaxInt
	}
	if neg {
		n = -n
	}
	return n, true
}

// CompareNumbers orders two room numbers by numeric value. Numbers
// without a numeric prefix sort after all numeric ones and compare equal
// to each other, so a stable sort keeps their insertion order.
func CompareNumbers(a, b string) int {
	ka, okA := NumberKey(a)
	kb, okB := NumberKey(b)

	switch {
	case okA && okB:
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}
