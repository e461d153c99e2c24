package layout

import (
	"math"
	"strconv"
)

// FormatINR formats a number as Indian Rupees with zero decimal places
// and Indian digit grouping: the last three digits form one group, every
// two digits after that another (750000 -> "₹7,50,000").
func FormatINR(v float64) string {
	negative := math.Signbit(v)
	rounded := int64(math.Round(math.Abs(v)))

	digits := strconv.FormatInt(rounded, 10)
	grouped := groupIndian(digits)

	if negative && rounded != 0 {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	// Last three digits, then groups of two.
	out := digits[n-3:]
	rest := digits[:n-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return rest + "," + out
}
