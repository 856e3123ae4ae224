package gallery

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"travel-vlogs/pkg/models"
)

// FormatCount abbreviates large counters: 1500 -> "1.5K", 2340000 -> "2.3M".
// The single decimal is rounded half up.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return tenths(n, 100_000) + "M"
	case n >= 1_000:
		return tenths(n, 100) + "K"
	}
	return strconv.Itoa(n)
}

func tenths(n, unit int) string {
	t := (n + unit/2) / unit
	return fmt.Sprintf("%d.%d", t/10, t%10)
}

// FormatRelativeDate renders date relative to now ("Today", "3 weeks ago").
// It counts started days, so an upload from earlier today is day 1.
func FormatRelativeDate(date models.Date, now time.Time) string {
	diff := now.Sub(date.Time)
	if diff < 0 {
		diff = -diff
	}
	return formatDiffDays(int(math.Ceil(diff.Hours() / 24)))
}

func formatDiffDays(days int) string {
	switch {
	case days <= 1:
		return "Today"
	case days == 2:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days-1)
	case days <= 30:
		return fmt.Sprintf("%d weeks ago", ceilDiv(days, 7))
	case days <= 365:
		return fmt.Sprintf("%d months ago", ceilDiv(days, 30))
	}
	return fmt.Sprintf("%d years ago", ceilDiv(days, 365))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
