package dataset

import (
	"strconv"
	"unicode"
)

// naturalLess compares strings in a way that treats numbers as numbers rather than characters
// For example: "file2" < "file10" when using naturalLess
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		if isDigit(s1[i]) && isDigit(s2[j]) {
			start := i
			for i < len(s1) && isDigit(s1[i]) {
				i++
			}
			n1, _ := strconv.Atoi(s1[start:i])

			start = j
			for j < len(s2) && isDigit(s2[j]) {
				j++
			}
			n2, _ := strconv.Atoi(s2[start:j])

			if n1 != n2 {
				return n1 < n2
			}
			continue
		}

		if s1[i] != s2[j] {
			return s1[i] < s2[j]
		}
		i++
		j++
	}

	return len(s1)-i < len(s2)-j
}

func isDigit(b byte) bool {
	return unicode.IsDigit(rune(b))
}
