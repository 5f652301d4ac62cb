package strings

import "fmt"

func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats n with the matching noun form, e.g. "2 arguments"
func Count(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Pluralize(singular, plural, n))
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
