package numberutils

// IsDigits checks if the given string is non-empty and contains only ASCII digits (0-9).
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
