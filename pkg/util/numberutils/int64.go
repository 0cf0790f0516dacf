package numberutils

import (
	"strconv"
)

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

// ToPositiveInt64 converts a plain decimal string to a positive int64.
// Signs, blanks, zero and values overflowing int64 are rejected.
func ToPositiveInt64(str string) (int64, bool) {
	if !IsDigits(str) {
		return 0, false
	}
	value, err := ToInt64WithError(str)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
