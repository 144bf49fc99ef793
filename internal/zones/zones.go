// Package zones derives an attendee's day-2 zone code from the day-1 code.
//
// Day-1 codes have the shape A + (M|F) + (W|X|Y|Z). The day-2 code keeps the
// gender character and substitutes the prefix and suffix: AMW -> BMQ,
// AFZ -> BFT.
package zones

import (
	"errors"
	"strings"
)

// ErrInvalidZone is returned when a day-1 code does not match the expected
// shape and no day-2 code can be derived.
var ErrInvalidZone = errors.New("invalid day-1 zone code")

var day2Suffix = map[byte]byte{
	'W': 'Q',
	'X': 'R',
	'Y': 'S',
	'Z': 'T',
}

// Normalize trims surrounding whitespace and upper-cases a zone code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DeriveDay2 maps a normalized day-1 zone code to its day-2 counterpart.
// Callers must treat ErrInvalidZone as a validation failure, never as an
// empty default.
func DeriveDay2(day1 string) (string, error) {
	if len(day1) != 3 || day1[0] != 'A' || (day1[1] != 'M' && day1[1] != 'F') {
		return "", ErrInvalidZone
	}
	suffix, ok := day2Suffix[day1[2]]
	if !ok {
		return "", ErrInvalidZone
	}
	return string([]byte{'B', day1[1], suffix}), nil
}
