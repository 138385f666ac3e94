package models

import (
	"errors"
	"strings"
)

// ErrBlankDay is returned for an empty day of week
var ErrBlankDay = errors.New("dayOfWeek must not be blank")

// ParseDay trims a day name. Days are compared as case-insensitive names,
// so "monday" and "MONDAY" are the same day and "LUNDI" is a different one.
func ParseDay(day string) (string, error) {
	d := strings.TrimSpace(day)
	if d == "" {
		return "", ErrBlankDay
	}
	return d, nil
}
