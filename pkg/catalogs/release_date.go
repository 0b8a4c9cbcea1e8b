package catalogs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

var (
	yearPattern  = regexp.MustCompile(`\b(19[0-9]{2}|20[0-9]{2}|2100)\b`)
	monthPattern = regexp.MustCompile(`\b(Jan(uary)?|Feb(ruary)?|Mar(ch)?|Apr(il)?|May|Jun(e)?|Jul(y)?|Aug(ust)?|Sep(tember)?|Oct(ober)?|Nov(ember)?|Dec(ember)?)\b`)
)

// ReleaseDate is a year and month extracted from free text.
// The zero value is not valid; use ParseReleaseDate or NewReleaseDate.
type ReleaseDate struct {
	year  int
	month time.Month
}

// ParseReleaseDate extracts the first plausible year (1900-2100) and the
// first English month name or abbreviation from text. Missing tokens fall
// back to year 2000 and January. Month matching is case-sensitive.
func ParseReleaseDate(text string) ReleaseDate {
	date := ReleaseDate{
		year:  constants.DefaultReleaseYear,
		month: time.Month(constants.DefaultReleaseMonth),
	}

	if match := yearPattern.FindString(text); match != "" {
		if year, err := strconv.Atoi(match); err == nil {
			date.year = year
		}
	}

	if match := monthPattern.FindString(text); match != "" {
		date.month = monthFromToken(match)
	}

	return date
}

// NewReleaseDate builds a date from explicit parts.
func NewReleaseDate(year int, month time.Month) (ReleaseDate, error) {
	if month < time.January || month > time.December {
		return ReleaseDate{}, &errors.ValidationError{
			Field:   "month",
			Value:   int(month),
			Message: "must be between 1 and 12",
		}
	}
	return ReleaseDate{year: year, month: month}, nil
}

// monthFromToken maps a full name or its three-letter prefix to a month.
func monthFromToken(token string) time.Month {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if token == name || token == name[:3] {
			return m
		}
	}
	return time.Month(constants.DefaultReleaseMonth)
}

// ParseMonth reads a month given as a number (1-12), an English name or a
// three-letter abbreviation. Names are matched case-insensitively.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < int(time.January) || n > int(time.December) {
			return 0, &errors.ValidationError{Field: "month", Value: n, Message: "must be between 1 and 12"}
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, nil
		}
	}
	return 0, &errors.ValidationError{Field: "month", Value: s, Message: "unknown month"}
}

// Year returns the release year.
func (d ReleaseDate) Year() int { return d.year }

// Month returns the release month.
func (d ReleaseDate) Month() time.Month { return d.month }

// Index returns month + year*12, the scalar used for ordering.
func (d ReleaseDate) Index() int {
	return int(d.month) + d.year*12
}

// Before reports whether d is strictly earlier than other.
func (d ReleaseDate) Before(other ReleaseDate) bool {
	return d.Index() < other.Index()
}

// After reports whether d is strictly later than other.
func (d ReleaseDate) After(other ReleaseDate) bool {
	return d.Index() > other.Index()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d ReleaseDate) Compare(other ReleaseDate) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// MonthsBetween returns b.Index() - a.Index(). It is negative when b is
// earlier than a.
func MonthsBetween(a, b ReleaseDate) int {
	return b.Index() - a.Index()
}

// String renders the date as year immediately followed by the month name,
// for example "1999March".
func (d ReleaseDate) String() string {
	return strconv.Itoa(d.year) + d.month.String()
}

// Display renders the date for people, for example "March 1999".
func (d ReleaseDate) Display() string {
	return fmt.Sprintf("%s %d", d.month, d.year)
}
