package catalogs

import (
	"testing"
	"time"

	"github.com/agentstation/gamecat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		text  string
		year  int
		month time.Month
	}{
		{"Released in March 1999", 1999, time.March},
		{"no date info", 2000, time.January},
		{"", 2000, time.January},
		{"February 4, 2000", 2000, time.February},
		{"Sep 2004", 2004, time.September},
		{"Dec 1, 2100", 2100, time.December},
		{"1899", 2000, time.January},
		{"2101", 2000, time.January},
		{"19999", 2000, time.January},
		{"1985 then 1990", 1985, time.January},
		{"May 2010", 2010, time.May},
		{"march 1999", 1999, time.January},
		{"Sept 2004", 2004, time.January},
		{"June or July 1997", 1997, time.June},
		{"Mayhem 2001", 2001, time.January},
		{"11/2005", 2005, time.January},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := ParseReleaseDate(tt.text)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
		})
	}
}

func TestNewReleaseDate(t *testing.T) {
	d, err := NewReleaseDate(1999, time.March)
	require.NoError(t, err)
	assert.Equal(t, 1999, d.Year())
	assert.Equal(t, time.March, d.Month())

	for _, month := range []time.Month{0, 13} {
		_, err := NewReleaseDate(1999, month)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestReleaseDateOrdering(t *testing.T) {
	d1, err := NewReleaseDate(2000, time.January)
	require.NoError(t, err)
	d2, err := NewReleaseDate(2000, time.December)
	require.NoError(t, err)
	d3, err := NewReleaseDate(2001, time.January)
	require.NoError(t, err)

	assert.Equal(t, 11, MonthsBetween(d1, d2))
	assert.Equal(t, -11, MonthsBetween(d2, d1))
	assert.Equal(t, 1, MonthsBetween(d2, d3))
	assert.Equal(t, 0, MonthsBetween(d1, d1))

	assert.Equal(t, 1+2000*12, d1.Index())
	assert.True(t, d1.Before(d2))
	assert.False(t, d2.Before(d1))
	assert.True(t, d3.After(d2))
	assert.False(t, d1.Before(d1))
	assert.False(t, d1.After(d1))

	assert.Equal(t, -1, d1.Compare(d2))
	assert.Equal(t, 1, d3.Compare(d1))
	assert.Equal(t, 0, d2.Compare(d2))
}

func TestReleaseDateRendering(t *testing.T) {
	d := ParseReleaseDate("Released in March 1999")
	assert.Equal(t, "1999March", d.String())
	assert.Equal(t, "March 1999", d.Display())

	d = ParseReleaseDate("unknown")
	assert.Equal(t, "2000January", d.String())
	assert.Equal(t, "January 2000", d.Display())
}

func TestParseMonth(t *testing.T) {
	tests := map[string]time.Month{
		"12":       time.December,
		"1":        time.January,
		"December": time.December,
		"dec":      time.December,
		" sep ":    time.September,
		"FEBRUARY": time.February,
	}
	for input, expected := range tests {
		m, err := ParseMonth(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, m, input)
	}

	for _, input := range []string{"0", "13", "Smarch", ""} {
		_, err := ParseMonth(input)
		assert.True(t, errors.IsValidationError(err), input)
	}
}
