package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", d.String())

	for _, bad := range []string{"", "2026-9-1", "01/09/2026", "2026-13-01", "2026-09-01T00:00:00Z", "9/1/2026"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOfUsesLocationOfInput(t *testing.T) {
	// 2026-09-01 23:30 local renders as the 1st regardless of what the
	// same instant is in UTC.
	loc := time.FixedZone("UTC+5", 5*3600)
	d := DateOf(time.Date(2026, 9, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, Date("2026-09-01"), d)
}

func TestDateEquality(t *testing.T) {
	a, _ := ParseDate("2026-09-01")
	b := DateOf(time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local))
	assert.Equal(t, a, b)
}
