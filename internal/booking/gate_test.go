package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

func TestCanBookDefaults(t *testing.T) {
	s := model.DefaultSettings()
	assert.True(t, CanBook(s, "Badminton Arena"))
}

func TestCanBookGlobalLockdownBlocksEverything(t *testing.T) {
	s := model.SystemSettings{
		GlobalLockdown:     true,
		DisabledFacilities: []string{"Squash"},
	}
	facilities := []string{
		"Cricket Arena", "Football Turf", "Badminton Arena", "Tennis Courts",
		"Volleyball", "Squash", "Pickleball", "Pool & Foosball",
	}
	for _, name := range facilities {
		assert.False(t, CanBook(s, name), name)
	}
}

func TestCanBookPerFacilityDisable(t *testing.T) {
	s := model.SystemSettings{DisabledFacilities: []string{"Football Turf"}}

	assert.False(t, CanBook(s, "Football Turf"))
	assert.True(t, CanBook(s, "Badminton Arena"))
}
