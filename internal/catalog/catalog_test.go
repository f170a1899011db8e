package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabheesh178/woxsen-league/internal/model"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, validate(facilities))
	assert.Len(t, All(), 8)
}

func TestByName(t *testing.T) {
	f, ok := ByName("Badminton Arena")
	require.True(t, ok)
	assert.Equal(t, model.CategoryIndoor, f.Category)
	assert.Equal(t, uint32(300), f.NightPrice)
	assert.Len(t, f.Courts, 8)

	_, ok = ByName("Bowling Alley")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory("All"), 8)
	assert.Len(t, ByCategory(""), 8)

	indoor := ByCategory("Indoor")
	outdoor := ByCategory("Outdoor")
	assert.Len(t, indoor, 3)
	assert.Len(t, outdoor, 5)
	assert.Empty(t, ByCategory("Aquatic"))
}

func TestValidateRejectsBadTables(t *testing.T) {
	base := model.Facility{
		Name:     "Test",
		Category: model.CategoryIndoor,
		Courts:   []string{"Court 1"},
		Slots:    []string{"18:00"},
	}

	dupName := []model.Facility{base, base}
	assert.Error(t, validate(dupName))

	noCourts := base
	noCourts.Courts = nil
	assert.Error(t, validate([]model.Facility{noCourts}))

	dupCourt := base
	dupCourt.Courts = []string{"Court 1", "Court 1"}
	assert.Error(t, validate([]model.Facility{dupCourt}))

	badSlot := base
	badSlot.Slots = []string{"6pm"}
	assert.Error(t, validate([]model.Facility{badSlot}))

	badCat := base
	badCat.Category = "Underwater"
	assert.Error(t, validate([]model.Facility{badCat}))
}

func TestFacilityHelpers(t *testing.T) {
	f, ok := ByName("Pool & Foosball")
	require.True(t, ok)
	assert.True(t, f.HasCourt("Table 1"))
	assert.False(t, f.HasCourt("Table 9"))
	assert.True(t, f.HasSlot("12:00"))
	assert.False(t, f.HasSlot("23:00"))
}
