// Package catalog holds the static facility reference data. The
// catalog is compiled in rather than stored: facilities change a few
// times a year at most and every other component (availability grid,
// gate, pricing) treats them as immutable.
package catalog

import (
	"fmt"

	"github.com/Prabheesh178/woxsen-league/internal/booking"
	"github.com/Prabheesh178/woxsen-league/internal/model"
)

var facilities = []model.Facility{
	{
		Name:       "Cricket Arena",
		Category:   model.CategoryOutdoor,
		NightPrice: 500,
		Courts:     []string{"Main Pitch", "Net 1", "Net 2"},
		Slots:      []string{"18:00", "19:00", "20:00", "21:00", "22:00", "23:00", "00:00", "01:00"},
	},
	{
		Name:       "Football Turf",
		Category:   model.CategoryOutdoor,
		NightPrice: 800,
		Courts:     []string{"Side A", "Side B"},
		Slots:      []string{"19:00", "20:00", "21:00", "22:00", "23:00", "00:00", "01:00"},
	},
	{
		Name:       "Badminton Arena",
		Category:   model.CategoryIndoor,
		NightPrice: 300,
		Courts:     []string{"Court 1", "Court 2", "Court 3", "Court 4", "Court 5", "Court 6", "Court 7", "Court 8"},
		Slots:      []string{"06:00", "07:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00"},
	},
	{
		Name:       "Tennis Courts",
		Category:   model.CategoryOutdoor,
		NightPrice: 400,
		Courts:     []string{"Court 1", "Court 2"},
		Slots:      []string{"06:00", "18:00", "19:00", "20:00"},
	},
	{
		Name:       "Volleyball",
		Category:   model.CategoryOutdoor,
		NightPrice: 300,
		Courts:     []string{"Sand Court"},
		Slots:      []string{"17:00", "18:00", "19:00"},
	},
	{
		Name:       "Squash",
		Category:   model.CategoryIndoor,
		NightPrice: 200,
		Courts:     []string{"Court 1"},
		Slots:      []string{"18:00", "19:00"},
	},
	{
		Name:       "Pickleball",
		Category:   model.CategoryOutdoor,
		NightPrice: 250,
		Courts:     []string{"Court A"},
		Slots:      []string{"17:00", "18:00"},
	},
	{
		Name:       "Pool & Foosball",
		Category:   model.CategoryIndoor,
		NightPrice: 100,
		Courts:     []string{"Table 1", "Table 2"},
		Slots:      []string{"12:00", "13:00", "14:00", "18:00", "19:00", "20:00"},
	},
}

// init validates the table once at startup. A malformed catalog is a
// programmer error, so validation failures panic rather than return.
func init() {
	if err := validate(facilities); err != nil {
		panic("catalog: " + err.Error())
	}
}

func validate(fs []model.Facility) error {
	names := make(map[string]bool, len(fs))
	for _, f := range fs {
		if f.Name == "" {
			return fmt.Errorf("facility with empty name")
		}
		if names[f.Name] {
			return fmt.Errorf("duplicate facility %q", f.Name)
		}
		names[f.Name] = true
		if f.Category != model.CategoryIndoor && f.Category != model.CategoryOutdoor {
			return fmt.Errorf("facility %q: unknown category %q", f.Name, f.Category)
		}
		if len(f.Courts) == 0 {
			return fmt.Errorf("facility %q: no courts", f.Name)
		}
		courts := make(map[string]bool, len(f.Courts))
		for _, c := range f.Courts {
			if c == "" || courts[c] {
				return fmt.Errorf("facility %q: empty or duplicate court %q", f.Name, c)
			}
			courts[c] = true
		}
		if len(f.Slots) == 0 {
			return fmt.Errorf("facility %q: no slots", f.Name)
		}
		slots := make(map[string]bool, len(f.Slots))
		for _, s := range f.Slots {
			if _, err := booking.SlotHour(s); err != nil {
				return fmt.Errorf("facility %q: %v", f.Name, err)
			}
			if slots[s] {
				return fmt.Errorf("facility %q: duplicate slot %q", f.Name, s)
			}
			slots[s] = true
		}
	}
	return nil
}

// All returns the full catalog. Callers must not mutate the result.
func All() []model.Facility { return facilities }

// ByName looks a facility up by its exact name.
func ByName(name string) (model.Facility, bool) {
	for _, f := range facilities {
		if f.Name == name {
			return f, true
		}
	}
	return model.Facility{}, false
}

// ByCategory filters the catalog. An empty or "All" filter returns
// everything; an unknown category returns an empty slice.
func ByCategory(filter string) []model.Facility {
	if filter == "" || filter == "All" {
		return facilities
	}
	out := make([]model.Facility, 0, len(facilities))
	for _, f := range facilities {
		if string(f.Category) == filter {
			out = append(out, f)
		}
	}
	return out
}
