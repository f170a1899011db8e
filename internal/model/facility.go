package model

// Category classifies a facility for the browse filter.
type Category string

const (
	CategoryIndoor  Category = "Indoor"
	CategoryOutdoor Category = "Outdoor"
)

// Facility is one bookable venue from the static campus catalog. The
// catalog is defined once at startup and never mutated; there is no
// facilities table.
//
// Fields:
//  Name       – unique facility name, also the key used by bookings
//               and the disabled-facilities set.
//  Category   – Indoor or Outdoor.
//  NightPrice – price charged for moonlight slots (00:00–05:59).
//               Slots from 06:00 onward are free.
//  Courts     – sub-resources that can be booked independently
//               (courts, pitches, tables). Non-empty, unique.
//  Slots      – bookable one-hour time-of-day labels in HH:MM form.
//               Unique per facility.
type Facility struct {
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	NightPrice uint32   `json:"night_price"`
	Courts     []string `json:"courts"`
	Slots      []string `json:"slots"`
}

// HasCourt reports whether name is one of the facility's courts.
func (f Facility) HasCourt(name string) bool {
	for _, c := range f.Courts {
		if c == name {
			return true
		}
	}
	return false
}

// HasSlot reports whether label is one of the facility's slots.
func (f Facility) HasSlot(label string) bool {
	for _, s := range f.Slots {
		if s == label {
			return true
		}
	}
	return false
}
