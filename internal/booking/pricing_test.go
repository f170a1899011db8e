package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotHour(t *testing.T) {
	h, err := SlotHour("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, h)

	h, err = SlotHour("23:00")
	require.NoError(t, err)
	assert.Equal(t, 23, h)

	for _, bad := range []string{"", "7:00", "07:0", "24:00", "12:60", "noon", "12-30", "12:30:00"} {
		_, err := SlotHour(bad)
		assert.Error(t, err, "label %q should be rejected", bad)
	}
}

func TestSlotPriceMoonlightWindow(t *testing.T) {
	const nightRate = 300

	// Hours 00-05 inclusive carry the night rate.
	for hour := 0; hour <= 5; hour++ {
		assert.Equal(t, uint32(nightRate), SlotPrice(hour, nightRate), "hour %d", hour)
	}
	// 06:00 onward is free; the boundary at exactly 06 matters.
	for hour := 6; hour <= 23; hour++ {
		assert.Equal(t, uint32(0), SlotPrice(hour, nightRate), "hour %d", hour)
	}
}

func TestSlotPriceZeroNightRate(t *testing.T) {
	assert.Equal(t, uint32(0), SlotPrice(2, 0))
}

func TestStatusForPrice(t *testing.T) {
	assert.Equal(t, StatusPaid, StatusForPrice(300))
	assert.Equal(t, StatusFree, StatusForPrice(0))
}

func TestIsMoonlight(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour < 6
		assert.Equal(t, want, IsMoonlight(hour), fmt.Sprintf("hour %d", hour))
	}
}
