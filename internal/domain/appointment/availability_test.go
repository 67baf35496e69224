package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridTimes(t *testing.T) {
	times := GridTimes()

	assert.Len(t, times, 16)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "09:30", times[1])
	assert.Equal(t, "16:30", times[15])
	assert.NotContains(t, times, "17:00")
}

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name     string
		busy     []string
		wantLen  int
		excluded []string
	}{
		{"empty day", nil, 16, nil},
		{"two taken", []string{"10:00", "14:30"}, 14, []string{"10:00", "14:30"}},
		{"off-grid busy time is ignored", []string{"10:15"}, 16, nil},
		{"fully booked", GridTimes(), 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := FreeSlots(tt.busy)
			assert.Len(t, slots, tt.wantLen)

			got := make(map[string]bool, len(slots))
			for _, s := range slots {
				got[s.Time] = true
			}
			for _, ex := range tt.excluded {
				assert.False(t, got[ex], "slot %s should be taken", ex)
			}
		})
	}
}

func TestFreeSlotsReturnsEmptySliceNotNil(t *testing.T) {
	slots := FreeSlots(GridTimes())
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}
