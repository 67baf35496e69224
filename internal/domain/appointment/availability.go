package appointment

// Candidate slots are a fixed 09:00-17:00 grid at 30-minute steps,
// identical for every company. The availability check is an exact
// (date, time) match on non-terminal appointments; service duration is
// not consulted, so the check is not an interval-overlap test.

const (
	GridStartHour   = 9
	GridEndHour     = 17
	GridStepMinutes = 30
)

type AvailabilityInput struct {
	CompanyID uint
	ServiceID uint
	Date      string // 2006-01-02
}

type TimeSlot struct {
	Time string `json:"time"`
}

// GridTimes enumerates every candidate slot time, "09:00" through
// "16:30".
func GridTimes() []string {
	var times []string
	for h := GridStartHour; h < GridEndHour; h++ {
		for m := 0; m < 60; m += GridStepMinutes {
			times = append(times, format2(h)+":"+format2(m))
		}
	}
	return times
}

// FreeSlots filters the grid against the set of busy times for one
// (company, service, date) scope.
func FreeSlots(busyTimes []string) []TimeSlot {
	busy := make(map[string]struct{}, len(busyTimes))
	for _, t := range busyTimes {
		busy[t] = struct{}{}
	}

	slots := []TimeSlot{}
	for _, t := range GridTimes() {
		if _, taken := busy[t]; !taken {
			slots = append(slots, TimeSlot{Time: t})
		}
	}
	return slots
}

func format2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
