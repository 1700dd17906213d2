package feature

import (
	"fmt"
	"sort"
)

// DefaultQuantumMinutes is the nominal quantization granularity for
// time-slot features: a 15-minute grid, matching how course meeting times
// are conventionally published.
const DefaultQuantumMinutes = 15

// NewTimeSlotFeature builds a Feature whose domain is every (day, tick)
// pair reachable between start and end (exclusive), quantized into
// quantumMinutes-wide ticks. A tick is rendered "<day>@<minutes-from-
// midnight>", e.g. "Mon@540" for 09:00. Domain order is day-major (days
// sorted lexicographically), then tick-ascending.
//
// quantumMinutes <= 0 defaults to DefaultQuantumMinutes. start/end are
// minutes-from-midnight in [0, 1440]; end must be strictly greater than
// start and both must be multiples of the quantum.
func NewTimeSlotFeature(name string, days []string, start, end, quantumMinutes int) (Feature, error) {
	if quantumMinutes <= 0 {
		quantumMinutes = DefaultQuantumMinutes
	}
	if end <= start {
		return Feature{}, fmt.Errorf("feature: %s: end (%d) must be after start (%d)", name, end, start)
	}
	if start%quantumMinutes != 0 || end%quantumMinutes != 0 {
		return Feature{}, fmt.Errorf("feature: %s: start/end must align to the %d-minute quantum", name, quantumMinutes)
	}

	daysCopy := append([]string(nil), days...)
	sort.Strings(daysCopy)

	var domain []string
	for _, d := range daysCopy {
		for m := start; m < end; m += quantumMinutes {
			domain = append(domain, fmt.Sprintf("%s@%d", d, m))
		}
	}

	return NewFeature(name, domain)
}

// TimeSlotTick renders a single (day, minutes-from-midnight) pair in the
// same format NewTimeSlotFeature uses for its domain, so callers building
// Item values for a time-slot feature don't have to know the encoding.
func TimeSlotTick(day string, minutesFromMidnight int) string {
	return fmt.Sprintf("%s@%d", day, minutesFromMidnight)
}
