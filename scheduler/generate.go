package scheduler

import "math/rand"

const defaultGenerateLimit = 10

// GenerateSchedule builds a random schedule of count processes with ids
// 0..count-1, arrival times in [0, arrivalLimit) and burst times in
// [1, burstLimit). Limits that leave no valid value fall back to 10.
func GenerateSchedule(rng *rand.Rand, count, arrivalLimit, burstLimit int) *ArrivalSchedule {
	if arrivalLimit <= 0 {
		arrivalLimit = defaultGenerateLimit
	}
	if burstLimit <= 1 {
		burstLimit = defaultGenerateLimit
	}

	schedule := NewArrivalSchedule()
	for id := 0; id < count; id++ {
		arrival := rng.Intn(arrivalLimit)
		p := Process{ID: int64(id), BurstTime: 1 + rng.Intn(burstLimit-1)}
		// Generated values are always valid.
		_ = schedule.Add(arrival, p)
	}
	return schedule
}
