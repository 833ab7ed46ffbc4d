package field

import "github.com/samdwyer/fieldsim/internal/entity"

// gateSpread bounds the scheduler's draw to [-gateSpread, gateSpread];
// a visit only decides when the draw lands on either end.
const gateSpread = 3

// SchedulerStats counts scheduler activity since construction.
type SchedulerStats struct {
	Visits    int // Interval boundaries crossed
	Decisions int // Visits that passed the gate
	Laps      int // Times the cursor wrapped back to 0
}

// Scheduler polls one agent per decision interval in round-robin order,
// letting only a random share of visits through.
type Scheduler struct {
	size     int
	interval float64
	cursor   int
	timer    float64
	gate     entity.Rand
	stats    SchedulerStats
}

// NewScheduler creates a scheduler over size agents that completes a lap
// once per second on average.
func NewScheduler(size int, gate entity.Rand) *Scheduler {
	return &Scheduler{
		size:     size,
		interval: 1.0 / float64(size),
		gate:     gate,
	}
}

// Advance adds delta seconds and calls poll for every visit that passes
// the gate. The cursor moves on after every visit either way.
func (s *Scheduler) Advance(delta float64, poll func(i int)) {
	s.timer += delta
	for s.timer >= s.interval {
		s.timer -= s.interval
		s.stats.Visits++

		draw := s.gate.Intn(2*gateSpread+1) - gateSpread
		if draw == gateSpread || draw == -gateSpread {
			s.stats.Decisions++
			poll(s.cursor)
		}

		s.cursor++
		if s.cursor == s.size {
			s.cursor = 0
			s.stats.Laps++
		}
	}
}

// Cursor returns the index of the next agent to visit.
func (s *Scheduler) Cursor() int { return s.cursor }

// Interval returns the time between visits in seconds.
func (s *Scheduler) Interval() float64 { return s.interval }

// Stats returns the activity counters.
func (s *Scheduler) Stats() SchedulerStats { return s.stats }
