// Package debug holds lightweight introspection for the simulation: the
// per-agent velocity-obstacle dump (agent.Dump) lives alongside the solver
// that fills it; this package adds a coarser, windowed tally of the events
// that matter across many agents and ticks.
package debug

// Collector accumulates counts of per-tick events over a rolling window of
// ticks, for integration tests and CLI perf reporting. It never affects
// solver behavior.
type Collector struct {
	windowSize int
	window     []eventCounts
	writeIndex int
	tickCount  int
	current    eventCounts
}

type eventCounts struct {
	Halts            int
	AccelClamps      int
	CorridorFailures int
}

// NewCollector returns a Collector summing counts over windowSize ticks. A
// non-positive windowSize defaults to 60 (one second at 60 ticks/sec).
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{
		windowSize: windowSize,
		window:     make([]eventCounts, windowSize),
	}
}

// RecordHalt records one agent finding no feasible candidate this tick.
func (c *Collector) RecordHalt() { c.current.Halts++ }

// RecordAccelClamp records one agent's integration step being
// acceleration-clamped this tick.
func (c *Collector) RecordAccelClamp() { c.current.AccelClamps++ }

// RecordCorridorFailure records one failed mesh corridor search.
func (c *Collector) RecordCorridorFailure() { c.current.CorridorFailures++ }

// EndTick closes out the current tick's counts and advances the window.
func (c *Collector) EndTick() {
	c.window[c.writeIndex] = c.current
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.tickCount < c.windowSize {
		c.tickCount++
	}
	c.current = eventCounts{}
}

// Snapshot holds the summed counts over the current window.
type Snapshot struct {
	Ticks            int
	Halts            int
	AccelClamps      int
	CorridorFailures int
}

// Snapshot returns the totals accumulated over the current window.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{Ticks: c.tickCount}
	for i := 0; i < c.tickCount; i++ {
		s.Halts += c.window[i].Halts
		s.AccelClamps += c.window[i].AccelClamps
		s.CorridorFailures += c.window[i].CorridorFailures
	}
	return s
}
