// Package sim drives the tick loop over a set of agents: neighbor rebuild,
// preferred velocity, velocity-obstacle candidate search, and (optionally)
// acceleration-limited integration, run single-threaded by default or
// fanned out across a worker pool with a barrier before integration.
package sim

import (
	"runtime"
	"sync"

	"github.com/JoelSalzesson/ArNavNav/agent"
	"github.com/JoelSalzesson/ArNavNav/debug"
	"github.com/JoelSalzesson/ArNavNav/spatialindex"
)

// Driver steps a fixed set of agents against a shared spatial index.
type Driver struct {
	Agents []*agent.Agent
	Index  spatialindex.SpatialIndex

	// Parallel enables fanning phases 1-3 out across a worker pool sized to
	// GOMAXPROCS. Phase 4 (integration) always runs behind a barrier after
	// phase 3 completes, so no agent integrates against a neighbor's
	// not-yet-updated position.
	Parallel bool

	// Collector, if non-nil, receives per-tick bookkeeping (halts, accel
	// clamps); DoStep calls EndTick on it once per call.
	Collector *debug.Collector
}

// DoStep runs one simulation tick: neighbor rebuild, preferred velocity, and
// candidate search for every agent, then — if doUpdate — acceleration-limited
// integration. It returns the agents that reached the end of their plan this
// step.
func (d *Driver) DoStep(dt float64, doUpdate bool) []*agent.Agent {
	if d.Parallel {
		d.runParallel(dt)
	} else {
		d.runSequential(dt)
	}

	var reached []*agent.Agent
	if doUpdate {
		for _, a := range d.Agents {
			clamped, done := a.Update(dt)
			if clamped && d.Collector != nil {
				d.Collector.RecordAccelClamp()
			}
			if done {
				reached = append(reached, a)
			}
		}
	}

	if d.Collector != nil {
		d.Collector.EndTick()
	}
	return reached
}

// runSequential executes phase 1 for every agent, then phase 2 for every
// agent, then phase 3 for every agent, with no parallelism and therefore no
// barrier requirement.
func (d *Driver) runSequential(dt float64) {
	for _, a := range d.Agents {
		a.ComputeNeighbors(d.Index)
	}
	for _, a := range d.Agents {
		a.ComputePreferredVelocity(dt)
	}
	for _, a := range d.Agents {
		if !a.ComputeNewVelocity(nil) && d.Collector != nil {
			d.Collector.RecordHalt()
		}
	}
}

// runParallel fans each of phases 1-3 out across GOMAXPROCS workers, each
// owning a contiguous chunk of d.Agents, with a barrier after every phase.
// Within a phase an agent writes only its own state (neighbors, then
// PrefVelocity, then NewVelocity), and other agents' state is read only in
// a later phase, so chunks never race with each other.
func (d *Driver) runParallel(dt float64) {
	n := len(d.Agents)
	if n == 0 {
		return
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > n {
		numWorkers = n
	}
	chunkSize := (n + numWorkers - 1) / numWorkers

	halts := make([]int, numWorkers)

	for phase := 1; phase <= 3; phase++ {
		var wg sync.WaitGroup
		for w := 0; w < numWorkers; w++ {
			start := w * chunkSize
			end := start + chunkSize
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}

			wg.Add(1)
			go func(workerID, i0, i1 int) {
				defer wg.Done()
				for i := i0; i < i1; i++ {
					a := d.Agents[i]
					switch phase {
					case 1:
						a.ComputeNeighbors(d.Index)
					case 2:
						a.ComputePreferredVelocity(dt)
					default:
						if !a.ComputeNewVelocity(nil) {
							halts[workerID]++
						}
					}
				}
			}(w, start, end)
		}
		wg.Wait()
	}

	if d.Collector != nil {
		for _, h := range halts {
			for i := 0; i < h; i++ {
				d.Collector.RecordHalt()
			}
		}
	}
}
