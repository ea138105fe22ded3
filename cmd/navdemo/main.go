// Command navdemo seeds a handful of agents from an embedded CSV roster,
// drops them into a plain rectangular navmesh fixture, and runs the
// simulation driver for a fixed number of ticks, logging performance stats.
package main

import (
	_ "embed"
	"flag"

	"github.com/gocarina/gocsv"

	"github.com/JoelSalzesson/ArNavNav/agent"
	"github.com/JoelSalzesson/ArNavNav/navconfig"
	"github.com/JoelSalzesson/ArNavNav/navlog"
	"github.com/JoelSalzesson/ArNavNav/navmesh"
	"github.com/JoelSalzesson/ArNavNav/navplan"
	"github.com/JoelSalzesson/ArNavNav/sim"
	"github.com/JoelSalzesson/ArNavNav/spatialindex"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

//go:embed roster.csv
var rosterCSV []byte

// rosterRow is one line of roster.csv: a starting agent with a single
// point-goal destination.
type rosterRow struct {
	ID        int     `csv:"id"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Radius    float64 `csv:"radius"`
	MaxSpeed  float64 `csv:"max_speed"`
	PrefSpeed float64 `csv:"pref_speed"`
	MaxAccel  float64 `csv:"max_accel"`
	GoalX     float64 `csv:"goal_x"`
	GoalY     float64 `csv:"goal_y"`
}

func main() {
	ticks := flag.Int("ticks", 300, "number of simulation ticks to run")
	parallel := flag.Bool("parallel", false, "fan phases 1-3 out across a worker pool")
	configPath := flag.String("config", "", "optional navconfig override file")
	flag.Parse()

	cfg := navconfig.MustLoad(*configPath)

	var rows []*rosterRow
	if err := gocsv.UnmarshalBytes(rosterCSV, &rows); err != nil {
		panic(err)
	}

	// A single bounding-box triangle pair is enough to exercise
	// FindContaining/EdgesAstarSearch/MakePath in the demo without a real
	// triangulator (out of scope per the purpose & scope section).
	mesh := buildBoundsMesh()

	agents := buildAgents(rows, cfg, mesh)
	index := spatialindex.NewGrid(-50, -50, 100, 100, cfg.Physics.GridCellSize)

	driver := &sim.Driver{Agents: agents, Index: index, Parallel: *parallel}
	perf := sim.NewPerfCollector(60)

	for tick := 0; tick < *ticks; tick++ {
		index.Clear()
		for _, a := range agents {
			index.Insert(a)
		}

		perf.StartTick()
		reached := driver.DoStep(cfg.Physics.DT, true)
		perf.EndTick()

		for _, a := range reached {
			navlog.Logf("tick %d: agent at %v reached its goal", tick, a.Position())
		}
	}

	perf.Stats().LogStats()
}

func buildAgents(rows []*rosterRow, cfg *navconfig.Config, mesh *navmesh.Mesh) []*agent.Agent {
	agents := make([]*agent.Agent, 0, len(rows))
	for _, row := range rows {
		start := vec2.New(row.X, row.Y)
		goal := vec2.New(row.GoalX, row.GoalY)

		a := agent.New(start, orDefault(row.Radius, cfg.Agent.Radius))
		a.MaxSpeed = orDefault(row.MaxSpeed, cfg.Agent.MaxSpeed)
		a.PrefSpeed = orDefault(row.PrefSpeed, cfg.Agent.PrefSpeed)
		a.MaxAccel = orDefault(row.MaxAccel, cfg.Agent.MaxAccel)
		a.NeighborDist = cfg.Agent.NeighborDist
		a.MaxNeighbors = cfg.Agent.MaxNeighbors
		a.SetPlan(planThroughMesh(mesh, start, goal))
		agents = append(agents, a)
	}
	return agents
}

// planThroughMesh runs a corridor search and funnel pull from start to goal
// and turns the resulting waypoints into a plan, falling back to a direct
// point goal if start or goal falls outside the mesh (shouldn't happen for
// this bounding fixture, but the roster is free-form).
func planThroughMesh(mesh *navmesh.Mesh, start, goal vec2.Vec2) *navplan.Plan {
	startTri, ok1 := mesh.FindContaining(start)
	endTri, ok2 := mesh.FindContaining(goal)
	if !ok1 || !ok2 {
		return navplan.NewPlan(navplan.NewPointGoal(goal, 0.2))
	}

	var corridor []int
	if !mesh.EdgesAstarSearch(start, goal, startTri, endTri, &corridor) {
		return navplan.NewPlan(navplan.NewPointGoal(goal, 0.2))
	}

	var path []vec2.Vec2
	mesh.MakePath(corridor, start, goal, &path)
	if len(path) == 0 {
		return navplan.NewPlan(navplan.NewPointGoal(goal, 0.2))
	}

	segments := make([]navplan.GoalSegment, 0, len(path))
	for i, p := range path[:len(path)-1] {
		forward := vec2.Normalize(vec2.Sub(path[i+1], p))
		segments = append(segments, navplan.NewLineGoal(p, forward))
	}
	segments = append(segments, navplan.NewPointGoal(path[len(path)-1], 0.2))
	return navplan.NewPlan(segments...)
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// buildBoundsMesh returns a two-triangle mesh covering [-50,50]x[-50,50],
// just large enough to demonstrate the half-edge mesh wiring end to end.
func buildBoundsMesh() *navmesh.Mesh {
	verts := []vec2.Vec2{
		vec2.New(-50, -50),
		vec2.New(50, -50),
		vec2.New(50, 50),
		vec2.New(-50, 50),
	}
	m := navmesh.NewMesh(verts)
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)
	if err := m.ConnectTri(); err != nil {
		panic(err)
	}
	return m
}
