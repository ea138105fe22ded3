// Package spatialindex defines the neighbor-query contract agents consume,
// plus a reference cell-grid implementation for tests and the demo CLI. The
// production spatial index (e.g. a bounding-interval-hierarchy tree) is an
// external collaborator outside this module's scope; only the interface it
// must satisfy lives here.
package spatialindex

import (
	"github.com/JoelSalzesson/ArNavNav/navobj"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// SpatialIndex enumerates every object whose surface is within radius of
// center. Query must invoke visit at least once for every such object;
// over-reporting is allowed (callers filter by exact surface distance), and
// no visitation order is guaranteed.
type SpatialIndex interface {
	Query(center vec2.Vec2, radius float64, visit func(navobj.Object))
}
