package polygon

import (
	"io"
	"os"
)

// ExecutionParams is the process-wide configuration block. It is read
// once at the start of each Triangulate call, so mutating it while a call
// is in flight affects only subsequent calls; tests that need distinct
// settings should serialize their mutations.
type ExecutionParams struct {
	// Verbose emits a trace of every sweep event to DebugOut.
	Verbose bool

	// IntermediateChecks runs ring sanity checks between the sweeps and
	// the manifold topology/geometry verification after triangulation.
	IntermediateChecks bool

	// ProcessOverlaps converts overlap detections from a GeometryError
	// into a soft failure: the subdivision is abandoned and the input is
	// triangulated as-is, giving a manifold but possibly inverted result.
	ProcessOverlaps bool

	// SuppressErrors skips the diagnostic dump of the offending polygons
	// when a call fails.
	SuppressErrors bool

	// DebugOut receives all diagnostic output. Defaults to stdout.
	DebugOut io.Writer
}

var params ExecutionParams

// PolygonParams exposes the configuration block for mutation between
// calls.
func PolygonParams() *ExecutionParams {
	return &params
}

// snapshotParams is taken at the top of each call so the call stays
// self-consistent even if the block is mutated concurrently.
func snapshotParams() ExecutionParams {
	p := params
	if p.DebugOut == nil {
		p.DebugOut = os.Stdout
	}
	return p
}
