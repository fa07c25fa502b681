package polygon

import (
	"github.com/pkg/errors"
)

// Threading errors up through the sweeps and the triangulator would add a
// ton of plumbing for conditions that are either caller mistakes or bugs.
// Instead the core panics with one of two typed errors, and the public
// API recovers and converts back to an error return.

// GeometryError means the input could not be resolved within the
// precision tolerance, most commonly because polygons overlap by more
// than precision. With ExecutionParams.ProcessOverlaps set, the
// conditions that would raise it soft-fail instead.
type GeometryError struct {
	error
}

// TopologyError means an internal invariant was violated after the data
// structure was built. It is never soft-failable; it indicates a bug or
// catastrophically corrupt input.
type TopologyError struct {
	error
}

func geometryErrorf(format string, args ...interface{}) *GeometryError {
	return &GeometryError{errors.Errorf(format, args...)}
}

func topologyErrorf(format string, args ...interface{}) *TopologyError {
	return &TopologyError{errors.Errorf(format, args...)}
}

// assertGeometry panics with a GeometryError unless cond holds.
func assertGeometry(cond bool, msg string) {
	if !cond {
		panic(geometryErrorf("%s", msg))
	}
}

// assertTopology panics with a TopologyError unless cond holds.
func assertTopology(cond bool, msg string) {
	if !cond {
		panic(topologyErrorf("%s", msg))
	}
}

// HandleTriangulatePanicRecover converts a recovered panic value back
// into an error if it is one of ours, and re-panics otherwise. Use it in
// a deferred function around calls into this package:
//
//	defer func() {
//		err = polygon.HandleTriangulatePanicRecover(recover())
//	}()
func HandleTriangulatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	switch e := r.(type) {
	case *GeometryError:
		return e
	case *TopologyError:
		return e
	}
	panic(r)
}
