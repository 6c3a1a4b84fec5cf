package geom

import "github.com/pkg/errors"

// Threading errors through every recursive geometric operation would add a lot
// of noise. Internal invariant violations panic with a GeometryError instead,
// and public entry points recover it into an ordinary error.

type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

// Convert a recovered GeometryError into an error. Any other panic, runtime
// errors included, is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
